package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	httpHandler "via-sacra/internal/handler/http"
	gormpersistence "via-sacra/internal/infra/persistence/gorm"
	"via-sacra/internal/infra/setup"
	"via-sacra/internal/middleware"
	"via-sacra/internal/seed"
	"via-sacra/internal/service"
	"via-sacra/internal/tasks"
	"via-sacra/internal/worker"
)

// App 结构体包含应用的所有组件和配置
type App struct {
	Config      *Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	AsynqServer *worker.WorkerServer
	Scheduler   *asynq.Scheduler
	HttpServer  *http.Server
}

// NewLogger 按运行环境创建 logrus Logger：生产环境输出 JSON，其余输出文本
func NewLogger(cfg *Config) *logrus.Logger {
	log := logrus.New()
	if cfg.IsProduction() {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	log.SetOutput(os.Stdout)

	// service 层使用包级 logrus，保持同样的格式和级别
	logrus.SetFormatter(log.Formatter)
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stdout)
	return log
}

// SeedContent 加载种子数据 (path 为空时使用内嵌数据) 并在内容表为空时写入
func SeedContent(ctx context.Context, contentService *service.ContentService, path string) (bool, error) {
	data, err := seed.LoadFile(path)
	if err != nil {
		return false, err
	}
	return contentService.Seed(ctx, data)
}

// NewApp 创建并初始化应用的所有组件
func NewApp() (*App, error) {
	// 1. 加载配置
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return nil, err
	}

	// 2. 初始化 Logger
	log := NewLogger(cfg)
	log.WithFields(logrus.Fields{"env": cfg.AppEnv, "level": log.GetLevel().String()}).Info("Configuration loaded successfully")

	// 3. 初始化基础设施
	db, err := setup.InitDB(cfg.DB, !cfg.IsProduction() && log.IsLevelEnabled(logrus.DebugLevel))
	if err != nil {
		return nil, fmt.Errorf("failed to init DB: %w", err)
	}
	if err := setup.MigrateDB(db); err != nil {
		return nil, fmt.Errorf("failed to migrate DB: %w", err)
	}
	log.Info("Database migrated")

	redisClient, err := setup.InitRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, fmt.Errorf("failed to init Redis: %w", err)
	}
	redisClientOpt := asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}

	// 4. Repositories 与 Services
	roomRepo := gormpersistence.NewGormRoomRepository(db)
	contentRepo := gormpersistence.NewGormContentRepository(db)

	contentService := service.NewContentService(contentRepo)
	roomService := service.NewRoomService(roomRepo, cfg.RoomTTL)
	adminService, err := service.NewAdminService(roomRepo, cfg.AdminEmail, cfg.AdminPasswordHash, cfg.JWTSecret, cfg.JWTExpiryHours)
	if err != nil {
		return nil, fmt.Errorf("failed to create AdminService: %w", err)
	}
	log.Info("Services initialized")

	// 5. 初始化内容数据 (仅当表为空)
	seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	seeded, err := SeedContent(seedCtx, contentService, cfg.SeedFile)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("failed to seed content: %w", err)
	}
	log.WithField("seeded", seeded).Info("Content check complete")

	// 6. Worker Server 与周期任务调度器
	workerServer := worker.NewWorkerServer(redisClientOpt, roomService, log)
	scheduler := asynq.NewScheduler(redisClientOpt, &asynq.SchedulerOpts{Location: time.UTC})

	// 7. Gin Engine 和路由
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(log))
	router.Use(CORSMiddleware(cfg.CORSOrigins))
	router.Use(middleware.RateLimit(redisClient, cfg.KeyPrefix, cfg.RateLimitMax, cfg.RateLimitWindow))

	httpHandler.RegisterRoutes(router.Group("/api"),
		httpHandler.NewContentHandler(contentService),
		httpHandler.NewRoomHandler(roomService),
		httpHandler.NewAdminHandler(adminService),
		middleware.AdminAuth(cfg.JWTSecret, adminService.AdminEmail()),
	)
	router.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"message": "pong"}) })
	log.Info("Router setup complete")

	httpServer := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &App{
		Config:      cfg,
		Log:         log,
		DB:          db,
		RedisClient: redisClient,
		AsynqServer: workerServer,
		Scheduler:   scheduler,
		HttpServer:  httpServer,
	}, nil
}

// Start 启动应用的所有后台 Goroutine 和 HTTP 服务器
func (a *App) Start() {
	go a.AsynqServer.Start()
	a.Log.Info("Asynq worker server routine started")

	a.registerPeriodicTasks()

	go func() {
		a.Log.Infof("HTTP server starting to listen on %s", a.HttpServer.Addr)
		if err := a.HttpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Log.Fatalf("Failed to start HTTP server: %v", err)
		}
		a.Log.Info("HTTP server stopped listening.")
	}()
}

func (a *App) registerPeriodicTasks() {
	payload, err := tasks.NewRoomExpirySweepTask()
	if err != nil {
		a.Log.Errorf("Failed to create room expiry sweep payload: %v", err)
		return
	}
	task := asynq.NewTask(tasks.TypeRoomExpirySweep, payload)

	schedule := a.Config.ExpirySweepSchedule
	entryID, err := a.Scheduler.Register(schedule, task, asynq.Queue("default"), asynq.MaxRetry(1))
	if err != nil {
		a.Log.Errorf("Could not register room expiry sweep task: %v", err)
		return
	}
	a.Log.Infof("Room expiry sweep registered with schedule '%s' (EntryID: %s)", schedule, entryID)

	go func() {
		a.Log.Info("Asynq scheduler starting...")
		if err := a.Scheduler.Run(); err != nil {
			a.Log.Errorf("Asynq scheduler Run() failed: %v", err)
		}
	}()
}

// Shutdown 优雅地关闭应用
func (a *App) Shutdown() {
	a.Log.Info("Shutting down application...")

	// 1. 停止调度器和 Worker
	if a.Scheduler != nil {
		a.Scheduler.Shutdown()
		a.Log.Info("Asynq scheduler stopped.")
	}
	if a.AsynqServer != nil {
		a.AsynqServer.Shutdown()
	}

	// 2. 优雅关闭 HTTP 服务器
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.HttpServer.Shutdown(ctx); err != nil {
		a.Log.Errorf("Error shutting down HTTP server: %v", err)
	} else {
		a.Log.Info("HTTP server shut down gracefully.")
	}

	// 3. 关闭 Redis 连接
	if a.RedisClient != nil {
		if err := a.RedisClient.Close(); err != nil {
			a.Log.Errorf("Error closing Redis connection: %v", err)
		}
	}

	// 4. 关闭数据库连接池
	if sqlDB, err := a.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			a.Log.Errorf("Error closing database connection: %v", err)
		}
	}

	a.Log.Info("Application shutdown complete.")
}
