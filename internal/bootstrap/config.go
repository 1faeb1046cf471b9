package bootstrap

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"via-sacra/internal/domain"
	"via-sacra/internal/infra/setup"
)

// Config 结构体用于存储从环境变量或文件加载的配置
type Config struct {
	DB                  setup.DBConfig
	RedisAddr           string
	RedisPassword       string
	RedisDB             int
	KeyPrefix           string // Redis Key 前缀
	JWTSecret           string
	JWTExpiryHours      int
	AdminEmail          string
	AdminPasswordHash   string // bcrypt 哈希
	ServerPort          string
	LogLevel            string
	AppEnv              string // development/production
	CORSOrigins         []string
	RoomTTL             time.Duration
	ExpirySweepSchedule string // asynq cron 表达式
	SeedFile            string // 为空时使用内置数据
	RateLimitMax        int
	RateLimitWindow     time.Duration
}

// IsProduction 判断是否运行在生产环境
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// LoadConfig 从环境变量加载配置
func LoadConfig() (*Config, error) {
	// 优先加载 .env 文件 (如果存在)
	_ = godotenv.Load()

	cfg := &Config{
		DB:                  LoadDBConfig(),
		RedisAddr:           os.Getenv("REDIS_ADDR"),
		RedisPassword:       os.Getenv("REDIS_PASSWORD"),
		KeyPrefix:           envOr("REDIS_KEY_PREFIX", "vs:"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		AdminEmail:          os.Getenv("ADMIN_EMAIL"),
		AdminPasswordHash:   os.Getenv("ADMIN_PASSWORD_HASH"),
		ServerPort:          envOr("SERVER_PORT", "8080"),
		LogLevel:            envOr("LOG_LEVEL", "info"),
		AppEnv:              envOr("APP_ENV", "development"),
		CORSOrigins:         splitOrigins(envOr("CORS_ORIGINS", "*")),
		ExpirySweepSchedule: envOr("EXPIRY_SWEEP_SCHEDULE", "@every 10m"),
		SeedFile:            os.Getenv("SEED_FILE"),
	}

	var err error
	if cfg.RedisDB, err = envInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.JWTExpiryHours, err = envInt("JWT_EXPIRY_HOURS", 24); err != nil {
		return nil, err
	}
	ttlHours, err := envInt("ROOM_TTL_HOURS", int(domain.DefaultRoomTTL/time.Hour))
	if err != nil {
		return nil, err
	}
	if ttlHours <= 0 {
		return nil, fmt.Errorf("ROOM_TTL_HOURS must be positive, got %d", ttlHours)
	}
	cfg.RoomTTL = time.Duration(ttlHours) * time.Hour
	if cfg.RateLimitMax, err = envInt("RATE_LIMIT_MAX", 100); err != nil {
		return nil, err
	}
	cfg.RateLimitWindow = time.Second
	if raw := os.Getenv("RATE_LIMIT_WINDOW"); raw != "" {
		if cfg.RateLimitWindow, err = time.ParseDuration(raw); err != nil || cfg.RateLimitWindow <= 0 {
			return nil, fmt.Errorf("invalid RATE_LIMIT_WINDOW %q", raw)
		}
	}

	if cfg.RedisAddr == "" {
		return nil, fmt.Errorf("environment variable REDIS_ADDR must be set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("environment variable JWT_SECRET must be set")
	}
	if cfg.AdminEmail == "" || cfg.AdminPasswordHash == "" {
		logrus.Warn("ADMIN_EMAIL or ADMIN_PASSWORD_HASH not set, admin login is disabled")
	}

	// 验证日志级别
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		logrus.Warnf("Invalid LOG_LEVEL '%s', using default 'info'", cfg.LogLevel)
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

// LoadDBConfig 只读取数据库相关的环境变量，供不需要 Redis 的命令使用
func LoadDBConfig() setup.DBConfig {
	_ = godotenv.Load()
	return setup.DBConfig{
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Host:     envOr("DB_HOST", "127.0.0.1"),
		Port:     envOr("DB_PORT", "3306"),
		Name:     envOr("DB_NAME", "via_sacra"),
	}
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return n, nil
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
