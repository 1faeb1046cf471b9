// Command seed 将祈祷文内容写入数据库。内容表非空时不做任何修改。
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"via-sacra/internal/bootstrap"
	gormpersistence "via-sacra/internal/infra/persistence/gorm"
	"via-sacra/internal/infra/setup"
	"via-sacra/internal/service"
)

func main() {
	file := flag.String("file", os.Getenv("SEED_FILE"), "path to seed JSON (defaults to the embedded data)")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	db, err := setup.InitDB(bootstrap.LoadDBConfig(), false)
	if err != nil {
		logrus.Fatalf("Failed to init DB: %v", err)
	}
	if err := setup.MigrateDB(db); err != nil {
		logrus.Fatalf("Failed to migrate DB: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	contentService := service.NewContentService(gormpersistence.NewGormContentRepository(db))
	seeded, err := bootstrap.SeedContent(ctx, contentService, *file)
	if err != nil {
		logrus.Fatalf("Seeding failed: %v", err)
	}
	logrus.WithFields(logrus.Fields{"seeded": seeded, "file": *file}).Info("Seed finished")
}
