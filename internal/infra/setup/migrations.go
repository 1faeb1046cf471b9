package setup

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"via-sacra/internal/domain"
)

// MigrateDB 迁移内容表和房间表。
func MigrateDB(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("cannot migrate database with nil DB connection")
	}

	if err := db.AutoMigrate(
		&domain.IntroText{},
		&domain.Station{},
		&domain.FinalPrayer{},
	); err != nil {
		return fmt.Errorf("failed to auto-migrate content tables: %w", err)
	}

	if err := migrateRoomsTable(db); err != nil {
		return fmt.Errorf("failed to migrate rooms table: %w", err)
	}

	logrus.Info("Database migration completed successfully")
	return nil
}

// migrateRoomsTable 迁移 rooms 表并确认 active_name 上的唯一索引存在。
// 这个索引保证同一规范化名称同时最多只有一个有效房间。
func migrateRoomsTable(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.Room{}); err != nil {
		return err
	}
	if !db.Migrator().HasIndex(&domain.Room{}, "idx_rooms_active_name") {
		if err := db.Migrator().CreateIndex(&domain.Room{}, "idx_rooms_active_name"); err != nil {
			return fmt.Errorf("failed to create idx_rooms_active_name: %w", err)
		}
		logrus.Info("Created unique index idx_rooms_active_name")
	}
	return nil
}
