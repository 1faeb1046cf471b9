package gormpersistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"via-sacra/internal/domain"
	"via-sacra/internal/repository"
)

// GormContentRepository 是 ContentRepository 接口的 GORM 实现
type GormContentRepository struct {
	db *gorm.DB
}

// NewGormContentRepository 创建 GormContentRepository 实例
func NewGormContentRepository(db *gorm.DB) *GormContentRepository {
	if db == nil {
		panic("database connection cannot be nil for GormContentRepository")
	}
	return &GormContentRepository{db: db}
}

func (r *GormContentRepository) GetIntro(ctx context.Context) (*domain.IntroText, error) {
	var intro domain.IntroText
	err := r.db.WithContext(ctx).Order("id").First(&intro).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIntroNotFound
		}
		return nil, fmt.Errorf("gorm: get intro: %w", err)
	}
	return &intro, nil
}

func (r *GormContentRepository) ListStations(ctx context.Context, limit int) ([]domain.Station, error) {
	var stations []domain.Station
	err := r.db.WithContext(ctx).Order("id ASC").Limit(limit).Find(&stations).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: list stations: %w", err)
	}
	return stations, nil
}

func (r *GormContentRepository) GetStation(ctx context.Context, id int) (*domain.Station, error) {
	var station domain.Station
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&station).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStationNotFound
		}
		return nil, fmt.Errorf("gorm: get station %d: %w", id, err)
	}
	return &station, nil
}

func (r *GormContentRepository) ListFinalPrayers(ctx context.Context, limit int) ([]domain.FinalPrayer, error) {
	var prayers []domain.FinalPrayer
	err := r.db.WithContext(ctx).Order("position ASC").Order("id ASC").Limit(limit).Find(&prayers).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: list final prayers: %w", err)
	}
	return prayers, nil
}

// Counts 返回三张内容表各自的记录数
func (r *GormContentRepository) Counts(ctx context.Context) (domain.ContentCounts, error) {
	var counts domain.ContentCounts
	db := r.db.WithContext(ctx)
	if err := db.Model(&domain.IntroText{}).Count(&counts.Intro).Error; err != nil {
		return counts, fmt.Errorf("gorm: count intro: %w", err)
	}
	if err := db.Model(&domain.Station{}).Count(&counts.Stations).Error; err != nil {
		return counts, fmt.Errorf("gorm: count stations: %w", err)
	}
	if err := db.Model(&domain.FinalPrayer{}).Count(&counts.FinalPrayers).Error; err != nil {
		return counts, fmt.Errorf("gorm: count final prayers: %w", err)
	}
	return counts, nil
}

// Seed 在同一事务中写入开场祷文、十四处站点和结束祷文
func (r *GormContentRepository) Seed(ctx context.Context, seed *domain.ContentSeed) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if seed.Intro != nil {
			intro := *seed.Intro
			if err := tx.Create(&intro).Error; err != nil {
				return fmt.Errorf("gorm: seed intro: %w", err)
			}
		}
		if len(seed.Stations) > 0 {
			if err := tx.Create(&seed.Stations).Error; err != nil {
				return fmt.Errorf("gorm: seed stations: %w", err)
			}
		}
		if len(seed.FinalPrayers) > 0 {
			prayers := make([]domain.FinalPrayer, len(seed.FinalPrayers))
			for i, p := range seed.FinalPrayers {
				prayers[i] = domain.FinalPrayer{Position: i + 1, Title: p.Title, Text: p.Text}
			}
			if err := tx.Create(&prayers).Error; err != nil {
				return fmt.Errorf("gorm: seed final prayers: %w", err)
			}
		}
		return nil
	})
}
