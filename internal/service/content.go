package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"via-sacra/internal/domain"
	"via-sacra/internal/repository"
)

const finalPrayerListLimit = 10

// ContentService 提供只读的祈祷文内容，并负责一次性初始化。
type ContentService struct {
	contentRepo repository.ContentRepository
}

// NewContentService 创建 ContentService 实例。
func NewContentService(contentRepo repository.ContentRepository) *ContentService {
	if contentRepo == nil {
		panic("ContentRepository cannot be nil for ContentService")
	}
	return &ContentService{contentRepo: contentRepo}
}

func (s *ContentService) GetIntro(ctx context.Context) (*domain.IntroText, error) {
	intro, err := s.contentRepo.GetIntro(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrIntroNotFound) {
			return nil, ErrIntroNotFound
		}
		logrus.WithError(err).Error("Failed to load intro")
		return nil, ErrInternalServer
	}
	return intro, nil
}

// ListStations 按编号返回全部十四处。
func (s *ContentService) ListStations(ctx context.Context) ([]domain.Station, error) {
	stations, err := s.contentRepo.ListStations(ctx, domain.LastStation)
	if err != nil {
		logrus.WithError(err).Error("Failed to list stations")
		return nil, ErrInternalServer
	}
	if stations == nil {
		stations = []domain.Station{}
	}
	return stations, nil
}

// GetStation 返回单个站点。编号越界返回 ErrInvalidStation。
func (s *ContentService) GetStation(ctx context.Context, id int) (*domain.Station, error) {
	if !domain.ValidStation(id) {
		return nil, ErrInvalidStation
	}
	station, err := s.contentRepo.GetStation(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStationNotFound) {
			return nil, ErrStationNotFound
		}
		logrus.WithError(err).WithField("station", id).Error("Failed to load station")
		return nil, ErrInternalServer
	}
	return station, nil
}

func (s *ContentService) ListFinalPrayers(ctx context.Context) ([]domain.FinalPrayer, error) {
	prayers, err := s.contentRepo.ListFinalPrayers(ctx, finalPrayerListLimit)
	if err != nil {
		logrus.WithError(err).Error("Failed to list final prayers")
		return nil, ErrInternalServer
	}
	if prayers == nil {
		prayers = []domain.FinalPrayer{}
	}
	return prayers, nil
}

// Seed 在内容表全部为空时写入种子数据，返回是否实际写入。
// 任一表已有数据时视为已初始化，不做任何修改。
func (s *ContentService) Seed(ctx context.Context, seed *domain.ContentSeed) (bool, error) {
	if err := ValidateSeed(seed); err != nil {
		return false, err
	}

	counts, err := s.contentRepo.Counts(ctx)
	if err != nil {
		return false, fmt.Errorf("count existing content: %w", err)
	}
	logCtx := logrus.WithFields(logrus.Fields{
		"intro":         counts.Intro,
		"stations":      counts.Stations,
		"final_prayers": counts.FinalPrayers,
	})
	if !counts.Empty() {
		logCtx.Info("Content already seeded, skipping")
		return false, nil
	}

	if err := s.contentRepo.Seed(ctx, seed); err != nil {
		return false, fmt.Errorf("seed content: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"stations":      len(seed.Stations),
		"final_prayers": len(seed.FinalPrayers),
	}).Info("Content seeded")
	return true, nil
}

// ValidateSeed 检查种子数据包含开场祷文、十四处站点 (编号 1..14 各一次) 和结束祷文。
func ValidateSeed(seed *domain.ContentSeed) error {
	if seed == nil {
		return fmt.Errorf("%w: empty seed", ErrInvalidSeed)
	}
	if seed.Intro == nil {
		return fmt.Errorf("%w: required key 'intro' not found", ErrInvalidSeed)
	}
	if seed.Stations == nil {
		return fmt.Errorf("%w: required key 'stations' not found", ErrInvalidSeed)
	}
	if seed.FinalPrayers == nil {
		return fmt.Errorf("%w: required key 'final_prayers' not found", ErrInvalidSeed)
	}
	if len(seed.Stations) != domain.LastStation {
		return fmt.Errorf("%w: expected %d stations, got %d", ErrInvalidSeed, domain.LastStation, len(seed.Stations))
	}
	seen := make(map[int]bool, len(seed.Stations))
	for _, st := range seed.Stations {
		if !domain.ValidStation(st.ID) || seen[st.ID] {
			return fmt.Errorf("%w: invalid or duplicate station id %d", ErrInvalidSeed, st.ID)
		}
		seen[st.ID] = true
	}
	return nil
}
