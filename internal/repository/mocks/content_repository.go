package mocks

import (
	context "context"

	domain "via-sacra/internal/domain"
	repository "via-sacra/internal/repository"

	mock "github.com/stretchr/testify/mock"
)

// ContentRepository is a mock type for the ContentRepository type
type ContentRepository struct {
	mock.Mock
}

// GetIntro provides a mock function with given fields: ctx
func (_m *ContentRepository) GetIntro(ctx context.Context) (*domain.IntroText, error) {
	ret := _m.Called(ctx)

	var r0 *domain.IntroText
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.IntroText)
	}
	return r0, ret.Error(1)
}

// ListStations provides a mock function with given fields: ctx, limit
func (_m *ContentRepository) ListStations(ctx context.Context, limit int) ([]domain.Station, error) {
	ret := _m.Called(ctx, limit)

	var r0 []domain.Station
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Station)
	}
	return r0, ret.Error(1)
}

// GetStation provides a mock function with given fields: ctx, id
func (_m *ContentRepository) GetStation(ctx context.Context, id int) (*domain.Station, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.Station
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Station)
	}
	return r0, ret.Error(1)
}

// ListFinalPrayers provides a mock function with given fields: ctx, limit
func (_m *ContentRepository) ListFinalPrayers(ctx context.Context, limit int) ([]domain.FinalPrayer, error) {
	ret := _m.Called(ctx, limit)

	var r0 []domain.FinalPrayer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.FinalPrayer)
	}
	return r0, ret.Error(1)
}

// Counts provides a mock function with given fields: ctx
func (_m *ContentRepository) Counts(ctx context.Context) (domain.ContentCounts, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).(domain.ContentCounts), ret.Error(1)
}

// Seed provides a mock function with given fields: ctx, seed
func (_m *ContentRepository) Seed(ctx context.Context, seed *domain.ContentSeed) error {
	ret := _m.Called(ctx, seed)
	return ret.Error(0)
}

var _ repository.ContentRepository = (*ContentRepository)(nil)
