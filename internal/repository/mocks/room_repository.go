package mocks

import (
	context "context"
	time "time"

	domain "via-sacra/internal/domain"
	repository "via-sacra/internal/repository"

	mock "github.com/stretchr/testify/mock"
)

// RoomRepository is a mock type for the RoomRepository type
type RoomRepository struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, room
func (_m *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	ret := _m.Called(ctx, room)
	return ret.Error(0)
}

// FindByID provides a mock function with given fields: ctx, roomID
func (_m *RoomRepository) FindByID(ctx context.Context, roomID string) (*domain.Room, error) {
	ret := _m.Called(ctx, roomID)

	var r0 *domain.Room
	if rf, ok := ret.Get(0).(func(context.Context, string) *domain.Room); ok {
		r0 = rf(ctx, roomID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Room)
	}
	return r0, ret.Error(1)
}

// FindActiveByID provides a mock function with given fields: ctx, roomID
func (_m *RoomRepository) FindActiveByID(ctx context.Context, roomID string) (*domain.Room, error) {
	ret := _m.Called(ctx, roomID)

	var r0 *domain.Room
	if rf, ok := ret.Get(0).(func(context.Context, string) *domain.Room); ok {
		r0 = rf(ctx, roomID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Room)
	}
	return r0, ret.Error(1)
}

// ExistsActiveName provides a mock function with given fields: ctx, normalizedName
func (_m *RoomRepository) ExistsActiveName(ctx context.Context, normalizedName string) (bool, error) {
	ret := _m.Called(ctx, normalizedName)
	return ret.Bool(0), ret.Error(1)
}

// List provides a mock function with given fields: ctx, filter
func (_m *RoomRepository) List(ctx context.Context, filter repository.RoomFilter) ([]domain.Room, error) {
	ret := _m.Called(ctx, filter)

	var r0 []domain.Room
	if rf, ok := ret.Get(0).(func(context.Context, repository.RoomFilter) []domain.Room); ok {
		r0 = rf(ctx, filter)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Room)
	}
	return r0, ret.Error(1)
}

// UpdateStation provides a mock function with given fields: ctx, roomID, station
func (_m *RoomRepository) UpdateStation(ctx context.Context, roomID string, station int) error {
	ret := _m.Called(ctx, roomID, station)
	return ret.Error(0)
}

// IncrementParticipants provides a mock function with given fields: ctx, roomID
func (_m *RoomRepository) IncrementParticipants(ctx context.Context, roomID string) error {
	ret := _m.Called(ctx, roomID)
	return ret.Error(0)
}

// Deactivate provides a mock function with given fields: ctx, roomID
func (_m *RoomRepository) Deactivate(ctx context.Context, roomID string) error {
	ret := _m.Called(ctx, roomID)
	return ret.Error(0)
}

// ExpireDue provides a mock function with given fields: ctx, now
func (_m *RoomRepository) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	ret := _m.Called(ctx, now)

	var r0 int64
	if rf, ok := ret.Get(0).(func(context.Context, time.Time) int64); ok {
		r0 = rf(ctx, now)
	} else {
		r0 = ret.Get(0).(int64)
	}
	return r0, ret.Error(1)
}

var _ repository.RoomRepository = (*RoomRepository)(nil)
