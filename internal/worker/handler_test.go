package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"via-sacra/internal/tasks"
)

type mockExpirer struct {
	mock.Mock
}

func (m *mockExpirer) ExpireDueRooms(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestRoomExpiryHandler_ProcessTask(t *testing.T) {
	expirer := new(mockExpirer)
	expirer.On("ExpireDueRooms", mock.Anything).Return(int64(2), nil).Once()
	payload, err := tasks.NewRoomExpirySweepTask()
	require.NoError(t, err)

	err = NewRoomExpiryHandler(expirer).ProcessTask(context.Background(), asynq.NewTask(tasks.TypeRoomExpirySweep, payload))

	assert.NoError(t, err)
	expirer.AssertExpectations(t)
}

func TestRoomExpiryHandler_MalformedPayloadStillSweeps(t *testing.T) {
	expirer := new(mockExpirer)
	expirer.On("ExpireDueRooms", mock.Anything).Return(int64(0), nil).Once()

	err := NewRoomExpiryHandler(expirer).ProcessTask(context.Background(), asynq.NewTask(tasks.TypeRoomExpirySweep, []byte("{")))

	assert.NoError(t, err)
	expirer.AssertExpectations(t)
}

func TestRoomExpiryHandler_PropagatesFailure(t *testing.T) {
	expirer := new(mockExpirer)
	expirer.On("ExpireDueRooms", mock.Anything).Return(int64(0), errors.New("db unavailable")).Once()

	err := NewRoomExpiryHandler(expirer).ProcessTask(context.Background(), asynq.NewTask(tasks.TypeRoomExpirySweep, nil))

	assert.Error(t, err, "failed sweeps are returned so asynq can retry")
}

func TestNewServeMux_RoutesSweepTask(t *testing.T) {
	expirer := new(mockExpirer)
	expirer.On("ExpireDueRooms", mock.Anything).Return(int64(1), nil).Once()

	mux := NewServeMux(expirer)
	err := mux.ProcessTask(context.Background(), asynq.NewTask(tasks.TypeRoomExpirySweep, nil))

	assert.NoError(t, err)
	expirer.AssertExpectations(t)
}
