package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"

	"via-sacra/internal/tasks"
)

// RoomExpirer 是清扫任务依赖的最小接口，由 service.RoomService 实现
type RoomExpirer interface {
	ExpireDueRooms(ctx context.Context) (int64, error)
}

// RoomExpiryHandler 处理房间过期清扫任务
type RoomExpiryHandler struct {
	rooms RoomExpirer
}

// NewRoomExpiryHandler 创建 Handler 实例
func NewRoomExpiryHandler(rooms RoomExpirer) *RoomExpiryHandler {
	if rooms == nil {
		panic("RoomExpirer cannot be nil for RoomExpiryHandler")
	}
	return &RoomExpiryHandler{rooms: rooms}
}

// ProcessTask 实现 asynq.Handler 接口
func (h *RoomExpiryHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	taskID := ""
	if rw := t.ResultWriter(); rw != nil {
		taskID = rw.TaskID()
	}
	currentRetry, _ := asynq.GetRetryCount(ctx)

	logCtx := logrus.WithFields(logrus.Fields{
		"task_id":   taskID,
		"task_type": t.Type(),
		"retry":     currentRetry,
	})

	// payload 只用于日志，解析失败不影响清扫
	if len(t.Payload()) > 0 {
		var payload tasks.RoomExpirySweepPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			logCtx.WithError(err).Warn("Ignoring malformed room expiry payload")
		} else if !payload.ScheduledAt.IsZero() {
			logCtx = logCtx.WithField("registered_at", payload.ScheduledAt.Format(time.RFC3339))
		}
	}

	expired, err := h.rooms.ExpireDueRooms(ctx)
	if err != nil {
		logCtx.WithError(err).Error("Room expiry sweep failed")
		return fmt.Errorf("expire due rooms: %w", err)
	}

	logCtx.WithField("expired", expired).Debug("Room expiry sweep completed")
	return nil
}
