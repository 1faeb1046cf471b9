package tasks

import (
	"encoding/json"
	"time"
)

// 定义任务类型常量
const (
	TypeRoomExpirySweep = "room:expire_sweep" // 周期性房间过期清扫
)

// RoomExpirySweepPayload 记录周期任务注册到调度器的时间
type RoomExpirySweepPayload struct {
	ScheduledAt time.Time `json:"scheduled_at"`
}

// NewRoomExpirySweepTask 创建房间过期清扫任务的 payload
func NewRoomExpirySweepTask() ([]byte, error) {
	return json.Marshal(RoomExpirySweepPayload{ScheduledAt: time.Now().UTC()})
}
