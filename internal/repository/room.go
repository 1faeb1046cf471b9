package repository

import (
	"context"
	"time"

	"via-sacra/internal/domain"
)

// RoomFilter 是管理端查询房间时使用的过滤条件。
type RoomFilter struct {
	// NameContains 按规范化名称做子串匹配，空字符串表示不过滤。
	NameContains string
	// ActiveOnly 只返回激活且在 Now 时刻尚未过期的房间。
	ActiveOnly bool
	Now        time.Time
	Limit      int
}

// RoomRepository 定义了房间数据的存储和检索操作。
type RoomRepository interface {
	// Create 插入新房间。同名有效房间已存在时返回 ErrDuplicateEntry。
	Create(ctx context.Context, room *domain.Room) error

	// FindByID 根据房间 ID 查找房间，不论是否激活。
	// 如果房间不存在，返回 ErrRoomNotFound。
	FindByID(ctx context.Context, roomID string) (*domain.Room, error)

	// FindActiveByID 查找处于激活状态的房间 (不检查 expires_at，由 Service 判断)。
	FindActiveByID(ctx context.Context, roomID string) (*domain.Room, error)

	// ExistsActiveName 检查是否存在同一规范化名称的激活房间。
	ExistsActiveName(ctx context.Context, normalizedName string) (bool, error)

	// List 按创建时间倒序返回满足过滤条件的房间。
	List(ctx context.Context, filter RoomFilter) ([]domain.Room, error)

	// UpdateStation 设置激活房间的当前站点。房间不存在或已失效时返回 ErrRoomNotFound。
	UpdateStation(ctx context.Context, roomID string, station int) error

	// IncrementParticipants 原子地把参与者计数加一。
	IncrementParticipants(ctx context.Context, roomID string) error

	// Deactivate 将房间标记为失效并释放名称。房间不存在时返回 ErrRoomNotFound。
	Deactivate(ctx context.Context, roomID string) error

	// ExpireDue 将所有 expires_at <= now 的激活房间标记为失效，返回受影响的数量。
	ExpireDue(ctx context.Context, now time.Time) (int64, error)
}
