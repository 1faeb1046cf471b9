package domain

import (
	"strings"
	"time"
)

// FirstStation 和 LastStation 界定了房间可以指向的站点范围。
const (
	FirstStation = 1
	LastStation  = 14
)

// DefaultRoomTTL 是房间从创建到过期的默认时长。
const DefaultRoomTTL = 24 * time.Hour

// Room 表示一个共享的祈祷房间，主持人推进站点，其他参与者轮询观察。
type Room struct {
	RoomID         string `gorm:"column:room_id;primaryKey;size:36"`
	Name           string `gorm:"size:191;not null"`
	NormalizedName string `gorm:"size:191;index;not null"`
	// ActiveName 在房间有效期间等于 NormalizedName，失效后置为 NULL，
	// 配合唯一索引保证同名的有效房间最多只有一个。
	ActiveName       *string   `gorm:"size:191;uniqueIndex:idx_rooms_active_name"`
	PasswordHash     string    `gorm:"type:text;not null"`
	HostToken        string    `gorm:"size:36;not null"`
	CurrentStation   int       `gorm:"not null;default:1"`
	ParticipantCount int       `gorm:"not null;default:0"`
	Active           bool      `gorm:"index;not null;default:true"`
	CreatedAt        time.Time `gorm:"index;not null"`
	ExpiresAt        time.Time `gorm:"index;not null"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
}

// NewRoom 构造一个刚创建的有效房间，当前站点为第一站。
func NewRoom(id, name, passwordHash, hostToken string, now time.Time, ttl time.Duration) *Room {
	trimmed := strings.TrimSpace(name)
	normalized := NormalizeRoomName(trimmed)
	return &Room{
		RoomID:         id,
		Name:           trimmed,
		NormalizedName: normalized,
		ActiveName:     &normalized,
		PasswordHash:   passwordHash,
		HostToken:      hostToken,
		CurrentStation: FirstStation,
		Active:         true,
		CreatedAt:      now,
		ExpiresAt:      now.Add(ttl),
	}
}

// IsExpired 判断房间在 now 时刻是否已经过期。expires_at 等于 now 也视为过期。
func (r *Room) IsExpired(now time.Time) bool {
	return !r.ExpiresAt.After(now)
}

// IsAvailable 房间处于激活状态且尚未过期。
func (r *Room) IsAvailable(now time.Time) bool {
	return r.Active && !r.IsExpired(now)
}

// NormalizeRoomName 返回用于唯一性比较的房间名：去除首尾空白、合并内部空白并转为小写。
func NormalizeRoomName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// ValidStation 判断站点编号是否在 1..14 之间。
func ValidStation(station int) bool {
	return station >= FirstStation && station <= LastStation
}
