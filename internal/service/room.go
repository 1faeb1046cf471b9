package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"via-sacra/internal/domain"
	"via-sacra/internal/repository"
)

const (
	minRoomPasswordLength = 4
	maxRoomPasswordBytes  = 72  // bcrypt 的输入上限
	maxRoomNameLength     = 191 // 与 rooms.name 列宽一致
	publicRoomListLimit   = 100
)

// RoomService 负责房间的创建、加入、站点推进与过期处理。
type RoomService struct {
	roomRepo repository.RoomRepository
	roomTTL  time.Duration
}

// NewRoomService 创建 RoomService 实例。roomTTL <= 0 时使用默认的 24 小时。
func NewRoomService(roomRepo repository.RoomRepository, roomTTL time.Duration) *RoomService {
	if roomRepo == nil {
		panic("RoomRepository cannot be nil for RoomService")
	}
	if roomTTL <= 0 {
		roomTTL = domain.DefaultRoomTTL
	}
	return &RoomService{roomRepo: roomRepo, roomTTL: roomTTL}
}

// CreateRoom 创建新房间。返回的房间包含 HostToken，只在创建时交给主持人。
func (s *RoomService) CreateRoom(ctx context.Context, name, password string) (*domain.Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: room name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > maxRoomNameLength {
		return nil, fmt.Errorf("%w: room name must be at most %d characters", ErrInvalidInput, maxRoomNameLength)
	}
	if utf8.RuneCountInString(password) < minRoomPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minRoomPasswordLength)
	}
	if len(password) > maxRoomPasswordBytes {
		return nil, fmt.Errorf("%w: password must be at most %d bytes", ErrInvalidInput, maxRoomPasswordBytes)
	}
	normalized := domain.NormalizeRoomName(name)
	logCtx := logrus.WithField("room_name", normalized)

	now := time.Now().UTC()
	// 过期但尚未被清扫的房间仍占用名称，先释放
	s.expireDue(ctx, now)

	exists, err := s.roomRepo.ExistsActiveName(ctx, normalized)
	if err != nil {
		logCtx.WithError(err).Error("Failed to check room name uniqueness")
		return nil, ErrInternalServer
	}
	if exists {
		logCtx.Warn("Room creation rejected: name already in use")
		return nil, ErrRoomNameTaken
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		logCtx.WithError(err).Error("Failed to hash room password")
		return nil, ErrInternalServer
	}

	room := domain.NewRoom(uuid.NewString(), name, passwordHash, uuid.NewString(), now, s.roomTTL)
	if err := s.roomRepo.Create(ctx, room); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			// 并发创建同名房间时由唯一索引兜底
			logCtx.WithError(err).Warn("Room creation lost race on unique name")
			return nil, ErrRoomNameTaken
		}
		logCtx.WithError(err).Error("Failed to save new room")
		return nil, ErrInternalServer
	}

	logCtx.WithFields(logrus.Fields{"room_id": room.RoomID, "expires_at": room.ExpiresAt}).Info("Room created successfully")
	return room, nil
}

// JoinRoom 校验密码并增加参与者计数。
func (s *RoomService) JoinRoom(ctx context.Context, roomID, password string) (*domain.Room, error) {
	logCtx := logrus.WithField("room_id", roomID)

	room, err := s.findAvailable(ctx, roomID, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if !checkPassword(password, room.PasswordHash) {
		logCtx.Warn("Join attempt failed: incorrect password")
		return nil, ErrInvalidRoomPassword
	}

	if err := s.roomRepo.IncrementParticipants(ctx, roomID); err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		logCtx.WithError(err).Error("Failed to increment participant count")
		return nil, ErrInternalServer
	}
	room.ParticipantCount++

	logCtx.WithField("participants", room.ParticipantCount).Info("Participant joined room")
	return room, nil
}

// GetRoom 返回有效房间的当前状态，参与者通过轮询此接口跟随主持人。
func (s *RoomService) GetRoom(ctx context.Context, roomID string) (*domain.Room, error) {
	return s.findAvailable(ctx, roomID, time.Now().UTC())
}

// AdvanceStation 由主持人设置房间的当前站点。
func (s *RoomService) AdvanceStation(ctx context.Context, roomID string, station int, hostToken string) (*domain.Room, error) {
	logCtx := logrus.WithFields(logrus.Fields{"room_id": roomID, "station": station})

	if !domain.ValidStation(station) {
		return nil, ErrInvalidStation
	}
	room, err := s.findAvailable(ctx, roomID, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if subtle.ConstantTimeCompare([]byte(room.HostToken), []byte(hostToken)) != 1 {
		logCtx.Warn("Station update rejected: host token mismatch")
		return nil, ErrNotRoomHost
	}

	if err := s.roomRepo.UpdateStation(ctx, roomID, station); err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		logCtx.WithError(err).Error("Failed to update room station")
		return nil, ErrInternalServer
	}
	room.CurrentStation = station

	logCtx.Info("Room station advanced")
	return room, nil
}

// ListRooms 返回当前有效的房间，按创建时间倒序。
func (s *RoomService) ListRooms(ctx context.Context) ([]domain.Room, error) {
	now := time.Now().UTC()
	s.expireDue(ctx, now)

	rooms, err := s.roomRepo.List(ctx, repository.RoomFilter{
		ActiveOnly: true,
		Now:        now,
		Limit:      publicRoomListLimit,
	})
	if err != nil {
		logrus.WithError(err).Error("Failed to list active rooms")
		return nil, ErrInternalServer
	}
	return rooms, nil
}

// ExpireDueRooms 将所有已过期的激活房间标记为失效，由周期任务调用。
func (s *RoomService) ExpireDueRooms(ctx context.Context) (int64, error) {
	now := time.Now().UTC()
	n, err := s.roomRepo.ExpireDue(ctx, now)
	if err != nil {
		logrus.WithError(err).Error("Failed to expire due rooms")
		return 0, ErrInternalServer
	}
	if n > 0 {
		logrus.WithFields(logrus.Fields{"expired": n, "now": now}).Info("Expired rooms deactivated")
	}
	return n, nil
}

// --- 私有辅助函数 ---

// findAvailable 查找激活且未过期的房间；发现已过期的激活房间时顺便将其失效。
func (s *RoomService) findAvailable(ctx context.Context, roomID string, now time.Time) (*domain.Room, error) {
	logCtx := logrus.WithField("room_id", roomID)
	if roomID == "" {
		return nil, ErrRoomNotFound
	}

	room, err := s.roomRepo.FindActiveByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			logCtx.Debug("Room not found or inactive")
			return nil, ErrRoomNotFound
		}
		logCtx.WithError(err).Error("Failed to find room")
		return nil, ErrInternalServer
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	if room.IsExpired(now) {
		if err := s.roomRepo.Deactivate(ctx, roomID); err != nil {
			logCtx.WithError(err).Warn("Failed to deactivate expired room")
		} else {
			logCtx.Info("Expired room deactivated on access")
		}
		return nil, ErrRoomNotFound
	}
	return room, nil
}

// expireDue 在读路径上顺带执行一次过期清理，失败只记录日志。
func (s *RoomService) expireDue(ctx context.Context, now time.Time) {
	if _, err := s.roomRepo.ExpireDue(ctx, now); err != nil {
		logrus.WithError(err).Warn("Lazy room expiry failed")
	}
}
