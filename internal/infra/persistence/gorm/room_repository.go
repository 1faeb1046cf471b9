package gormpersistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"via-sacra/internal/domain"
	"via-sacra/internal/repository"
)

// GormRoomRepository 是 RoomRepository 接口的 GORM 实现
type GormRoomRepository struct {
	db *gorm.DB
}

// NewGormRoomRepository 创建 GormRoomRepository 实例
func NewGormRoomRepository(db *gorm.DB) *GormRoomRepository {
	if db == nil {
		panic("database connection cannot be nil for GormRoomRepository")
	}
	return &GormRoomRepository{db: db}
}

// Create 插入新房间，唯一索引冲突映射为 ErrDuplicateEntry
func (r *GormRoomRepository) Create(ctx context.Context, room *domain.Room) error {
	if err := r.db.WithContext(ctx).Create(room).Error; err != nil {
		if isDuplicateEntryError(err) {
			return repository.ErrDuplicateEntry
		}
		return fmt.Errorf("gorm: create room (id: %s, name: %s): %w", room.RoomID, room.NormalizedName, err)
	}
	return nil
}

// FindByID 根据房间 ID 查找房间
func (r *GormRoomRepository) FindByID(ctx context.Context, roomID string) (*domain.Room, error) {
	var room domain.Room
	err := r.db.WithContext(ctx).Where("room_id = ?", roomID).First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoomNotFound
		}
		return nil, fmt.Errorf("gorm: find room by id '%s': %w", roomID, err)
	}
	return &room, nil
}

// FindActiveByID 查找激活状态的房间
func (r *GormRoomRepository) FindActiveByID(ctx context.Context, roomID string) (*domain.Room, error) {
	var room domain.Room
	err := r.db.WithContext(ctx).Where("room_id = ? AND active = ?", roomID, true).First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoomNotFound
		}
		return nil, fmt.Errorf("gorm: find active room by id '%s': %w", roomID, err)
	}
	return &room, nil
}

// ExistsActiveName 检查同名激活房间是否存在
func (r *GormRoomRepository) ExistsActiveName(ctx context.Context, normalizedName string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Room{}).
		Where("normalized_name = ? AND active = ?", normalizedName, true).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("gorm: count active rooms by name '%s': %w", normalizedName, err)
	}
	return count > 0, nil
}

// List 按创建时间倒序列出房间
func (r *GormRoomRepository) List(ctx context.Context, filter repository.RoomFilter) ([]domain.Room, error) {
	var rooms []domain.Room
	query := r.db.WithContext(ctx).Model(&domain.Room{})
	if filter.ActiveOnly {
		query = query.Where("active = ? AND expires_at > ?", true, filter.Now)
	}
	if name := domain.NormalizeRoomName(filter.NameContains); name != "" {
		query = query.Where("normalized_name LIKE ?", "%"+escapeLike(name)+"%")
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if err := query.Order("created_at DESC").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("gorm: list rooms: %w", err)
	}
	return rooms, nil
}

// UpdateStation 更新激活房间的当前站点
func (r *GormRoomRepository) UpdateStation(ctx context.Context, roomID string, station int) error {
	result := r.db.WithContext(ctx).Model(&domain.Room{}).
		Where("room_id = ? AND active = ?", roomID, true).
		Update("current_station", station)
	if result.Error != nil {
		return fmt.Errorf("gorm: update station of room '%s' to %d: %w", roomID, station, result.Error)
	}
	if result.RowsAffected == 0 {
		// MySQL 在值未变化时也报告 0 行，需要区分房间是否存在
		if _, err := r.FindActiveByID(ctx, roomID); err != nil {
			return err
		}
	}
	return nil
}

// IncrementParticipants 原子地增加参与者计数
func (r *GormRoomRepository) IncrementParticipants(ctx context.Context, roomID string) error {
	result := r.db.WithContext(ctx).Model(&domain.Room{}).
		Where("room_id = ? AND active = ?", roomID, true).
		UpdateColumn("participant_count", gorm.Expr("participant_count + ?", 1))
	if result.Error != nil {
		return fmt.Errorf("gorm: increment participants of room '%s': %w", roomID, result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrRoomNotFound
	}
	return nil
}

// Deactivate 将房间标记为失效，并清空 active_name 以释放名称
func (r *GormRoomRepository) Deactivate(ctx context.Context, roomID string) error {
	result := r.db.WithContext(ctx).Model(&domain.Room{}).
		Where("room_id = ?", roomID).
		Updates(map[string]interface{}{"active": false, "active_name": nil})
	if result.Error != nil {
		return fmt.Errorf("gorm: deactivate room '%s': %w", roomID, result.Error)
	}
	if result.RowsAffected == 0 {
		if _, err := r.FindByID(ctx, roomID); err != nil {
			return err
		}
	}
	return nil
}

// ExpireDue 批量将过期房间标记为失效
func (r *GormRoomRepository) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&domain.Room{}).
		Where("active = ? AND expires_at <= ?", true, now).
		Updates(map[string]interface{}{"active": false, "active_name": nil})
	if result.Error != nil {
		return 0, fmt.Errorf("gorm: expire rooms due at %s: %w", now.Format(time.RFC3339), result.Error)
	}
	return result.RowsAffected, nil
}

// isDuplicateEntryError 检查 MySQL 唯一约束错误 (1062)，其他驱动退回到错误字符串匹配。
func isDuplicateEntryError(err error) bool {
	if err == nil {
		return false
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // SQLite
		strings.Contains(msg, "Duplicate entry") || // MySQL
		strings.Contains(msg, "duplicate key value violates unique constraint") // PostgreSQL
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
