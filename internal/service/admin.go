package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"via-sacra/internal/domain"
	"via-sacra/internal/repository"
)

// AdminRole 是管理员 token 中 role 声明的取值
const AdminRole = "admin"

const adminRoomListLimit = 500

// AdminService 负责唯一管理员的登录以及房间管理。
type AdminService struct {
	roomRepo          repository.RoomRepository
	adminEmail        string
	adminPasswordHash []byte
	jwtSecret         []byte
	jwtExpiry         time.Duration
}

// NewAdminService 创建 AdminService 实例。
// adminPasswordHash 是 bcrypt 哈希；为空时登录总是失败。
func NewAdminService(roomRepo repository.RoomRepository, adminEmail, adminPasswordHash, jwtSecretKey string, jwtExpiryHours int) (*AdminService, error) {
	if roomRepo == nil {
		panic("RoomRepository cannot be nil for AdminService")
	}
	if jwtSecretKey == "" {
		return nil, fmt.Errorf("JWT secret key cannot be empty")
	}
	if jwtExpiryHours <= 0 {
		jwtExpiryHours = 24
	}
	return &AdminService{
		roomRepo:          roomRepo,
		adminEmail:        strings.TrimSpace(adminEmail),
		adminPasswordHash: []byte(adminPasswordHash),
		jwtSecret:         []byte(jwtSecretKey),
		jwtExpiry:         time.Duration(jwtExpiryHours) * time.Hour,
	}, nil
}

// AdminEmail 返回允许登录的管理员邮箱
func (s *AdminService) AdminEmail() string {
	return s.adminEmail
}

// Login 校验管理员邮箱与密码，成功后签发 JWT。
func (s *AdminService) Login(ctx context.Context, email, password string) (string, error) {
	logCtx := logrus.WithField("email", email)

	if s.adminEmail == "" || len(s.adminPasswordHash) == 0 {
		logCtx.Warn("Admin login attempted but no admin identity is configured")
		return "", ErrAuthenticationFailed
	}
	if !strings.EqualFold(strings.TrimSpace(email), s.adminEmail) {
		logCtx.Warn("Admin login failed: email not allowed")
		return "", ErrAuthenticationFailed
	}
	if bcrypt.CompareHashAndPassword(s.adminPasswordHash, []byte(password)) != nil {
		logCtx.Warn("Admin login failed: invalid password")
		return "", ErrAuthenticationFailed
	}

	token, err := s.generateJWT(s.adminEmail)
	if err != nil {
		logCtx.WithError(err).Error("Failed to generate admin JWT")
		return "", ErrInternalServer
	}
	logCtx.Info("Admin logged in successfully")
	return token, nil
}

// ListAllRooms 返回所有房间 (包括已失效的)，可按名称子串过滤。
func (s *AdminService) ListAllRooms(ctx context.Context, nameFilter string) ([]domain.Room, error) {
	now := time.Now().UTC()
	if _, err := s.roomRepo.ExpireDue(ctx, now); err != nil {
		logrus.WithError(err).Warn("Lazy room expiry failed before admin listing")
	}

	rooms, err := s.roomRepo.List(ctx, repository.RoomFilter{
		NameContains: nameFilter,
		Now:          now,
		Limit:        adminRoomListLimit,
	})
	if err != nil {
		logrus.WithError(err).WithField("filter", nameFilter).Error("Failed to list rooms for admin")
		return nil, ErrInternalServer
	}
	return rooms, nil
}

// DeactivateRoom 手动关闭房间。对已失效的房间重复调用不会报错。
func (s *AdminService) DeactivateRoom(ctx context.Context, roomID string) (*domain.Room, error) {
	logCtx := logrus.WithField("room_id", roomID)

	if err := s.roomRepo.Deactivate(ctx, roomID); err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			logCtx.Warn("Admin deactivate: room not found")
			return nil, ErrRoomNotFound
		}
		logCtx.WithError(err).Error("Admin deactivate: repository error")
		return nil, ErrInternalServer
	}

	room, err := s.roomRepo.FindByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		logCtx.WithError(err).Error("Admin deactivate: failed to reload room")
		return nil, ErrInternalServer
	}
	logCtx.Info("Room deactivated by admin")
	return room, nil
}

// --- 私有辅助函数 ---

// hashPassword 使用 bcrypt 对密码进行哈希处理
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to generate hash from password: %w", err)
	}
	return string(bytes), nil
}

// checkPassword 验证提供的密码是否与存储的哈希匹配
func checkPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// generateJWT 为管理员生成 JWT Token
func (s *AdminService) generateJWT(email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"role":  AdminRole,
		"exp":   now.Add(s.jwtExpiry).Unix(),
		"iat":   now.Unix(),
	})
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}
