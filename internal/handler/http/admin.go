package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"via-sacra/internal/domain"
	"via-sacra/internal/middleware"
	"via-sacra/internal/service"
)

// AdminHandler 封装管理员登录与房间管理
type AdminHandler struct {
	adminService *service.AdminService
}

// NewAdminHandler 创建 AdminHandler 实例
func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// AdminLoginRequest 定义管理员登录请求
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminLoginResponse 定义登录成功的响应
type AdminLoginResponse struct {
	Token string `json:"token"`
}

// AdminRoom 是管理端看到的房间信息，不包含密码哈希和主持人令牌
type AdminRoom struct {
	RoomID           string    `json:"room_id"`
	Name             string    `json:"name"`
	Active           bool      `json:"active"`
	CurrentStation   int       `json:"current_station"`
	ParticipantCount int       `json:"participant_count"`
	CreatedAt        time.Time `json:"created_at"`
	ExpiresAt        time.Time `json:"expires_at"`
}

func toAdminRoom(r *domain.Room) AdminRoom {
	return AdminRoom{
		RoomID:           r.RoomID,
		Name:             r.Name,
		Active:           r.Active,
		CurrentStation:   r.CurrentStation,
		ParticipantCount: r.ParticipantCount,
		CreatedAt:        r.CreatedAt,
		ExpiresAt:        r.ExpiresAt,
	}
}

// Login 处理管理员登录
func (h *AdminHandler) Login(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.AdminLogin: Invalid input format")
		BindingErrorResponse(c, err)
		return
	}

	token, err := h.adminService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, AdminLoginResponse{Token: token})
}

// ListRooms 列出所有房间，支持 ?name= 过滤
func (h *AdminHandler) ListRooms(c *gin.Context) {
	rooms, err := h.adminService.ListAllRooms(c.Request.Context(), c.Query("name"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	items := make([]AdminRoom, 0, len(rooms))
	for i := range rooms {
		items = append(items, toAdminRoom(&rooms[i]))
	}
	SuccessResponse(c, http.StatusOK, items)
}

// DeactivateRoom 手动关闭房间
func (h *AdminHandler) DeactivateRoom(c *gin.Context) {
	room, err := h.adminService.DeactivateRoom(c.Request.Context(), c.Param("roomId"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	logrus.WithFields(logrus.Fields{
		"room_id": room.RoomID,
		"admin":   c.GetString(middleware.ContextAdminEmail),
	}).Info("Handler.AdminDeactivate: Room deactivated")
	SuccessResponse(c, http.StatusOK, toAdminRoom(room))
}
