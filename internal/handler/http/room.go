package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"via-sacra/internal/domain"
	"via-sacra/internal/service"
)

// RoomHandler 封装了与房间相关的 HTTP 处理逻辑
type RoomHandler struct {
	roomService *service.RoomService
}

// NewRoomHandler 创建 RoomHandler 实例
func NewRoomHandler(roomService *service.RoomService) *RoomHandler {
	return &RoomHandler{roomService: roomService}
}

// RoomInfo 是参与者可见的房间状态
type RoomInfo struct {
	RoomID           string    `json:"room_id"`
	Name             string    `json:"name"`
	ExpiresAt        time.Time `json:"expires_at"`
	CurrentStation   int       `json:"current_station"`
	ParticipantCount int       `json:"participant_count"`
}

// CreateRoomResponse 在 RoomInfo 基础上附带主持人令牌
type CreateRoomResponse struct {
	RoomInfo
	HostToken string `json:"host_token"`
}

// RoomListItem 是公开房间列表中的一项
type RoomListItem struct {
	RoomID    string    `json:"room_id"`
	Name      string    `json:"name"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CreateRoomRequest 定义创建房间请求
type CreateRoomRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=4,max=72"`
}

// JoinRoomRequest 定义加入房间请求
type JoinRoomRequest struct {
	RoomID   string `json:"room_id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateStationRequest 定义主持人推进站点的请求
type UpdateStationRequest struct {
	Station   int    `json:"station" binding:"required,min=1,max=14"`
	HostToken string `json:"host_token" binding:"required"`
}

func toRoomInfo(room *domain.Room) RoomInfo {
	return RoomInfo{
		RoomID:           room.RoomID,
		Name:             room.Name,
		ExpiresAt:        room.ExpiresAt,
		CurrentStation:   room.CurrentStation,
		ParticipantCount: room.ParticipantCount,
	}
}

// ListRooms 列出有效房间
func (h *RoomHandler) ListRooms(c *gin.Context) {
	rooms, err := h.roomService.ListRooms(c.Request.Context())
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	items := make([]RoomListItem, 0, len(rooms))
	for _, r := range rooms {
		items = append(items, RoomListItem{RoomID: r.RoomID, Name: r.Name, ExpiresAt: r.ExpiresAt})
	}
	SuccessResponse(c, http.StatusOK, items)
}

// CreateRoom 创建房间并返回主持人令牌
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.CreateRoom: Invalid input format")
		BindingErrorResponse(c, err)
		return
	}

	room, err := h.roomService.CreateRoom(c.Request.Context(), req.Name, req.Password)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, CreateRoomResponse{
		RoomInfo:  toRoomInfo(room),
		HostToken: room.HostToken,
	})
}

// JoinRoom 校验密码后加入房间
func (h *RoomHandler) JoinRoom(c *gin.Context) {
	var req JoinRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.JoinRoom: Invalid input format")
		BindingErrorResponse(c, err)
		return
	}

	room, err := h.roomService.JoinRoom(c.Request.Context(), req.RoomID, req.Password)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, toRoomInfo(room))
}

// GetRoom 返回房间当前状态，供参与者轮询
func (h *RoomHandler) GetRoom(c *gin.Context) {
	room, err := h.roomService.GetRoom(c.Request.Context(), c.Param("roomId"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, toRoomInfo(room))
}

// UpdateStation 主持人推进站点
func (h *RoomHandler) UpdateStation(c *gin.Context) {
	var req UpdateStationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.UpdateStation: Invalid input format")
		BindingErrorResponse(c, err)
		return
	}

	room, err := h.roomService.AdvanceStation(c.Request.Context(), c.Param("roomId"), req.Station, req.HostToken)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, toRoomInfo(room))
}
