package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"via-sacra/internal/service"
)

// ContentHandler 提供祈祷文内容的只读接口
type ContentHandler struct {
	contentService *service.ContentService
}

// NewContentHandler 创建 ContentHandler 实例
func NewContentHandler(contentService *service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// Root 返回 API 标识
func (h *ContentHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Via Sacra API"})
}

func (h *ContentHandler) GetIntro(c *gin.Context) {
	intro, err := h.contentService.GetIntro(c.Request.Context())
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, intro)
}

func (h *ContentHandler) ListStations(c *gin.Context) {
	stations, err := h.contentService.ListStations(c.Request.Context())
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, stations)
}

// GetStation 处理 /stations/:id，非整数或越界的编号返回 400
func (h *ContentHandler) GetStation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, service.ErrInvalidStation.Error())
		return
	}
	station, err := h.contentService.GetStation(c.Request.Context(), id)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, station)
}

func (h *ContentHandler) ListFinalPrayers(c *gin.Context) {
	prayers, err := h.contentService.ListFinalPrayers(c.Request.Context())
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, prayers)
}
