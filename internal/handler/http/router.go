package http

import "github.com/gin-gonic/gin"

// RegisterRoutes 在 /api 分组下注册所有接口。adminAuth 保护 /admin 下除登录外的路由。
func RegisterRoutes(api *gin.RouterGroup, content *ContentHandler, rooms *RoomHandler, admin *AdminHandler, adminAuth gin.HandlerFunc) {
	api.GET("/", content.Root)
	api.GET("/intro", content.GetIntro)
	api.GET("/stations", content.ListStations)
	api.GET("/stations/:id", content.GetStation)
	api.GET("/final-prayers", content.ListFinalPrayers)

	roomRoutes := api.Group("/rooms")
	{
		roomRoutes.GET("", rooms.ListRooms)
		roomRoutes.POST("", rooms.CreateRoom)
		roomRoutes.POST("/join", rooms.JoinRoom)
		roomRoutes.GET("/:roomId", rooms.GetRoom)
		roomRoutes.PATCH("/:roomId/station", rooms.UpdateStation)
	}

	adminRoutes := api.Group("/admin")
	{
		adminRoutes.POST("/login", admin.Login)
		protected := adminRoutes.Group("", adminAuth)
		protected.GET("/rooms", admin.ListRooms)
		protected.PATCH("/rooms/:roomId/deactivate", admin.DeactivateRoom)
	}
}
