package notification

import "github.com/gin-gonic/gin"

// RegisterRoutes registers notification routes (auth required)
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	notifications := r.Group("/notifications")
	{
		notifications.GET("", handler.ListNotifications)
		notifications.POST("/:id/read", handler.MarkRead)
	}
}
