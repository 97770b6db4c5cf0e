package auth

import "github.com/gin-gonic/gin"

// RegisterRoutes registers public auth routes
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/auth/login", handler.Login)
}
