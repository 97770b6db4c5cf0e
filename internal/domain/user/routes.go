package user

import "github.com/gin-gonic/gin"

// RegisterRoutes registers user management routes (auth required)
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	users := r.Group("/users")
	{
		users.GET("", handler.ListUsers)
		users.GET("/me", handler.GetProfile)
		users.GET("/:id", handler.GetUser)
		users.POST("", handler.CreateUser)
		users.PATCH("/:id", handler.UpdateUser)
		users.DELETE("/:id", handler.DeactivateUser)
	}
}
