package admission

import "github.com/gin-gonic/gin"

// RegisterRoutes registers admission routes (auth required)
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	admissions := r.Group("/admissions")
	{
		admissions.GET("", handler.ListAdmissions)
		admissions.GET("/:id", handler.GetAdmission)
		admissions.POST("", handler.CreateAdmission)
		admissions.PATCH("/:id/status", handler.UpdateStatus)
	}
}
