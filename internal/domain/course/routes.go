package course

import "github.com/gin-gonic/gin"

// RegisterRoutes registers catalog routes (auth required)
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	instruments := r.Group("/instruments")
	{
		instruments.GET("", handler.ListInstruments)
		instruments.POST("", handler.CreateInstrument)
	}

	courses := r.Group("/courses")
	{
		courses.GET("", handler.ListCourses)
		courses.GET("/:id", handler.GetCourse)
		courses.GET("/:id/plans", handler.ListPlans)
		courses.POST("", handler.CreateCourse)
		courses.PATCH("/:id", handler.UpdateCourse)
	}

	r.POST("/plans", handler.CreatePlan)
}
