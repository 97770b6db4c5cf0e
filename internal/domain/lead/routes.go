package lead

import "github.com/gin-gonic/gin"

// RegisterRoutes registers lead pipeline routes (auth required)
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	leads := r.Group("/leads")
	{
		leads.GET("", handler.ListLeads)
		leads.GET("/stats", handler.GetStats)
		leads.GET("/form", handler.NewLeadForm)
		leads.GET("/:id", handler.GetLead)
		leads.GET("/:id/form", handler.GetLeadForm)
		leads.POST("", handler.CreateLead)
		leads.PATCH("/:id", handler.UpdateLead)
		leads.PATCH("/:id/stage", handler.MoveStage)
		leads.POST("/:id/follow-up/done", handler.CompleteFollowUp)
		leads.DELETE("/:id", handler.DeleteLead)
	}

	stages := r.Group("/stages")
	{
		stages.GET("", handler.ListStages)
		stages.POST("", handler.CreateStage)
	}
}
