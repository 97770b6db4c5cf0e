package lead

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"musicschool/internal/pkg/response"
	"musicschool/internal/pkg/validator"
)

// Handler handles lead HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates lead handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CreateLead handles POST /api/v1/leads
func (h *Handler) CreateLead(c *gin.Context) {
	var fv FormValues
	if err := c.ShouldBindJSON(&fv); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := fv.Validate(); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	l, err := h.service.Create(c.Request.Context(), fv.Payload())
	if err != nil {
		if errors.Is(err, ErrStageNotFound) {
			response.Error(c, http.StatusUnprocessableEntity, "STAGE_NOT_FOUND", "Unknown pipeline stage")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, l)
}

// GetLead handles GET /api/v1/leads/:id
func (h *Handler) GetLead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid lead ID")
		return
	}

	l, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrLeadNotFound) {
			response.Error(c, http.StatusNotFound, "LEAD_NOT_FOUND", "Lead not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, l)
}

// GetLeadForm handles GET /api/v1/leads/:id/form. It returns form-ready
// values for seeding the edit form; /leads/form (no ID) seeds the create form.
func (h *Handler) GetLeadForm(c *gin.Context) {
	idStr := c.Param("id")
	if idStr == "" {
		response.Success(c, http.StatusOK, NewFormValues(nil))
		return
	}

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid lead ID")
		return
	}

	l, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrLeadNotFound) {
			response.Error(c, http.StatusNotFound, "LEAD_NOT_FOUND", "Lead not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, NewFormValues(l))
}

// NewLeadForm handles GET /api/v1/leads/form
func (h *Handler) NewLeadForm(c *gin.Context) {
	response.Success(c, http.StatusOK, NewFormValues(nil))
}

// ListLeads handles GET /api/v1/leads
func (h *Handler) ListLeads(c *gin.Context) {
	var stageID *string
	if s := c.Query("stage_id"); s != "" {
		stageID = &s
	}

	limit := 50
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 200 {
		limit = v
	}
	offset := 0
	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v >= 0 {
		offset = v
	}

	leads, total, err := h.service.List(c.Request.Context(), stageID, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, LeadListResponse{Leads: leads, Total: total})
}

// UpdateLead handles PATCH /api/v1/leads/:id
func (h *Handler) UpdateLead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid lead ID")
		return
	}

	var fv FormValues
	if err := c.ShouldBindJSON(&fv); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := fv.Validate(); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	l, err := h.service.Update(c.Request.Context(), id, fv.Payload())
	if err != nil {
		switch {
		case errors.Is(err, ErrLeadNotFound):
			response.Error(c, http.StatusNotFound, "LEAD_NOT_FOUND", "Lead not found")
		case errors.Is(err, ErrStageNotFound):
			response.Error(c, http.StatusUnprocessableEntity, "STAGE_NOT_FOUND", "Unknown pipeline stage")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, l)
}

// MoveStage handles PATCH /api/v1/leads/:id/stage
func (h *Handler) MoveStage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid lead ID")
		return
	}

	var req MoveStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	if err := h.service.MoveStage(c.Request.Context(), id, req.StageID); err != nil {
		switch {
		case errors.Is(err, ErrLeadNotFound):
			response.Error(c, http.StatusNotFound, "LEAD_NOT_FOUND", "Lead not found")
		case errors.Is(err, ErrStageNotFound):
			response.Error(c, http.StatusUnprocessableEntity, "STAGE_NOT_FOUND", "Unknown pipeline stage")
		case errors.Is(err, ErrAlreadyConverted):
			response.Error(c, http.StatusConflict, "ALREADY_CONVERTED", "Lead already converted")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"moved": true})
}

// CompleteFollowUp handles POST /api/v1/leads/:id/follow-up/done
func (h *Handler) CompleteFollowUp(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid lead ID")
		return
	}

	if err := h.service.CompleteFollowUp(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrLeadNotFound) {
			response.Error(c, http.StatusNotFound, "LEAD_NOT_FOUND", "Lead not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"follow_up_status": FollowUpDone})
}

// DeleteLead handles DELETE /api/v1/leads/:id?hard=true
func (h *Handler) DeleteLead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid lead ID")
		return
	}

	hard := c.Query("hard") == "true"

	if err := h.service.Delete(c.Request.Context(), id, hard); err != nil {
		if errors.Is(err, ErrLeadNotFound) {
			response.Error(c, http.StatusNotFound, "LEAD_NOT_FOUND", "Lead not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true, "hard": hard})
}

// GetStats handles GET /api/v1/leads/stats
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, stats)
}

// ListStages handles GET /api/v1/stages
func (h *Handler) ListStages(c *gin.Context) {
	stages, err := h.service.ListStages(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, stages)
}

// CreateStage handles POST /api/v1/stages
func (h *Handler) CreateStage(c *gin.Context) {
	var req CreateStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	st, err := h.service.CreateStage(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, st)
}
