package admission

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"musicschool/internal/domain/course"
	"musicschool/internal/domain/lead"
	"musicschool/internal/pkg/response"
	"musicschool/internal/pkg/validator"
)

// Handler handles admission HTTP requests
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CreateAdmission handles POST /api/v1/admissions
func (h *Handler) CreateAdmission(c *gin.Context) {
	var req CreateAdmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	a, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrStudentNotFound):
			response.Error(c, http.StatusUnprocessableEntity, "STUDENT_NOT_FOUND", "Unknown student user")
		case errors.Is(err, ErrNotAStudent):
			response.Error(c, http.StatusUnprocessableEntity, "NOT_A_STUDENT", "User record is not a student")
		case errors.Is(err, ErrNegativeExtras):
			response.Error(c, http.StatusUnprocessableEntity, "INVALID_EXTRAS", "Extra classes must not be negative")
		case errors.Is(err, course.ErrPlanNotFound):
			response.Error(c, http.StatusUnprocessableEntity, "PLAN_NOT_FOUND", "Unknown course plan")
		case errors.Is(err, lead.ErrLeadNotFound):
			response.Error(c, http.StatusUnprocessableEntity, "LEAD_NOT_FOUND", "Unknown lead")
		case errors.Is(err, lead.ErrAlreadyConverted):
			response.Error(c, http.StatusConflict, "ALREADY_CONVERTED", "Lead already converted")
		case errors.Is(err, lead.ErrStageNotOnboard):
			response.Error(c, http.StatusConflict, "STAGE_NOT_ONBOARDED", "Lead is not in an onboarding stage")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	response.Success(c, http.StatusCreated, a)
}

// GetAdmission handles GET /api/v1/admissions/:id
func (h *Handler) GetAdmission(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid admission ID")
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrAdmissionNotFound) {
			response.Error(c, http.StatusNotFound, "ADMISSION_NOT_FOUND", "Admission not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, a)
}

// ListAdmissions handles GET /api/v1/admissions
func (h *Handler) ListAdmissions(c *gin.Context) {
	var status *Status
	if s := c.Query("status"); s != "" {
		v := Status(s)
		status = &v
	}

	limit := 50
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 200 {
		limit = v
	}
	offset := 0
	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v >= 0 {
		offset = v
	}

	admissions, total, err := h.service.List(c.Request.Context(), status, limit, offset)
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Unknown admission status")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, AdmissionListResponse{Admissions: admissions, Total: total})
}

// UpdateStatus handles PATCH /api/v1/admissions/:id/status
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid admission ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	a, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrAdmissionNotFound):
			response.Error(c, http.StatusNotFound, "ADMISSION_NOT_FOUND", "Admission not found")
		case errors.Is(err, ErrBadTransition):
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Status transition not allowed")
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Unknown admission status")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}
	response.Success(c, http.StatusOK, a)
}
