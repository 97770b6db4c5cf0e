package course

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"musicschool/internal/pkg/response"
	"musicschool/internal/pkg/validator"
)

// Handler handles catalog HTTP requests
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CreateInstrument handles POST /api/v1/instruments
func (h *Handler) CreateInstrument(c *gin.Context) {
	var req CreateInstrumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	i, err := h.service.CreateInstrument(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, i)
}

// ListInstruments handles GET /api/v1/instruments
func (h *Handler) ListInstruments(c *gin.Context) {
	instruments, err := h.service.ListInstruments(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, instruments)
}

// CreateCourse handles POST /api/v1/courses
func (h *Handler) CreateCourse(c *gin.Context) {
	var fv FormValues
	if err := c.ShouldBindJSON(&fv); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := fv.Validate(); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	crs, err := h.service.CreateCourse(c.Request.Context(), fv.Payload())
	if err != nil {
		if errors.Is(err, ErrInstrumentNotFound) {
			response.Error(c, http.StatusUnprocessableEntity, "INSTRUMENT_NOT_FOUND", "Unknown instrument")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, crs)
}

// GetCourse handles GET /api/v1/courses/:id
func (h *Handler) GetCourse(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid course ID")
		return
	}

	crs, err := h.service.GetCourse(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrCourseNotFound) {
			response.Error(c, http.StatusNotFound, "COURSE_NOT_FOUND", "Course not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, crs)
}

// ListCourses handles GET /api/v1/courses
func (h *Handler) ListCourses(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	limit := 50
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 200 {
		limit = v
	}
	offset := 0
	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v >= 0 {
		offset = v
	}

	courses, total, err := h.service.ListCourses(c.Request.Context(), activeOnly, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, CourseListResponse{Courses: courses, Total: total})
}

// UpdateCourse handles PATCH /api/v1/courses/:id
func (h *Handler) UpdateCourse(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid course ID")
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

	crs, err := h.service.UpdateCourse(c.Request.Context(), id, fv.Payload())
	if err != nil {
		switch {
		case errors.Is(err, ErrCourseNotFound):
			response.Error(c, http.StatusNotFound, "COURSE_NOT_FOUND", "Course not found")
		case errors.Is(err, ErrInstrumentNotFound):
			response.Error(c, http.StatusUnprocessableEntity, "INSTRUMENT_NOT_FOUND", "Unknown instrument")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}
	response.Success(c, http.StatusOK, crs)
}

// CreatePlan handles POST /api/v1/plans
func (h *Handler) CreatePlan(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	p, err := h.service.CreatePlan(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrCourseNotFound) {
			response.Error(c, http.StatusUnprocessableEntity, "COURSE_NOT_FOUND", "Unknown course")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, p)
}

// ListPlans handles GET /api/v1/courses/:id/plans
func (h *Handler) ListPlans(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid course ID")
		return
	}

	plans, err := h.service.ListPlans(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, plans)
}
