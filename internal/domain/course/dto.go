package course

// CreateInstrumentRequest represents instrument creation
type CreateInstrumentRequest struct {
	Name string `json:"name" validate:"required,min=2"`
}

// CreatePlanRequest represents course plan creation
type CreatePlanRequest struct {
	CourseID    int64  `json:"course_id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	BaseClasses int    `json:"base_classes" validate:"required,min=1"`
	PriceCents  int64  `json:"price_cents" validate:"required,min=0"`
}

// CourseListResponse represents the course catalog
type CourseListResponse struct {
	Courses []*Course `json:"courses"`
	Total   int       `json:"total"`
}
