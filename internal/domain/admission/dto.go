package admission

// CreateAdmissionRequest converts a lead into an enrollment
type CreateAdmissionRequest struct {
	LeadID        int64 `json:"lead_id" validate:"required"`
	StudentUserID int64 `json:"student_user_id" validate:"required"`
	PlanID        int64 `json:"plan_id" validate:"required"`
	ExtraClasses  int   `json:"extra_classes" validate:"min=0"`
}

// UpdateStatusRequest represents a lifecycle change
type UpdateStatusRequest struct {
	Status Status `json:"status" validate:"required,oneof=pending active completed cancelled"`
}

// AdmissionListResponse represents paginated list
type AdmissionListResponse struct {
	Admissions []*Admission `json:"admissions"`
	Total      int          `json:"total"`
}
