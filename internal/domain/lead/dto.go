package lead

// LeadListResponse represents paginated list
type LeadListResponse struct {
	Leads []*Lead `json:"leads"`
	Total int     `json:"total"`
}

// MoveStageRequest represents a pipeline stage change
type MoveStageRequest struct {
	StageID string `json:"stage_id" validate:"required"`
}

// CreateStageRequest represents stage creation
type CreateStageRequest struct {
	Name        string `json:"name" validate:"required"`
	Color       string `json:"color" validate:"required,hexcolor"`
	SortOrder   int    `json:"sort_order"`
	IsOnboarded bool   `json:"is_onboarded"`
	IsActive    bool   `json:"is_active"`
}

// StatsResponse represents per-stage lead counts
type StatsResponse struct {
	ByStage map[string]int `json:"by_stage"`
	Total   int            `json:"total"`
}
