package admission

import "time"

// Status represents admission lifecycle state
type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// ValidStatus reports whether s is a known status
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusActive, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether an admission may move from one status to
// another. Completed and cancelled are terminal.
func CanTransition(from, to Status) bool {
	switch from {
	case StatusPending:
		return to == StatusActive || to == StatusCancelled
	case StatusActive:
		return to == StatusCompleted || to == StatusCancelled
	}
	return false
}

// Admission links a converted lead to a course plan enrollment.
// FinalClasses is always derived: base classes from the plan plus any
// granted extras.
type Admission struct {
	ID            int64     `json:"id"`
	LeadID        int64     `json:"lead_id"`
	StudentUserID int64     `json:"student_user_id"`
	PlanID        int64     `json:"plan_id"`
	BaseClasses   int       `json:"base_classes"`
	ExtraClasses  int       `json:"extra_classes"`
	FinalClasses  int       `json:"final_classes"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
