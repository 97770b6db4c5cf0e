package lead

import (
	"database/sql"
	"time"
)

// FollowUpStatus represents follow-up state of a lead
type FollowUpStatus string

const (
	FollowUpOpen FollowUpStatus = "open"
	FollowUpDone FollowUpStatus = "done"
)

// DateLayout is the canonical zero-padded ISO date format for follow-up
// dates. Date ordering relies on lexicographic comparison of this layout.
const DateLayout = "2006-01-02"

// Lead represents a sales prospect tracked through the admission pipeline
type Lead struct {
	ID int64 `db:"id" json:"id"`

	// Contact
	FirstName string         `db:"first_name" json:"first_name"`
	LastName  string         `db:"last_name" json:"last_name"`
	Phone     string         `db:"phone" json:"phone"`
	Email     sql.NullString `db:"email" json:"email,omitempty"`

	// Classification
	Interest sql.NullString `db:"interest" json:"interest,omitempty"`
	Source   sql.NullString `db:"source" json:"source,omitempty"`

	// Pipeline
	StageID string        `db:"stage_id" json:"stage_id"`
	OwnerID sql.NullInt64 `db:"owner_id" json:"owner_id,omitempty"`
	Notes   sql.NullString `db:"notes" json:"notes,omitempty"`

	// Follow-up
	FollowUpDate   string         `db:"follow_up_date" json:"follow_up_date"`
	FollowUpStatus FollowUpStatus `db:"follow_up_status" json:"follow_up_status"`

	// Conversion
	ConvertedAt     sql.NullTime  `db:"converted_at" json:"converted_at,omitempty"`
	ConvertedUserID sql.NullInt64 `db:"converted_user_id" json:"converted_user_id,omitempty"`

	DeletedAt sql.NullTime `db:"deleted_at" json:"-"`
	CreatedAt time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt time.Time    `db:"updated_at" json:"updated_at"`
}

// IsConverted returns true if lead was converted to an admission
func (l *Lead) IsConverted() bool {
	return l.ConvertedAt.Valid
}

// IsDeleted returns true if lead was soft-deleted
func (l *Lead) IsDeleted() bool {
	return l.DeletedAt.Valid
}

// Stage represents an ordered pipeline stage
type Stage struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Color       string    `db:"color" json:"color"`
	SortOrder   int       `db:"sort_order" json:"sort_order"`
	IsOnboarded bool      `db:"is_onboarded" json:"is_onboarded"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// InFunnel returns true if leads in this stage are still being worked
func (s *Stage) InFunnel() bool {
	return s.IsActive && !s.IsOnboarded
}
