package lead

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
)

// Repository handles lead data access
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates lead repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Schema for the sqlx-managed tables. Applied by database.Migrate.
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS lead_stages (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		color TEXT NOT NULL DEFAULT '#888888',
		sort_order INTEGER NOT NULL DEFAULT 0,
		is_onboarded BOOLEAN NOT NULL DEFAULT FALSE,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS leads (
		id INTEGER PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		phone TEXT NOT NULL,
		email TEXT,
		interest TEXT,
		source TEXT,
		stage_id TEXT NOT NULL REFERENCES lead_stages(id),
		owner_id INTEGER,
		notes TEXT,
		follow_up_date TEXT NOT NULL,
		follow_up_status TEXT NOT NULL DEFAULT 'open',
		converted_at TIMESTAMP,
		converted_user_id INTEGER,
		deleted_at TIMESTAMP,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_leads_stage ON leads(stage_id)`,
	`CREATE INDEX IF NOT EXISTS idx_leads_follow_up ON leads(follow_up_status, follow_up_date)`,
}

// Create inserts a new lead
func (r *Repository) Create(ctx context.Context, l *Lead) error {
	query := `
		INSERT INTO leads (
			first_name, last_name, phone, email,
			interest, source, stage_id, owner_id, notes,
			follow_up_date, follow_up_status,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		) RETURNING id
	`

	return r.db.QueryRowContext(
		ctx, query,
		l.FirstName, l.LastName, l.Phone, l.Email,
		l.Interest, l.Source, l.StageID, l.OwnerID, l.Notes,
		l.FollowUpDate, l.FollowUpStatus,
		l.CreatedAt, l.UpdatedAt,
	).Scan(&l.ID)
}

// GetByID retrieves a lead, excluding soft-deleted ones
func (r *Repository) GetByID(ctx context.Context, id int64) (*Lead, error) {
	var l Lead
	query := `SELECT * FROM leads WHERE id = $1 AND deleted_at IS NULL`
	err := r.db.GetContext(ctx, &l, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return &l, err
}

// List returns leads with optional stage filter
func (r *Repository) List(ctx context.Context, stageID *string, limit, offset int) ([]*Lead, int, error) {
	var leads []*Lead
	var total int

	var query string
	var args []interface{}

	if stageID != nil {
		query = `SELECT * FROM leads WHERE stage_id = $1 AND deleted_at IS NULL ORDER BY created_at DESC LIMIT $2 OFFSET $3`
		args = []interface{}{*stageID, limit, offset}
		if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM leads WHERE stage_id = $1 AND deleted_at IS NULL`, *stageID); err != nil {
			return nil, 0, err
		}
	} else {
		query = `SELECT * FROM leads WHERE deleted_at IS NULL ORDER BY created_at DESC LIMIT $1 OFFSET $2`
		args = []interface{}{limit, offset}
		if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM leads WHERE deleted_at IS NULL`); err != nil {
			return nil, 0, err
		}
	}

	err := r.db.SelectContext(ctx, &leads, query, args...)
	return leads, total, err
}

// Update replaces the editable fields of a lead
func (r *Repository) Update(ctx context.Context, l *Lead) error {
	query := `
		UPDATE leads
		SET first_name = $2, last_name = $3, phone = $4, email = $5,
		    interest = $6, source = $7, stage_id = $8, owner_id = $9, notes = $10,
		    follow_up_date = $11, follow_up_status = $12, updated_at = $13
		WHERE id = $1 AND deleted_at IS NULL
	`
	_, err := r.db.ExecContext(ctx, query,
		l.ID,
		l.FirstName, l.LastName, l.Phone, l.Email,
		l.Interest, l.Source, l.StageID, l.OwnerID, l.Notes,
		l.FollowUpDate, l.FollowUpStatus, time.Now(),
	)
	return err
}

// MoveStage moves a lead to another pipeline stage
func (r *Repository) MoveStage(ctx context.Context, id int64, stageID string) error {
	query := `UPDATE leads SET stage_id = $2, updated_at = $3 WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, query, id, stageID, time.Now())
	return err
}

// SetFollowUpStatus flips the follow-up flag
func (r *Repository) SetFollowUpStatus(ctx context.Context, id int64, status FollowUpStatus) error {
	query := `UPDATE leads SET follow_up_status = $2, updated_at = $3 WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, query, id, status, time.Now())
	return err
}

// SoftDelete hides a lead without removing the row
func (r *Repository) SoftDelete(ctx context.Context, id int64) error {
	now := time.Now()
	query := `UPDATE leads SET deleted_at = $2, updated_at = $2 WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, query, id, now)
	return err
}

// HardDelete removes a lead row permanently
func (r *Repository) HardDelete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	return err
}

// MarkConverted records the conversion of a lead
func (r *Repository) MarkConverted(ctx context.Context, id int64, userID int64) error {
	now := time.Now()
	query := `
		UPDATE leads
		SET converted_at = $2, converted_user_id = $3, updated_at = $2
		WHERE id = $1 AND deleted_at IS NULL
	`
	_, err := r.db.ExecContext(ctx, query, id, now, userID)
	return err
}

// DueFollowUps returns open leads whose follow-up date is on or before date
func (r *Repository) DueFollowUps(ctx context.Context, date string) ([]*Lead, error) {
	var leads []*Lead
	query := `
		SELECT * FROM leads
		WHERE follow_up_status = 'open'
		  AND follow_up_date <= $1
		  AND converted_at IS NULL
		  AND deleted_at IS NULL
		ORDER BY follow_up_date ASC
	`
	err := r.db.SelectContext(ctx, &leads, query, date)
	return leads, err
}

// CountByStage returns lead counts per stage
func (r *Repository) CountByStage(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT stage_id, COUNT(*) FROM leads WHERE deleted_at IS NULL GROUP BY stage_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var stageID string
		var count int
		if err := rows.Scan(&stageID, &count); err != nil {
			return nil, err
		}
		counts[stageID] = count
	}
	return counts, rows.Err()
}

// CreateStage inserts a pipeline stage
func (r *Repository) CreateStage(ctx context.Context, s *Stage) error {
	query := `
		INSERT INTO lead_stages (id, name, color, sort_order, is_onboarded, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.Name, s.Color, s.SortOrder, s.IsOnboarded, s.IsActive, s.CreatedAt)
	return err
}

// GetStage retrieves a stage by ID
func (r *Repository) GetStage(ctx context.Context, id string) (*Stage, error) {
	var s Stage
	err := r.db.GetContext(ctx, &s, `SELECT * FROM lead_stages WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return &s, err
}

// ListStages returns all stages in pipeline order
func (r *Repository) ListStages(ctx context.Context) ([]*Stage, error) {
	var stages []*Stage
	err := r.db.SelectContext(ctx, &stages, `SELECT * FROM lead_stages ORDER BY sort_order ASC`)
	return stages, err
}
