package lead

import (
	"regexp"
	"strings"
	"time"

	"musicschool/internal/pkg/validator"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// FormValues is the flat, form-ready representation of a lead. Optional
// fields are empty strings here and omitted from the payload.
type FormValues struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Interest       string `json:"interest"`
	Source         string `json:"source"`
	Notes          string `json:"notes"`
	StageID        string `json:"stage_id"`
	OwnerID        int64  `json:"owner_id"`
	FollowUpDate   string `json:"follow_up_date"`
	FollowUpStatus string `json:"follow_up_status"`
}

// Payload is the canonical submission shape. Empty optionals are absent,
// not empty strings, so partial-update semantics hold downstream.
type Payload struct {
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	Phone          string         `json:"phone"`
	Email          string         `json:"email,omitempty"`
	Interest       string         `json:"interest,omitempty"`
	Source         string         `json:"source,omitempty"`
	Notes          string         `json:"notes,omitempty"`
	StageID        string         `json:"stage_id"`
	OwnerID        *int64         `json:"owner_id,omitempty"`
	FollowUpDate   string         `json:"follow_up_date"`
	FollowUpStatus FollowUpStatus `json:"follow_up_status"`
}

// NewFormValues seeds an edit form from an existing lead, or empty-state
// defaults (today, open) for a create form.
func NewFormValues(l *Lead) FormValues {
	if l == nil {
		return FormValues{
			FollowUpDate:   time.Now().Format(DateLayout),
			FollowUpStatus: string(FollowUpOpen),
		}
	}

	fv := FormValues{
		FirstName:      l.FirstName,
		LastName:       l.LastName,
		Phone:          l.Phone,
		StageID:        l.StageID,
		FollowUpDate:   l.FollowUpDate,
		FollowUpStatus: string(l.FollowUpStatus),
	}
	if l.Email.Valid {
		fv.Email = l.Email.String
	}
	if l.Interest.Valid {
		fv.Interest = l.Interest.String
	}
	if l.Source.Valid {
		fv.Source = l.Source.String
	}
	if l.Notes.Valid {
		fv.Notes = l.Notes.String
	}
	if l.OwnerID.Valid {
		fv.OwnerID = l.OwnerID.Int64
	}
	return fv
}

// Validate checks the form against today's date. All-or-nothing: a nil map
// means the form may be submitted.
func (fv FormValues) Validate() map[string]string {
	return fv.ValidateAt(time.Now())
}

// ValidateAt validates against an explicit "now", for boundary control.
func (fv FormValues) ValidateAt(now time.Time) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(fv.FirstName) == "" {
		errs["first_name"] = validator.ReasonRequired
	}
	if strings.TrimSpace(fv.LastName) == "" {
		errs["last_name"] = validator.ReasonRequired
	}
	if len(strings.TrimSpace(fv.Phone)) < 5 {
		errs["phone"] = validator.ReasonTooShort
	}
	if e := strings.TrimSpace(fv.Email); e != "" && !emailRe.MatchString(e) {
		errs["email"] = validator.ReasonInvalidFormat
	}
	if strings.TrimSpace(fv.StageID) == "" {
		errs["stage_id"] = validator.ReasonRequired
	}

	switch fv.FollowUpDate {
	case "":
		errs["follow_up_date"] = validator.ReasonRequired
	default:
		if _, err := time.Parse(DateLayout, fv.FollowUpDate); err != nil {
			errs["follow_up_date"] = validator.ReasonInvalidFormat
		} else if fv.FollowUpDate < now.Format(DateLayout) {
			// String comparison is safe: the layout is zero-padded ISO.
			errs["follow_up_date"] = validator.ReasonDateInPast
		}
	}

	switch FollowUpStatus(fv.FollowUpStatus) {
	case FollowUpOpen, FollowUpDone:
	case "":
		errs["follow_up_status"] = validator.ReasonRequired
	default:
		errs["follow_up_status"] = validator.ReasonInvalidFormat
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Payload converts validated form values into the submission payload,
// trimming text fields and dropping empty optionals.
func (fv FormValues) Payload() Payload {
	p := Payload{
		FirstName:      strings.TrimSpace(fv.FirstName),
		LastName:       strings.TrimSpace(fv.LastName),
		Phone:          strings.TrimSpace(fv.Phone),
		Email:          strings.TrimSpace(fv.Email),
		Interest:       strings.TrimSpace(fv.Interest),
		Source:         strings.TrimSpace(fv.Source),
		Notes:          strings.TrimSpace(fv.Notes),
		StageID:        strings.TrimSpace(fv.StageID),
		FollowUpDate:   fv.FollowUpDate,
		FollowUpStatus: FollowUpStatus(fv.FollowUpStatus),
	}
	if fv.OwnerID != 0 {
		owner := fv.OwnerID
		p.OwnerID = &owner
	}
	return p
}
