package course

import (
	"strings"

	"github.com/google/uuid"

	"musicschool/internal/pkg/validator"
)

// FormValues is the form-ready representation of a course.
type FormValues struct {
	InstrumentID string `json:"instrument_id"`
	Name         string `json:"name"`
	Difficulty   string `json:"difficulty"`
	Description  string `json:"description"`
	IsActive     *bool  `json:"is_active"`
}

// Payload is the canonical submission shape. Unlike lead notes, an empty
// description is kept as an empty string rather than omitted.
type Payload struct {
	InstrumentID string     `json:"instrument_id"`
	Name         string     `json:"name"`
	Difficulty   Difficulty `json:"difficulty"`
	Description  string     `json:"description"`
	IsActive     bool       `json:"is_active"`
}

// Validate checks the form. Nil means the form may be submitted.
func (fv FormValues) Validate() map[string]string {
	errs := make(map[string]string)

	if _, err := uuid.Parse(strings.TrimSpace(fv.InstrumentID)); err != nil {
		errs["instrument_id"] = validator.ReasonInvalidReference
	}
	if strings.TrimSpace(fv.Name) == "" {
		errs["name"] = validator.ReasonRequired
	}

	switch Difficulty(fv.Difficulty) {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
	case "":
		errs["difficulty"] = validator.ReasonRequired
	default:
		errs["difficulty"] = validator.ReasonInvalidFormat
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Payload converts validated form values. New records default to active.
func (fv FormValues) Payload() Payload {
	active := true
	if fv.IsActive != nil {
		active = *fv.IsActive
	}
	return Payload{
		InstrumentID: strings.TrimSpace(fv.InstrumentID),
		Name:         strings.TrimSpace(fv.Name),
		Difficulty:   Difficulty(fv.Difficulty),
		Description:  strings.TrimSpace(fv.Description),
		IsActive:     active,
	}
}

// NewFormValues seeds an edit form from an existing course, or defaults.
func NewFormValues(c *Course) FormValues {
	if c == nil {
		return FormValues{}
	}
	active := c.IsActive
	return FormValues{
		InstrumentID: c.InstrumentID,
		Name:         c.Name,
		Difficulty:   string(c.Difficulty),
		Description:  c.Description,
		IsActive:     &active,
	}
}
