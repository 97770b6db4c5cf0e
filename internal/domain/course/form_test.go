package course

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCourseForm() FormValues {
	return FormValues{
		InstrumentID: uuid.NewString(),
		Name:         "Piano Foundations",
		Difficulty:   "beginner",
	}
}

func TestCourseValidate_HappyPath(t *testing.T) {
	fv := validCourseForm()
	assert.Nil(t, fv.Validate())

	p := fv.Payload()
	assert.True(t, p.IsActive, "new records default to active")
	assert.Equal(t, DifficultyBeginner, p.Difficulty)
}

func TestCourseValidate_InstrumentReference(t *testing.T) {
	fv := validCourseForm()
	fv.InstrumentID = "not-a-uuid"

	errs := fv.Validate()
	require.NotNil(t, errs)
	assert.Equal(t, "invalid_reference", errs["instrument_id"])
}

func TestCourseValidate_NameWhitespaceOnly(t *testing.T) {
	fv := validCourseForm()
	fv.Name = "  "

	errs := fv.Validate()
	require.NotNil(t, errs)
	assert.Equal(t, "required", errs["name"])
}

func TestCourseValidate_DifficultyEnum(t *testing.T) {
	fv := validCourseForm()

	fv.Difficulty = "expert"
	errs := fv.Validate()
	require.NotNil(t, errs)
	assert.Equal(t, "invalid_format", errs["difficulty"])

	fv.Difficulty = ""
	errs = fv.Validate()
	require.NotNil(t, errs)
	assert.Equal(t, "required", errs["difficulty"])

	fv.Difficulty = "advanced"
	assert.Nil(t, fv.Validate())
}

func TestCoursePayload_DescriptionKeptWhenEmpty(t *testing.T) {
	// Description stays an empty string in the payload, unlike the lead
	// form where empty optionals are dropped.
	fv := validCourseForm()
	fv.Description = ""

	p := fv.Payload()
	assert.Equal(t, "", p.Description)
}

func TestCoursePayload_ExplicitInactive(t *testing.T) {
	inactive := false
	fv := validCourseForm()
	fv.IsActive = &inactive

	assert.False(t, fv.Payload().IsActive)
}

func TestNewFormValues_SeedsEditForm(t *testing.T) {
	c := &Course{
		InstrumentID: uuid.NewString(),
		Name:         "Violin Intermediate",
		Difficulty:   DifficultyIntermediate,
		Description:  "",
		IsActive:     false,
	}

	fv := NewFormValues(c)
	assert.Equal(t, c.InstrumentID, fv.InstrumentID)
	assert.Equal(t, "intermediate", fv.Difficulty)
	require.NotNil(t, fv.IsActive)
	assert.False(t, *fv.IsActive)
}
