package validator

// Reason codes for domain form validation. Returned to clients as
// field -> code maps, same shape as the struct-tag validation errors.
const (
	ReasonRequired         = "required"
	ReasonTooShort         = "too_short"
	ReasonInvalidFormat    = "invalid_format"
	ReasonDateInPast       = "date_in_past"
	ReasonInvalidReference = "invalid_reference"
)
