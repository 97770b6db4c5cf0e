package lead

import "errors"

var (
	ErrLeadNotFound     = errors.New("lead not found")
	ErrStageNotFound    = errors.New("stage not found")
	ErrAlreadyConverted = errors.New("lead already converted")
	ErrStageNotOnboard  = errors.New("lead stage is not an onboarding stage")
	ErrValidation       = errors.New("lead validation failed")
)
