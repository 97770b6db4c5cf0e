package course

import "errors"

var (
	ErrCourseNotFound     = errors.New("course not found")
	ErrInstrumentNotFound = errors.New("instrument not found")
	ErrPlanNotFound       = errors.New("course plan not found")
)
