package utils

import "errors"

var (
	ErrJobNotFound        = errors.New("job not found")
	ErrCandidateNotFound  = errors.New("candidate not found")
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrSlugTaken          = errors.New("slug already in use")
	ErrInvalidStage       = errors.New("invalid candidate stage")
	ErrInvalidStatus      = errors.New("invalid job status")
	ErrInvalidEditOp      = errors.New("invalid edit operation")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrDatabaseError      = errors.New("database error")
)
