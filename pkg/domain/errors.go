package domain

import "errors"

// error taxonomy shared by all engine packages
var (
	ErrNotFound       = errors.New("not found")
	ErrValidation     = errors.New("validation failed")
	ErrRuleEvaluation = errors.New("rule evaluation failed")
	ErrPersistence    = errors.New("persistence failed")
	ErrBusy           = errors.New("storage busy") // lock contention outlasted retries, worth another try later
)
