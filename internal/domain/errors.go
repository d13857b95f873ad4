package domain

import "errors"

var (
	ErrNotFound               = errors.New("not found")
	ErrForbidden              = errors.New("forbidden")
	ErrValidation             = errors.New("invalid input")
	ErrDuplicateUnlockRequest = errors.New("an active or pending unlock request already exists for this project")
	ErrNotPending             = errors.New("only pending requests can be approved or rejected")
)
