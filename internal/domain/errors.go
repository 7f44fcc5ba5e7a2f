package domain

import "errors"

// Sentinel errors for the persistence-facing services. The planning and
// analysis engines themselves are total functions and never return errors.
var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("already exists")
)
