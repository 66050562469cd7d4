package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound — entity absent, or owned by another tenant (the two are
	// deliberately indistinguishable at the API).
	ErrNotFound = errors.New("not found")

	// ErrValidation — a request or patch struct failed validation.
	ErrValidation = errors.New("validation failed")
)

// DependentsError blocks deletion of a record that still has dependents.
type DependentsError struct {
	Count int64
}

func (e *DependentsError) Error() string {
	return fmt.Sprintf("record has %d dependent trainers; remove them first", e.Count)
}
