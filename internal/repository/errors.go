package repository

import "errors"

var (
	// ErrNotFound is returned when a row lookup matches nothing.
	ErrNotFound = errors.New("not found")

	// ErrCourseClaimed is returned when a course claim races another owner.
	ErrCourseClaimed = errors.New("course already claimed")
)
