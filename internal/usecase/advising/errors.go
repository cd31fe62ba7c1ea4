package advising

import (
	"errors"
	"strings"
)

var (
	ErrEmailRequired = errors.New("email is required")
	ErrTermRequired  = errors.New("lastTerm and currentTerm are required")
)

// ConflictError reports catalog items already scheduled in one of the
// student's other-term records. Either list may be empty, never both.
type ConflictError struct {
	Courses []string
	Prereqs []string
}

func (e *ConflictError) Error() string {
	var parts []string
	if len(e.Courses) > 0 {
		parts = append(parts, "courses already scheduled in other terms: "+strings.Join(e.Courses, ", "))
	}
	if len(e.Prereqs) > 0 {
		parts = append(parts, "prerequisites already scheduled in other terms: "+strings.Join(e.Prereqs, ", "))
	}
	return strings.Join(parts, "; ")
}
