package advising

import (
	"advising-backend/internal/domain/record"
)

type CreateEntryInput struct {
	Email       string
	LastTerm    string
	LastGPA     float64
	CurrentTerm string
	PrereqIDs   []int64
	CourseIDs   []int64
}

// StudentInfoDTO is the composite view joining the student's identity,
// one record snapshot, and that record's selections.
type StudentInfoDTO struct {
	FirstName   string                   `json:"firstName"`
	LastName    string                   `json:"lastName"`
	LastTerm    string                   `json:"lastTerm"`
	CurrentTerm string                   `json:"currentTerm"`
	LastGPA     float64                  `json:"lastGPA"`
	AdvisingID  int64                    `json:"advisingID"`
	Status      record.Status            `json:"status"`
	Courses     []record.CourseSelection `json:"courses"`
	Prereqs     []record.PrereqSelection `json:"prereqs"`
}
