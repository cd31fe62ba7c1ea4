package record

import "context"

type Repository interface {
	Create(ctx context.Context, rec *AdvisingRecord) error
	ListAll(ctx context.Context) ([]AdvisingRecord, error)
	ListByStudent(ctx context.Context, email string) ([]AdvisingRecord, error)
	GetByAdvisingID(ctx context.Context, advisingID int64) (*AdvisingRecord, error)
	GetByStudentAndID(ctx context.Context, email string, advisingID int64) (*AdvisingRecord, error)

	// FindPending returns the Pending record for the exact
	// (studentEmail, lastTerm, currentTerm) triple, gorm.ErrRecordNotFound otherwise.
	FindPending(ctx context.Context, email, lastTerm, currentTerm string) (*AdvisingRecord, error)
	Delete(ctx context.Context, advisingID int64) error

	UpdateStatus(ctx context.Context, advisingID int64, status Status) error
	UpdateDecision(ctx context.Context, advisingID int64, status Status, rejectReason *string) error

	InsertCourseMappings(ctx context.Context, advisingID int64, courseIDs []int64) error
	InsertPrereqMappings(ctx context.Context, advisingID int64, prereqIDs []int64) error
	// DeleteMappings removes both course and prereq rows for the record.
	DeleteMappings(ctx context.Context, advisingID int64) error

	CourseSelections(ctx context.Context, advisingID int64) ([]CourseSelection, error)
	PrereqSelections(ctx context.Context, advisingID int64) ([]PrereqSelection, error)
	// DistinctCourses lists every course ever mapped to one of the student's records.
	DistinctCourses(ctx context.Context, email string) ([]CourseSelection, error)

	// ConflictingCourseNames returns DISTINCT catalog names among courseIDs that
	// already appear in one of the student's records for a term other than
	// excludeTerm. Empty input must yield no conflicts without querying.
	ConflictingCourseNames(ctx context.Context, email, excludeTerm string, courseIDs []int64) ([]string, error)
	ConflictingPrereqNames(ctx context.Context, email, excludeTerm string, prereqIDs []int64) ([]string, error)
}
