package recordmock

import (
	"context"
	"errors"

	domain "advising-backend/internal/domain/record"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("recordmock: method not implemented")

// Repo is a function-backed mock that satisfies record.Repository.
// Fill in the function fields a test needs; unfilled ones fail loudly.
type Repo struct {
	CreateFn                 func(ctx context.Context, rec *domain.AdvisingRecord) error
	ListAllFn                func(ctx context.Context) ([]domain.AdvisingRecord, error)
	ListByStudentFn          func(ctx context.Context, email string) ([]domain.AdvisingRecord, error)
	GetByAdvisingIDFn        func(ctx context.Context, advisingID int64) (*domain.AdvisingRecord, error)
	GetByStudentAndIDFn      func(ctx context.Context, email string, advisingID int64) (*domain.AdvisingRecord, error)
	FindPendingFn            func(ctx context.Context, email, lastTerm, currentTerm string) (*domain.AdvisingRecord, error)
	DeleteFn                 func(ctx context.Context, advisingID int64) error
	UpdateStatusFn           func(ctx context.Context, advisingID int64, status domain.Status) error
	UpdateDecisionFn         func(ctx context.Context, advisingID int64, status domain.Status, rejectReason *string) error
	InsertCourseMappingsFn   func(ctx context.Context, advisingID int64, courseIDs []int64) error
	InsertPrereqMappingsFn   func(ctx context.Context, advisingID int64, prereqIDs []int64) error
	DeleteMappingsFn         func(ctx context.Context, advisingID int64) error
	CourseSelectionsFn       func(ctx context.Context, advisingID int64) ([]domain.CourseSelection, error)
	PrereqSelectionsFn       func(ctx context.Context, advisingID int64) ([]domain.PrereqSelection, error)
	DistinctCoursesFn        func(ctx context.Context, email string) ([]domain.CourseSelection, error)
	ConflictingCourseNamesFn func(ctx context.Context, email, excludeTerm string, courseIDs []int64) ([]string, error)
	ConflictingPrereqNamesFn func(ctx context.Context, email, excludeTerm string, prereqIDs []int64) ([]string, error)
}

func (m *Repo) Create(ctx context.Context, rec *domain.AdvisingRecord) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, rec)
	}
	return errUnimplemented
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.AdvisingRecord, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByStudent(ctx context.Context, email string) ([]domain.AdvisingRecord, error) {
	if m.ListByStudentFn != nil {
		return m.ListByStudentFn(ctx, email)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByAdvisingID(ctx context.Context, advisingID int64) (*domain.AdvisingRecord, error) {
	if m.GetByAdvisingIDFn != nil {
		return m.GetByAdvisingIDFn(ctx, advisingID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByStudentAndID(ctx context.Context, email string, advisingID int64) (*domain.AdvisingRecord, error) {
	if m.GetByStudentAndIDFn != nil {
		return m.GetByStudentAndIDFn(ctx, email, advisingID)
	}
	return nil, errUnimplemented
}

func (m *Repo) FindPending(ctx context.Context, email, lastTerm, currentTerm string) (*domain.AdvisingRecord, error) {
	if m.FindPendingFn != nil {
		return m.FindPendingFn(ctx, email, lastTerm, currentTerm)
	}
	return nil, errUnimplemented
}

func (m *Repo) Delete(ctx context.Context, advisingID int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, advisingID)
	}
	return errUnimplemented
}

func (m *Repo) UpdateStatus(ctx context.Context, advisingID int64, status domain.Status) error {
	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(ctx, advisingID, status)
	}
	return errUnimplemented
}

func (m *Repo) UpdateDecision(ctx context.Context, advisingID int64, status domain.Status, rejectReason *string) error {
	if m.UpdateDecisionFn != nil {
		return m.UpdateDecisionFn(ctx, advisingID, status, rejectReason)
	}
	return errUnimplemented
}

func (m *Repo) InsertCourseMappings(ctx context.Context, advisingID int64, courseIDs []int64) error {
	if m.InsertCourseMappingsFn != nil {
		return m.InsertCourseMappingsFn(ctx, advisingID, courseIDs)
	}
	return errUnimplemented
}

func (m *Repo) InsertPrereqMappings(ctx context.Context, advisingID int64, prereqIDs []int64) error {
	if m.InsertPrereqMappingsFn != nil {
		return m.InsertPrereqMappingsFn(ctx, advisingID, prereqIDs)
	}
	return errUnimplemented
}

func (m *Repo) DeleteMappings(ctx context.Context, advisingID int64) error {
	if m.DeleteMappingsFn != nil {
		return m.DeleteMappingsFn(ctx, advisingID)
	}
	return errUnimplemented
}

func (m *Repo) CourseSelections(ctx context.Context, advisingID int64) ([]domain.CourseSelection, error) {
	if m.CourseSelectionsFn != nil {
		return m.CourseSelectionsFn(ctx, advisingID)
	}
	return nil, errUnimplemented
}

func (m *Repo) PrereqSelections(ctx context.Context, advisingID int64) ([]domain.PrereqSelection, error) {
	if m.PrereqSelectionsFn != nil {
		return m.PrereqSelectionsFn(ctx, advisingID)
	}
	return nil, errUnimplemented
}

func (m *Repo) DistinctCourses(ctx context.Context, email string) ([]domain.CourseSelection, error) {
	if m.DistinctCoursesFn != nil {
		return m.DistinctCoursesFn(ctx, email)
	}
	return nil, errUnimplemented
}

func (m *Repo) ConflictingCourseNames(ctx context.Context, email, excludeTerm string, courseIDs []int64) ([]string, error) {
	if m.ConflictingCourseNamesFn != nil {
		return m.ConflictingCourseNamesFn(ctx, email, excludeTerm, courseIDs)
	}
	return nil, errUnimplemented
}

func (m *Repo) ConflictingPrereqNames(ctx context.Context, email, excludeTerm string, prereqIDs []int64) ([]string, error) {
	if m.ConflictingPrereqNamesFn != nil {
		return m.ConflictingPrereqNamesFn(ctx, email, excludeTerm, prereqIDs)
	}
	return nil, errUnimplemented
}
