package advising

import (
	"context"
	"errors"

	"advising-backend/internal/domain/record"
	"advising-backend/internal/domain/student"
	"advising-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type Usecase struct {
	records  record.Repository
	students student.Repository
	uow      uow.UnitOfWork
}

func NewUsecase(records record.Repository, students student.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{records: records, students: students, uow: tx}
}

// CreateEntry runs the whole submission as one transaction:
// supersede any still-Pending record for the same (email, lastTerm,
// currentTerm), check cross-term conflicts, insert the new record, then
// its mappings. A *ConflictError aborts with a full rollback; so does
// any storage fault — no partial record or mapping survives.
func (u *Usecase) CreateEntry(ctx context.Context, in CreateEntryInput) (int64, error) {
	if in.Email == "" {
		return 0, ErrEmailRequired
	}
	if in.LastTerm == "" || in.CurrentTerm == "" {
		return 0, ErrTermRequired
	}

	var advisingID int64
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		// Supersede: only a Pending record for the exact triple is replaced.
		// Accepted/Rejected records are terminal and stay untouched.
		prior, err := r.Records.FindPending(ctx, in.Email, in.LastTerm, in.CurrentTerm)
		switch {
		case err == nil:
			if err := r.Records.DeleteMappings(ctx, prior.AdvisingID); err != nil {
				return err
			}
			if err := r.Records.Delete(ctx, prior.AdvisingID); err != nil {
				return err
			}
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		if err := checkConflicts(ctx, r.Records, in); err != nil {
			return err
		}

		rec := &record.AdvisingRecord{
			StudentEmail: in.Email,
			LastTerm:     in.LastTerm,
			LastGPA:      in.LastGPA,
			CurrentTerm:  in.CurrentTerm,
			Status:       record.StatusPending,
		}
		if err := r.Records.Create(ctx, rec); err != nil {
			return err
		}
		if err := r.Records.InsertCourseMappings(ctx, rec.AdvisingID, in.CourseIDs); err != nil {
			return err
		}
		if err := r.Records.InsertPrereqMappings(ctx, rec.AdvisingID, in.PrereqIDs); err != nil {
			return err
		}
		advisingID = rec.AdvisingID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return advisingID, nil
}

// ListRecords returns every record, or only the student's when email is set.
// No rows is an empty slice, not an error.
func (u *Usecase) ListRecords(ctx context.Context, email string) ([]record.AdvisingRecord, error) {
	if email == "" {
		return u.records.ListAll(ctx)
	}
	return u.records.ListByStudent(ctx, email)
}

// StudentInfo joins identity, record snapshot, and selections. Either the
// identity or the record missing yields student.ErrNotFound.
func (u *Usecase) StudentInfo(ctx context.Context, email string, advisingID int64) (*StudentInfoDTO, error) {
	acct, err := u.students.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, student.ErrNotFound
		}
		return nil, err
	}

	rec, err := u.records.GetByStudentAndID(ctx, email, advisingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, student.ErrNotFound
		}
		return nil, err
	}

	courses, err := u.records.CourseSelections(ctx, rec.AdvisingID)
	if err != nil {
		return nil, err
	}
	prereqs, err := u.records.PrereqSelections(ctx, rec.AdvisingID)
	if err != nil {
		return nil, err
	}
	// Zero-selection entries are legal; the view always carries arrays.
	if courses == nil {
		courses = []record.CourseSelection{}
	}
	if prereqs == nil {
		prereqs = []record.PrereqSelection{}
	}

	return &StudentInfoDTO{
		FirstName:   acct.FirstName,
		LastName:    acct.LastName,
		LastTerm:    rec.LastTerm,
		CurrentTerm: rec.CurrentTerm,
		LastGPA:     rec.LastGPA,
		AdvisingID:  rec.AdvisingID,
		Status:      rec.Status,
		Courses:     courses,
		Prereqs:     prereqs,
	}, nil
}

// PreviousCourses lists the distinct courses mapped across all of the
// student's records; an empty result is success.
func (u *Usecase) PreviousCourses(ctx context.Context, email string) ([]record.CourseSelection, error) {
	if email == "" {
		return nil, ErrEmailRequired
	}
	return u.records.DistinctCourses(ctx, email)
}
