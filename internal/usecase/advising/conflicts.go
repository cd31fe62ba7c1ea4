package advising

import (
	"context"

	"advising-backend/internal/domain/record"
)

// checkConflicts runs the cross-term intersection inside the caller's
// transaction. Empty proposed sets short-circuit: a zero-candidate IN
// clause has nothing to match.
func checkConflicts(ctx context.Context, repo record.Repository, in CreateEntryInput) error {
	var conflict ConflictError

	if len(in.CourseIDs) > 0 {
		names, err := repo.ConflictingCourseNames(ctx, in.Email, in.CurrentTerm, in.CourseIDs)
		if err != nil {
			return err
		}
		conflict.Courses = names
	}
	if len(in.PrereqIDs) > 0 {
		names, err := repo.ConflictingPrereqNames(ctx, in.Email, in.CurrentTerm, in.PrereqIDs)
		if err != nil {
			return err
		}
		conflict.Prereqs = names
	}

	if len(conflict.Courses) > 0 || len(conflict.Prereqs) > 0 {
		return &conflict
	}
	return nil
}
