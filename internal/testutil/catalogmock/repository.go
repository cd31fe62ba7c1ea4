package catalogmock

import (
	"context"
	"errors"

	domain "advising-backend/internal/domain/catalog"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("catalogmock: method not implemented")

type Repo struct {
	ListCoursesFn func(ctx context.Context) ([]domain.Course, error)
	ListPrereqsFn func(ctx context.Context) ([]domain.Prereq, error)
}

func (m *Repo) ListCourses(ctx context.Context) ([]domain.Course, error) {
	if m.ListCoursesFn != nil {
		return m.ListCoursesFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListPrereqs(ctx context.Context) ([]domain.Prereq, error) {
	if m.ListPrereqsFn != nil {
		return m.ListPrereqsFn(ctx)
	}
	return nil, errUnimplemented
}
