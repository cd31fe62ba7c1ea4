package catalog

import "context"

type Repository interface {
	ListCourses(ctx context.Context) ([]Course, error)
	ListPrereqs(ctx context.Context) ([]Prereq, error)
}
