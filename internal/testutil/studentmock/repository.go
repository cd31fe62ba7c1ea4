package studentmock

import (
	"context"
	"errors"

	domain "advising-backend/internal/domain/student"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("studentmock: method not implemented")

type Repo struct {
	GetByEmailFn func(ctx context.Context, email string) (*domain.Account, error)
}

func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, errUnimplemented
}
