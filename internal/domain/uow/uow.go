package uow

import (
	"context"

	"advising-backend/internal/domain/catalog"
	"advising-backend/internal/domain/record"
	"advising-backend/internal/domain/student"
)

type Repos struct {
	Records  record.Repository
	Catalog  catalog.Repository
	Students student.Repository
}

// UnitOfWork runs fn against repositories bound to one database
// transaction; any error from fn rolls the whole transaction back.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
