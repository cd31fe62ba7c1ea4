package mysql

import (
	"context"

	studentDomain "advising-backend/internal/domain/student"

	"gorm.io/gorm"
)

type StudentRepository struct{ db *gorm.DB }

func NewStudentRepository(db *gorm.DB) *StudentRepository { return &StudentRepository{db: db} }

func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*studentDomain.Account, error) {
	var out studentDomain.Account
	res := r.db.WithContext(ctx).Where("Email = ?", email).First(&out)
	return &out, res.Error
}
