package mysql

import (
	"context"

	catalogDomain "advising-backend/internal/domain/catalog"

	"gorm.io/gorm"
)

type CatalogRepository struct{ db *gorm.DB }

func NewCatalogRepository(db *gorm.DB) *CatalogRepository { return &CatalogRepository{db: db} }

func (r *CatalogRepository) ListCourses(ctx context.Context) ([]catalogDomain.Course, error) {
	var out []catalogDomain.Course
	err := r.db.WithContext(ctx).Order("courseID").Find(&out).Error
	return out, err
}

func (r *CatalogRepository) ListPrereqs(ctx context.Context) ([]catalogDomain.Prereq, error) {
	var out []catalogDomain.Prereq
	err := r.db.WithContext(ctx).Order("courseID").Find(&out).Error
	return out, err
}
