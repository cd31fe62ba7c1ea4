package mysql

import (
	"context"

	recordDomain "advising-backend/internal/domain/record"

	"gorm.io/gorm"
)

type RecordRepository struct{ db *gorm.DB }

func NewRecordRepository(db *gorm.DB) *RecordRepository { return &RecordRepository{db: db} }

func (r *RecordRepository) Create(ctx context.Context, rec *recordDomain.AdvisingRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *RecordRepository) ListAll(ctx context.Context) ([]recordDomain.AdvisingRecord, error) {
	var out []recordDomain.AdvisingRecord
	err := r.db.WithContext(ctx).Order("advisingID").Find(&out).Error
	return out, err
}

func (r *RecordRepository) ListByStudent(ctx context.Context, email string) ([]recordDomain.AdvisingRecord, error) {
	var out []recordDomain.AdvisingRecord
	err := r.db.WithContext(ctx).
		Where("studentEmail = ?", email).
		Order("advisingID").
		Find(&out).Error
	return out, err
}

func (r *RecordRepository) GetByAdvisingID(ctx context.Context, advisingID int64) (*recordDomain.AdvisingRecord, error) {
	var out recordDomain.AdvisingRecord
	res := r.db.WithContext(ctx).Where("advisingID = ?", advisingID).First(&out)
	return &out, res.Error
}

func (r *RecordRepository) GetByStudentAndID(ctx context.Context, email string, advisingID int64) (*recordDomain.AdvisingRecord, error) {
	var out recordDomain.AdvisingRecord
	res := r.db.WithContext(ctx).
		Where("studentEmail = ? AND advisingID = ?", email, advisingID).
		First(&out)
	return &out, res.Error
}

func (r *RecordRepository) FindPending(ctx context.Context, email, lastTerm, currentTerm string) (*recordDomain.AdvisingRecord, error) {
	var out recordDomain.AdvisingRecord
	res := r.db.WithContext(ctx).
		Where("studentEmail = ? AND lastTerm = ? AND currentTerm = ? AND status = ?",
			email, lastTerm, currentTerm, recordDomain.StatusPending).
		First(&out)
	return &out, res.Error
}

func (r *RecordRepository) Delete(ctx context.Context, advisingID int64) error {
	return r.db.WithContext(ctx).
		Where("advisingID = ?", advisingID).
		Delete(&recordDomain.AdvisingRecord{}).Error
}

func (r *RecordRepository) UpdateStatus(ctx context.Context, advisingID int64, status recordDomain.Status) error {
	return r.db.WithContext(ctx).
		Model(&recordDomain.AdvisingRecord{}).
		Where("advisingID = ?", advisingID).
		Update("status", status).Error
}

func (r *RecordRepository) UpdateDecision(ctx context.Context, advisingID int64, status recordDomain.Status, rejectReason *string) error {
	return r.db.WithContext(ctx).
		Model(&recordDomain.AdvisingRecord{}).
		Where("advisingID = ?", advisingID).
		Updates(map[string]any{"status": status, "rejectReason": rejectReason}).Error
}

func (r *RecordRepository) InsertCourseMappings(ctx context.Context, advisingID int64, courseIDs []int64) error {
	if len(courseIDs) == 0 {
		return nil
	}
	rows := make([]recordDomain.CourseMapping, 0, len(courseIDs))
	for _, id := range courseIDs {
		rows = append(rows, recordDomain.CourseMapping{AdvisingID: advisingID, CourseID: id})
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *RecordRepository) InsertPrereqMappings(ctx context.Context, advisingID int64, prereqIDs []int64) error {
	if len(prereqIDs) == 0 {
		return nil
	}
	rows := make([]recordDomain.PrereqMapping, 0, len(prereqIDs))
	for _, id := range prereqIDs {
		rows = append(rows, recordDomain.PrereqMapping{AdvisingID: advisingID, CourseID: id})
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *RecordRepository) DeleteMappings(ctx context.Context, advisingID int64) error {
	if err := r.db.WithContext(ctx).
		Where("advising_ID = ?", advisingID).
		Delete(&recordDomain.CourseMapping{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Where("advising_ID = ?", advisingID).
		Delete(&recordDomain.PrereqMapping{}).Error
}

func (r *RecordRepository) CourseSelections(ctx context.Context, advisingID int64) ([]recordDomain.CourseSelection, error) {
	var out []recordDomain.CourseSelection
	err := r.db.WithContext(ctx).
		Table("coursemapping AS m").
		Select("c.courseCode, c.courseName").
		Joins("INNER JOIN coursecatalog c ON m.course_ID = c.courseID").
		Where("m.advising_ID = ?", advisingID).
		Scan(&out).Error
	return out, err
}

func (r *RecordRepository) PrereqSelections(ctx context.Context, advisingID int64) ([]recordDomain.PrereqSelection, error) {
	var out []recordDomain.PrereqSelection
	err := r.db.WithContext(ctx).
		Table("prereqmapping AS m").
		Select("c.preCourseCode, c.preCourseName").
		Joins("INNER JOIN prereqcatalog c ON m.course_ID = c.courseID").
		Where("m.advising_ID = ?", advisingID).
		Scan(&out).Error
	return out, err
}

func (r *RecordRepository) DistinctCourses(ctx context.Context, email string) ([]recordDomain.CourseSelection, error) {
	var out []recordDomain.CourseSelection
	err := r.db.WithContext(ctx).
		Table("records AS r").
		Select("DISTINCT c.courseCode, c.courseName").
		Joins("JOIN coursemapping m ON r.advisingID = m.advising_ID").
		Joins("JOIN coursecatalog c ON m.course_ID = c.courseID").
		Where("r.studentEmail = ?", email).
		Scan(&out).Error
	return out, err
}

func (r *RecordRepository) ConflictingCourseNames(ctx context.Context, email, excludeTerm string, courseIDs []int64) ([]string, error) {
	if len(courseIDs) == 0 {
		return nil, nil
	}
	var names []string
	err := r.db.WithContext(ctx).
		Table("records AS r").
		Distinct().
		Joins("JOIN coursemapping m ON r.advisingID = m.advising_ID").
		Joins("JOIN coursecatalog c ON m.course_ID = c.courseID").
		Where("r.studentEmail = ? AND r.currentTerm <> ? AND m.course_ID IN ?", email, excludeTerm, courseIDs).
		Pluck("c.courseName", &names).Error
	return names, err
}

func (r *RecordRepository) ConflictingPrereqNames(ctx context.Context, email, excludeTerm string, prereqIDs []int64) ([]string, error) {
	if len(prereqIDs) == 0 {
		return nil, nil
	}
	var names []string
	err := r.db.WithContext(ctx).
		Table("records AS r").
		Distinct().
		Joins("JOIN prereqmapping m ON r.advisingID = m.advising_ID").
		Joins("JOIN prereqcatalog c ON m.course_ID = c.courseID").
		Where("r.studentEmail = ? AND r.currentTerm <> ? AND m.course_ID IN ?", email, excludeTerm, prereqIDs).
		Pluck("c.preCourseName", &names).Error
	return names, err
}
