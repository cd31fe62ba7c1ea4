package record

import (
	"time"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusAccepted Status = "Accepted"
	StatusRejected Status = "Rejected"
)

// AdvisingRecord is one student's course-plan submission for a term pair.
// At most one Pending row may exist per (studentEmail, lastTerm, currentTerm);
// the create-entry transaction enforces that, not the schema.
type AdvisingRecord struct {
	AdvisingID   int64     `gorm:"primaryKey;autoIncrement;column:advisingID" json:"advisingID"`
	StudentEmail string    `gorm:"size:255;column:studentEmail;index:idx_records_student" json:"studentEmail"`
	LastTerm     string    `gorm:"size:32;column:lastTerm" json:"lastTerm"`
	LastGPA      float64   `gorm:"type:decimal(4,2);column:lastGPA" json:"lastGPA"`
	CurrentTerm  string    `gorm:"size:32;column:currentTerm" json:"currentTerm"`
	Status       Status    `gorm:"type:enum('Pending','Accepted','Rejected');default:'Pending';column:status" json:"status"`
	RejectReason *string   `gorm:"type:text;column:rejectReason" json:"rejectReason,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (AdvisingRecord) TableName() string { return "records" }

// CourseMapping joins a record to one catalog course. Rows are owned by the
// parent record and must never outlive it.
type CourseMapping struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement;column:id"`
	AdvisingID int64  `gorm:"column:advising_ID;index:idx_coursemapping_advising"`
	CourseID   int64  `gorm:"column:course_ID"`
}

func (CourseMapping) TableName() string { return "coursemapping" }

type PrereqMapping struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement;column:id"`
	AdvisingID int64  `gorm:"column:advising_ID;index:idx_prereqmapping_advising"`
	CourseID   int64  `gorm:"column:course_ID"`
}

func (PrereqMapping) TableName() string { return "prereqmapping" }

// CourseSelection is the read model for a mapped course (joined to the catalog).
type CourseSelection struct {
	CourseCode string `gorm:"column:courseCode" json:"courseCode"`
	CourseName string `gorm:"column:courseName" json:"courseName"`
}

// PrereqSelection is the read model for a mapped prerequisite.
type PrereqSelection struct {
	PreCourseCode string `gorm:"column:preCourseCode" json:"preCourseCode"`
	PreCourseName string `gorm:"column:preCourseName" json:"preCourseName"`
}
