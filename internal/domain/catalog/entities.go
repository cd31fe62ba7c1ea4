package catalog

// Immutable reference data; this service never writes either table.

type Course struct {
	CourseID   int64  `gorm:"primaryKey;column:courseID" json:"courseID"`
	CourseCode string `gorm:"size:16;column:courseCode" json:"courseCode"`
	CourseName string `gorm:"size:255;column:courseName" json:"courseName"`
}

func (Course) TableName() string { return "coursecatalog" }

type Prereq struct {
	CourseID      int64  `gorm:"primaryKey;column:courseID" json:"courseID"`
	PreCourseCode string `gorm:"size:16;column:preCourseCode" json:"preCourseCode"`
	PreCourseName string `gorm:"size:255;column:preCourseName" json:"preCourseName"`
}

func (Prereq) TableName() string { return "prereqcatalog" }
