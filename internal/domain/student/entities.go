package student

import "errors"

var ErrNotFound = errors.New("student not found")

// Account is the identity slice of the userdata table used by the
// student-info view. Credential columns live with the auth service.
type Account struct {
	Email     string `gorm:"primaryKey;size:255;column:Email" json:"email"`
	FirstName string `gorm:"size:64;column:First_Name" json:"firstName"`
	LastName  string `gorm:"size:64;column:Last_Name" json:"lastName"`
}

func (Account) TableName() string { return "userdata" }
