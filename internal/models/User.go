package models

import (
	"time"

	"saira_acad/internal/auth"
)

type User struct {
	Base
	FullName      string `gorm:"not null" json:"fullName"`
	PhoneNumber   string `gorm:"not null" json:"phoneNumber"`
	Qualification string `gorm:"not null" json:"qualification"`
	Email         string `gorm:"uniqueIndex;not null" json:"email"`
	Password      string `gorm:"not null" json:"-"`

	RegisteredDate    time.Time `json:"registeredDate"`
	Progress          int       `gorm:"not null;default:0" json:"progress"`
	EnrolledCourses   int       `gorm:"not null;default:0" json:"enrolledCourses"`
	CompletedCourses  int       `gorm:"not null;default:0" json:"completedCourses"`
	InProgressCourses int       `gorm:"not null;default:0" json:"inProgressCourses"`

	Status string `gorm:"not null;default:active;index" json:"status"`
}

func (u *User) AccountID() uint      { return u.ID }
func (u *User) Role() auth.Role      { return auth.RoleUser }
func (u *User) Active() bool         { return u.Status == StatusActive }
func (u *User) PasswordHash() string { return u.Password }

func (u *User) Identity() auth.Identity {
	return auth.Identity{ID: u.ID, Type: auth.RoleUser, Email: u.Email}
}
