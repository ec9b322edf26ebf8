package models

import (
	"time"

	"saira_acad/internal/auth"
)

// SchoolPartner is a school account created by an admin. It can read the
// application listings while its status is active.
type SchoolPartner struct {
	Base
	SchoolName  string    `gorm:"not null" json:"schoolName"`
	Username    string    `gorm:"uniqueIndex;not null" json:"username"`
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"not null" json:"-"`
	Status      string    `gorm:"not null;default:active" json:"status"`
	CreatedBy   uint      `json:"createdBy"`
	CreatedDate time.Time `json:"createdDate"`
}

func (p *SchoolPartner) AccountID() uint      { return p.ID }
func (p *SchoolPartner) Role() auth.Role      { return auth.RolePartner }
func (p *SchoolPartner) Active() bool         { return p.Status == StatusActive }
func (p *SchoolPartner) PasswordHash() string { return p.Password }

func (p *SchoolPartner) Identity() auth.Identity {
	return auth.Identity{ID: p.ID, Type: auth.RolePartner, Username: p.Username, SchoolName: p.SchoolName}
}
