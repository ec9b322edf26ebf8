package models

import (
	"time"

	"saira_acad/internal/auth"
)

// DefaultAdminUsername is the bootstrap admin, which can never be deleted or renamed.
const DefaultAdminUsername = "admin"

type Admin struct {
	Base
	Username    string    `gorm:"uniqueIndex;not null" json:"username"`
	Password    string    `gorm:"not null" json:"-"`
	Email       *string   `gorm:"uniqueIndex" json:"email"`
	AdminRole   string    `gorm:"column:role;not null;default:admin" json:"role"`
	Status      string    `gorm:"not null;default:active" json:"status"`
	CreatedDate time.Time `json:"createdDate"`
}

func (a *Admin) AccountID() uint      { return a.ID }
func (a *Admin) Role() auth.Role      { return auth.RoleAdmin }
func (a *Admin) Active() bool         { return a.Status == StatusActive }
func (a *Admin) PasswordHash() string { return a.Password }

func (a *Admin) Identity() auth.Identity {
	return auth.Identity{ID: a.ID, Type: auth.RoleAdmin, Username: a.Username}
}
