package models

var Programs = []string{"foundation", "advanced", "leadership", "digital", "subject", "special"}

// Enrollment is a request to join a mentorship or training program.
type Enrollment struct {
	Base
	FullName   string `gorm:"not null" json:"fullName"`
	Email      string `gorm:"not null;index" json:"email"`
	Phone      string `gorm:"not null" json:"phone"`
	Program    string `gorm:"not null" json:"program"`
	Experience int    `gorm:"not null;default:0" json:"experience"`
	Message    string `gorm:"type:text;not null" json:"message"`
	Status     string `gorm:"not null;default:pending" json:"status"`
}

func (Enrollment) Statuses() []string { return EnrollmentStatuses }
