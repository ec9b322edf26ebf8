package models

import "time"

// Base replaces gorm.Model: rows are removed physically, there is no DeletedAt.
type Base struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// All lists every persisted model, in migration order.
func All() []any {
	return []any{
		&User{}, &Admin{}, &SchoolPartner{},
		&Enrollment{}, &SchoolRequirement{},
		&TeacherApplication{}, &MentorApplication{}, &JobApplication{},
		&Consultation{}, &Contact{}, &PartnerContact{}, &EducatorContact{},
	}
}
