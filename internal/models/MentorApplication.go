package models

// MinMentorExperience is the minimum years of experience a mentor applicant needs.
const MinMentorExperience = 10

type MentorApplication struct {
	Base
	MentorName           string `gorm:"not null" json:"mentorName"`
	MentorEmail          string `gorm:"not null" json:"mentorEmail"`
	MentorPhone          string `gorm:"not null" json:"mentorPhone"`
	MentorQualification  string `gorm:"not null" json:"mentorQualification"`
	MentorExperience     int    `gorm:"not null" json:"mentorExperience"`
	MentorSpecialization string `gorm:"not null" json:"mentorSpecialization"`
	MentorAchievements   string `gorm:"type:text;not null" json:"mentorAchievements"`
	MentorAvailability   *int   `json:"mentorAvailability"`
	MentorWhy            string `gorm:"type:text;not null" json:"mentorWhy"`
	Status               string `gorm:"not null;default:submitted" json:"status"`
}

func (MentorApplication) Statuses() []string { return MentorStatuses }
