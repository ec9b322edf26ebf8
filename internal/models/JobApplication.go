package models

type JobApplication struct {
	Base
	ApplicantName   string `gorm:"not null" json:"applicantName"`
	ApplicantEmail  string `gorm:"not null" json:"applicantEmail"`
	ApplicantPhone  string `gorm:"not null" json:"applicantPhone"`
	Position        string `gorm:"not null" json:"position"`
	CurrentLocation string `gorm:"not null" json:"currentLocation"`
	TotalExperience int    `gorm:"not null" json:"totalExperience"`
	CurrentCompany  string `json:"currentCompany"`
	NoticePeriod    *int   `json:"noticePeriod"`
	CoverLetterText string `gorm:"type:text;not null" json:"coverLetterText"`
	ResumeURL       string `json:"resumeUrl"`
	Status          string `gorm:"not null;default:submitted" json:"status"`
}

func (JobApplication) Statuses() []string  { return JobStatuses }
func (a JobApplication) ResumePath() string { return a.ResumeURL }
