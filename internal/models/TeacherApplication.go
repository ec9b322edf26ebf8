package models

type TeacherApplication struct {
	Base
	TeacherName          string `gorm:"not null" json:"teacherName"`
	TeacherEmail         string `gorm:"not null" json:"teacherEmail"`
	TeacherPhone         string `gorm:"not null" json:"teacherPhone"`
	TeacherQualification string `gorm:"not null" json:"teacherQualification"`
	TeacherSubject       string `gorm:"not null" json:"teacherSubject"`
	TeacherExperience    int    `gorm:"not null" json:"teacherExperience"`
	PreferredLocation    string `gorm:"not null" json:"preferredLocation"`
	CurrentSalary        string `json:"currentSalary"`
	CoverLetter          string `gorm:"type:text" json:"coverLetter"`
	ResumeURL            string `json:"resumeUrl"`
	Status               string `gorm:"not null;default:submitted" json:"status"`
}

func (TeacherApplication) Statuses() []string  { return TeacherStatuses }
func (a TeacherApplication) ResumePath() string { return a.ResumeURL }
