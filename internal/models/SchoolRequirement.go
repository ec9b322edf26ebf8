package models

var PositionTypes = []string{"full-time", "part-time", "substitute", "contract"}

// SchoolRequirement is a school asking for a teacher.
type SchoolRequirement struct {
	Base
	SchoolName     string `gorm:"not null" json:"schoolName"`
	SchoolLocation string `gorm:"not null" json:"schoolLocation"`
	ContactPerson  string `gorm:"not null" json:"contactPerson"`
	ContactEmail   string `gorm:"not null" json:"contactEmail"`
	ContactPhone   string `gorm:"not null" json:"contactPhone"`
	PositionType   string `gorm:"not null" json:"positionType"`
	Subject        string `gorm:"not null" json:"subject"`
	Grades         string `gorm:"not null" json:"grades"`
	Experience     int    `gorm:"not null;default:0" json:"experience"`
	Salary         string `json:"salary"`
	AdditionalInfo string `gorm:"type:text" json:"additionalInfo"`
	Status         string `gorm:"not null;default:pending" json:"status"`
}

func (SchoolRequirement) Statuses() []string { return SchoolRequirementStatuses }
