package models

import "time"

var ConsultationTypes = []string{"school", "teacher"}

type Consultation struct {
	Base
	ConsultationType string    `gorm:"not null" json:"consultationType"`
	ConsultName      string    `gorm:"not null" json:"consultName"`
	ConsultEmail     string    `gorm:"not null" json:"consultEmail"`
	ConsultPhone     string    `gorm:"not null" json:"consultPhone"`
	ConsultOrg       string    `json:"consultOrg"`
	ConsultDate      time.Time `gorm:"not null" json:"consultDate"`
	ConsultTime      string    `gorm:"not null" json:"consultTime"`
	ConsultTopic     string    `gorm:"not null" json:"consultTopic"`
	Status           string    `gorm:"not null;default:scheduled" json:"status"`
	Viewed           bool      `gorm:"not null;default:false" json:"viewed"`
}

func (Consultation) Statuses() []string { return ConsultationStatuses }
