package models

// Contact types routed to the general contacts table.
var ContactTypes = []string{"school", "teacher", "mentor", "other"}

// Contact types routed to their own one-per-email tables.
const (
	ContactTypePartner  = "partner"
	ContactTypeEducator = "educator"
)

type Contact struct {
	Base
	ContactName    string `gorm:"not null" json:"contactName"`
	ContactEmail   string `gorm:"not null;index" json:"contactEmail"`
	ContactPhone   string `gorm:"not null" json:"contactPhone"`
	ContactType    string `gorm:"not null" json:"contactType"`
	ContactSubject string `gorm:"not null" json:"contactSubject"`
	ContactMessage string `gorm:"type:text;not null" json:"contactMessage"`
	Status         string `gorm:"not null;default:new" json:"status"`
}

func (Contact) Statuses() []string { return ContactStatuses }

// UniqueContact is the message body shared by partner and educator contacts.
// The unique index on ContactEmail is what enforces one submission per address.
type UniqueContact struct {
	ContactName    string `gorm:"not null" json:"contactName"`
	ContactEmail   string `gorm:"uniqueIndex;not null" json:"contactEmail"`
	ContactPhone   string `gorm:"not null" json:"contactPhone"`
	ContactSubject string `gorm:"not null" json:"contactSubject"`
	ContactMessage string `gorm:"type:text;not null" json:"contactMessage"`
	Status         string `gorm:"not null;default:new" json:"status"`
}

type PartnerContact struct {
	Base
	UniqueContact
}

func (PartnerContact) Statuses() []string { return ContactStatuses }

type EducatorContact struct {
	Base
	UniqueContact
}

func (EducatorContact) Statuses() []string { return ContactStatuses }
