package models

import "slices"

// Account states.
const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusSuspended = "suspended"
)

const (
	AdminRoleSuper = "super-admin"
	AdminRoleAdmin = "admin"
)

var (
	UserStatuses    = []string{StatusActive, StatusInactive, StatusSuspended}
	AdminStatuses   = []string{StatusActive, StatusInactive}
	PartnerStatuses = []string{StatusActive, StatusInactive}
	AdminRoles      = []string{AdminRoleSuper, AdminRoleAdmin}

	Qualifications = []string{"B.Ed", "M.Ed", "B.A", "M.A", "B.Sc", "M.Sc", "PhD", "Other"}
)

// Form submission states. The first entry of each set is the default.
var (
	EnrollmentStatuses        = []string{"pending", "contacted", "enrolled", "rejected"}
	SchoolRequirementStatuses = []string{"pending", "in-progress", "fulfilled", "closed"}
	TeacherStatuses           = []string{"submitted", "reviewing", "shortlisted", "placed", "rejected"}
	MentorStatuses            = []string{"submitted", "reviewing", "interview", "approved", "rejected"}
	JobStatuses               = []string{"submitted", "reviewing", "interview", "offered", "hired", "rejected"}
	ConsultationStatuses      = []string{"scheduled", "confirmed", "completed", "cancelled", "rescheduled"}
	ContactStatuses           = []string{"new", "read", "replied", "closed"}
)

// OneOf reports whether v is a member of set.
func OneOf(v string, set []string) bool { return slices.Contains(set, v) }
