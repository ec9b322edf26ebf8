package models

// Submission is a public form record whose status only an admin changes.
type Submission interface {
	Statuses() []string
}

// ResumeHolder is a submission that may reference an uploaded file.
type ResumeHolder interface {
	ResumePath() string
}
