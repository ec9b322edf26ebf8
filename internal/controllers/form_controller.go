package controllers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"saira_acad/internal/apperrors"
	"saira_acad/internal/metrics"
	"saira_acad/internal/models"
	"saira_acad/internal/storage"
)

// FormKind describes one submission table for the generic admin handlers.
type FormKind struct {
	Name    string // URL segment, e.g. "job-applications"
	ListKey string // response key for listings
	ItemKey string // response key for a single record
	Label   string // used in "<Label> not found"

	statuses []string
	newItem  func() any
	newSlice func() any
}

func kindOf[T models.Submission](name, listKey, itemKey, label string) FormKind {
	var zero T
	return FormKind{
		Name:     name,
		ListKey:  listKey,
		ItemKey:  itemKey,
		Label:    label,
		statuses: zero.Statuses(),
		newItem:  func() any { return new(T) },
		newSlice: func() any { return new([]T) },
	}
}

var formKinds = map[string]FormKind{}

func init() {
	for _, k := range []FormKind{
		kindOf[models.Enrollment]("enrollments", "enrollments", "enrollment", "Enrollment"),
		kindOf[models.SchoolRequirement]("school-requirements", "requirements", "requirement", "Requirement"),
		kindOf[models.TeacherApplication]("teacher-applications", "applications", "application", "Application"),
		kindOf[models.MentorApplication]("mentor-applications", "applications", "application", "Application"),
		kindOf[models.JobApplication]("job-applications", "applications", "application", "Application"),
		kindOf[models.Consultation]("consultations", "consultations", "consultation", "Consultation"),
		kindOf[models.Contact]("contacts", "contacts", "contact", "Contact"),
		kindOf[models.PartnerContact]("partner-contacts", "contacts", "contact", "Contact"),
		kindOf[models.EducatorContact]("educator-contacts", "contacts", "contact", "Contact"),
	} {
		formKinds[k.Name] = k
	}
}

// FormKinds lists the registered kind names.
func FormKinds() []string {
	names := make([]string, 0, len(formKinds))
	for name := range formKinds {
		names = append(names, name)
	}
	return names
}

// FormOp is one admin operation over a submission kind.
type FormOp func(c *gin.Context, k FormKind)

type FormController struct {
	base
	files *storage.LocalStorage
}

func NewFormController(d Deps) *FormController {
	return &FormController{base: newBase(d), files: d.Storage}
}

// ByKind resolves the kind from the :kind route parameter.
func (fc *FormController) ByKind(op FormOp) gin.HandlerFunc {
	return func(c *gin.Context) {
		k, found := formKinds[c.Param("kind")]
		if !found {
			fc.fail(c, apperrors.NotFound("Unknown form type"))
			return
		}
		op(c, k)
	}
}

// For binds op to a fixed kind. It panics on an unknown name, which is a routing bug.
func (fc *FormController) For(name string, op FormOp) gin.HandlerFunc {
	k, found := formKinds[name]
	if !found {
		panic(fmt.Sprintf("controllers: unknown form kind %q", name))
	}
	return func(c *gin.Context) { op(c, k) }
}

// List returns every record of the kind, newest first.
func (fc *FormController) List(c *gin.Context, k FormKind) {
	items := k.newSlice()
	res := fc.db.WithContext(c.Request.Context()).Order("created_at DESC").Find(items)
	if res.Error != nil {
		fc.fail(c, res.Error)
		return
	}
	ok(c, gin.H{"count": res.RowsAffected, k.ListKey: items})
}

func (fc *FormController) Get(c *gin.Context, k FormKind) {
	item, err := fc.load(c, k)
	if err != nil {
		fc.fail(c, err)
		return
	}
	ok(c, gin.H{k.ItemKey: item})
}

// UpdateStatus moves a record to any status in its kind's set.
func (fc *FormController) UpdateStatus(c *gin.Context, k FormKind) {
	id, err := parseID(c)
	if err != nil {
		fc.fail(c, err)
		return
	}
	status, err := bindStatus(c, k.statuses)
	if err != nil {
		fc.fail(c, err)
		return
	}

	item, err := fc.load(c, k)
	if err != nil {
		fc.fail(c, err)
		return
	}

	db := fc.db.WithContext(c.Request.Context())
	if err := db.Model(item).Update("status", status).Error; err != nil {
		fc.fail(c, err)
		return
	}
	if err := db.First(item, id).Error; err != nil {
		fc.fail(c, err)
		return
	}
	ok(c, gin.H{"message": "Status updated successfully", k.ItemKey: item})
}

// Delete removes the record and any resume it references.
func (fc *FormController) Delete(c *gin.Context, k FormKind) {
	item, err := fc.load(c, k)
	if err != nil {
		fc.fail(c, err)
		return
	}
	if err := fc.db.WithContext(c.Request.Context()).Delete(item).Error; err != nil {
		fc.fail(c, err)
		return
	}

	if rh, isResume := item.(models.ResumeHolder); isResume && fc.files != nil {
		if err := fc.files.Delete(rh.ResumePath()); err != nil {
			logrus.WithError(err).WithField("path", rh.ResumePath()).Warn("Could not remove resume")
		}
	}
	ok(c, gin.H{"message": k.Label + " deleted successfully"})
}

func (fc *FormController) load(c *gin.Context, k FormKind) (any, error) {
	id, err := parseID(c)
	if err != nil {
		return nil, err
	}
	item := k.newItem()
	err = fc.db.WithContext(c.Request.Context()).First(item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound(k.Label + " not found")
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

type enrollmentInput struct {
	FullName   string `json:"fullName" form:"fullName" binding:"required,max=100"`
	Email      string `json:"email" form:"email" binding:"required,email"`
	Phone      string `json:"phone" form:"phone" binding:"required,max=20"`
	Program    string `json:"program" form:"program" binding:"required,oneof=foundation advanced leadership digital subject special"`
	Experience int    `json:"experience" form:"experience" binding:"gte=0"`
	Message    string `json:"message" form:"message" binding:"required"`
}

type schoolRequirementInput struct {
	SchoolName     string `json:"schoolName" form:"schoolName" binding:"required,max=200"`
	SchoolLocation string `json:"schoolLocation" form:"schoolLocation" binding:"required"`
	ContactPerson  string `json:"contactPerson" form:"contactPerson" binding:"required"`
	ContactEmail   string `json:"contactEmail" form:"contactEmail" binding:"required,email"`
	ContactPhone   string `json:"contactPhone" form:"contactPhone" binding:"required,max=20"`
	PositionType   string `json:"positionType" form:"positionType" binding:"required,oneof=full-time part-time substitute contract"`
	Subject        string `json:"subject" form:"subject" binding:"required"`
	Grades         string `json:"grades" form:"grades" binding:"required"`
	Experience     int    `json:"experience" form:"experience" binding:"gte=0"`
	Salary         string `json:"salary" form:"salary"`
	AdditionalInfo string `json:"additionalInfo" form:"additionalInfo"`
}

type teacherApplicationInput struct {
	TeacherName          string `json:"teacherName" form:"teacherName" binding:"required,max=100"`
	TeacherEmail         string `json:"teacherEmail" form:"teacherEmail" binding:"required,email"`
	TeacherPhone         string `json:"teacherPhone" form:"teacherPhone" binding:"required,max=20"`
	TeacherQualification string `json:"teacherQualification" form:"teacherQualification" binding:"required"`
	TeacherSubject       string `json:"teacherSubject" form:"teacherSubject" binding:"required"`
	TeacherExperience    int    `json:"teacherExperience" form:"teacherExperience" binding:"gte=0"`
	PreferredLocation    string `json:"preferredLocation" form:"preferredLocation" binding:"required"`
	CurrentSalary        string `json:"currentSalary" form:"currentSalary"`
	CoverLetter          string `json:"coverLetter" form:"coverLetter"`
}

type mentorApplicationInput struct {
	MentorName           string `json:"mentorName" form:"mentorName" binding:"required,max=100"`
	MentorEmail          string `json:"mentorEmail" form:"mentorEmail" binding:"required,email"`
	MentorPhone          string `json:"mentorPhone" form:"mentorPhone" binding:"required,max=20"`
	MentorQualification  string `json:"mentorQualification" form:"mentorQualification" binding:"required"`
	MentorExperience     int    `json:"mentorExperience" form:"mentorExperience" binding:"gte=10"`
	MentorSpecialization string `json:"mentorSpecialization" form:"mentorSpecialization" binding:"required"`
	MentorAchievements   string `json:"mentorAchievements" form:"mentorAchievements" binding:"required"`
	MentorAvailability   *int   `json:"mentorAvailability" form:"mentorAvailability" binding:"omitempty,gte=0"`
	MentorWhy            string `json:"mentorWhy" form:"mentorWhy" binding:"required"`
}

type jobApplicationInput struct {
	ApplicantName   string `json:"applicantName" form:"applicantName" binding:"required,max=100"`
	ApplicantEmail  string `json:"applicantEmail" form:"applicantEmail" binding:"required,email"`
	ApplicantPhone  string `json:"applicantPhone" form:"applicantPhone" binding:"required,max=20"`
	Position        string `json:"position" form:"position" binding:"required"`
	CurrentLocation string `json:"currentLocation" form:"currentLocation" binding:"required"`
	TotalExperience int    `json:"totalExperience" form:"totalExperience" binding:"gte=0"`
	CurrentCompany  string `json:"currentCompany" form:"currentCompany"`
	NoticePeriod    *int   `json:"noticePeriod" form:"noticePeriod" binding:"omitempty,gte=0"`
	CoverLetterText string `json:"coverLetterText" form:"coverLetterText" binding:"required"`
}

type contactInput struct {
	ContactName    string `json:"contactName" form:"contactName" binding:"required,max=100"`
	ContactEmail   string `json:"contactEmail" form:"contactEmail" binding:"required,email"`
	ContactPhone   string `json:"contactPhone" form:"contactPhone" binding:"required,max=20"`
	ContactType    string `json:"contactType" form:"contactType" binding:"required,oneof=partner educator school teacher mentor other"`
	ContactSubject string `json:"contactSubject" form:"contactSubject" binding:"required,max=200"`
	ContactMessage string `json:"contactMessage" form:"contactMessage" binding:"required"`
}

type consultationInput struct {
	ConsultationType string `json:"consultationType" form:"consultationType" binding:"required,oneof=school teacher"`
	ConsultName      string `json:"consultName" form:"consultName" binding:"required,max=100"`
	ConsultEmail     string `json:"consultEmail" form:"consultEmail" binding:"required,email"`
	ConsultPhone     string `json:"consultPhone" form:"consultPhone" binding:"required,max=20"`
	ConsultOrg       string `json:"consultOrg" form:"consultOrg"`
	ConsultDate      string `json:"consultDate" form:"consultDate" binding:"required"`
	ConsultTime      string `json:"consultTime" form:"consultTime" binding:"required"`
	ConsultTopic     string `json:"consultTopic" form:"consultTopic" binding:"required"`
}

func (fc *FormController) SubmitEnrollment(c *gin.Context) {
	var in enrollmentInput
	if !fc.bind(c, "enrollment", &in) {
		return
	}
	rec := models.Enrollment{
		FullName:   strings.TrimSpace(in.FullName),
		Email:      normalize(in.Email),
		Phone:      in.Phone,
		Program:    in.Program,
		Experience: in.Experience,
		Message:    in.Message,
		Status:     models.EnrollmentStatuses[0],
	}
	fc.insert(c, "enrollment", &rec, func() gin.H {
		return gin.H{"message": "Enrollment submitted successfully", "enrollmentId": rec.ID}
	})
}

func (fc *FormController) SubmitSchoolRequirement(c *gin.Context) {
	var in schoolRequirementInput
	if !fc.bind(c, "school-requirement", &in) {
		return
	}
	rec := models.SchoolRequirement{
		SchoolName:     strings.TrimSpace(in.SchoolName),
		SchoolLocation: in.SchoolLocation,
		ContactPerson:  in.ContactPerson,
		ContactEmail:   normalize(in.ContactEmail),
		ContactPhone:   in.ContactPhone,
		PositionType:   in.PositionType,
		Subject:        in.Subject,
		Grades:         in.Grades,
		Experience:     in.Experience,
		Salary:         in.Salary,
		AdditionalInfo: in.AdditionalInfo,
		Status:         models.SchoolRequirementStatuses[0],
	}
	fc.insert(c, "school-requirement", &rec, func() gin.H {
		return gin.H{"message": "School requirement submitted successfully", "requirementId": rec.ID}
	})
}

func (fc *FormController) SubmitTeacherApplication(c *gin.Context) {
	var in teacherApplicationInput
	if !fc.bind(c, "teacher-application", &in) {
		return
	}
	resume, err := fc.saveResume(c, "teacherResume")
	if err != nil {
		fc.reject(c, "teacher-application", err)
		return
	}
	rec := models.TeacherApplication{
		TeacherName:          strings.TrimSpace(in.TeacherName),
		TeacherEmail:         normalize(in.TeacherEmail),
		TeacherPhone:         in.TeacherPhone,
		TeacherQualification: in.TeacherQualification,
		TeacherSubject:       in.TeacherSubject,
		TeacherExperience:    in.TeacherExperience,
		PreferredLocation:    in.PreferredLocation,
		CurrentSalary:        in.CurrentSalary,
		CoverLetter:          in.CoverLetter,
		ResumeURL:            resume,
		Status:               models.TeacherStatuses[0],
	}
	stored := fc.insert(c, "teacher-application", &rec, func() gin.H {
		return gin.H{"message": "Teacher application submitted successfully", "applicationId": rec.ID}
	})
	if !stored {
		fc.discard(resume)
	}
}

func (fc *FormController) SubmitMentorApplication(c *gin.Context) {
	var in mentorApplicationInput
	if !fc.bind(c, "mentor-application", &in) {
		return
	}
	rec := models.MentorApplication{
		MentorName:           strings.TrimSpace(in.MentorName),
		MentorEmail:          normalize(in.MentorEmail),
		MentorPhone:          in.MentorPhone,
		MentorQualification:  in.MentorQualification,
		MentorExperience:     in.MentorExperience,
		MentorSpecialization: in.MentorSpecialization,
		MentorAchievements:   in.MentorAchievements,
		MentorAvailability:   in.MentorAvailability,
		MentorWhy:            in.MentorWhy,
		Status:               models.MentorStatuses[0],
	}
	fc.insert(c, "mentor-application", &rec, func() gin.H {
		return gin.H{"message": "Mentor application submitted successfully", "applicationId": rec.ID}
	})
}

func (fc *FormController) SubmitJobApplication(c *gin.Context) {
	var in jobApplicationInput
	if !fc.bind(c, "job-application", &in) {
		return
	}
	resume, err := fc.saveResume(c, "applicantResume")
	if err != nil {
		fc.reject(c, "job-application", err)
		return
	}
	rec := models.JobApplication{
		ApplicantName:   strings.TrimSpace(in.ApplicantName),
		ApplicantEmail:  normalize(in.ApplicantEmail),
		ApplicantPhone:  in.ApplicantPhone,
		Position:        in.Position,
		CurrentLocation: in.CurrentLocation,
		TotalExperience: in.TotalExperience,
		CurrentCompany:  in.CurrentCompany,
		NoticePeriod:    in.NoticePeriod,
		CoverLetterText: in.CoverLetterText,
		ResumeURL:       resume,
		Status:          models.JobStatuses[0],
	}
	stored := fc.insert(c, "job-application", &rec, func() gin.H {
		return gin.H{"message": "Job application submitted successfully", "applicationId": rec.ID}
	})
	if !stored {
		fc.discard(resume)
	}
}

// SubmitContact routes by contactType. Partner and educator messages are
// accepted once per email address; repeats answer duplicate:true.
func (fc *FormController) SubmitContact(c *gin.Context) {
	var in contactInput
	if !fc.bind(c, "contact", &in) {
		return
	}

	body := models.UniqueContact{
		ContactName:    strings.TrimSpace(in.ContactName),
		ContactEmail:   normalize(in.ContactEmail),
		ContactPhone:   in.ContactPhone,
		ContactSubject: in.ContactSubject,
		ContactMessage: in.ContactMessage,
		Status:         models.ContactStatuses[0],
	}

	switch in.ContactType {
	case models.ContactTypePartner:
		rec := models.PartnerContact{UniqueContact: body}
		fc.insertOnce(c, "partner-contact", &rec, body.ContactEmail,
			"You have already submitted a message as a partner",
			func() gin.H {
				return gin.H{"message": "Partner contact form submitted successfully", "contactId": rec.ID, "contactType": models.ContactTypePartner}
			})
	case models.ContactTypeEducator:
		rec := models.EducatorContact{UniqueContact: body}
		fc.insertOnce(c, "educator-contact", &rec, body.ContactEmail,
			"You have already submitted a message as an educator",
			func() gin.H {
				return gin.H{"message": "Educator contact form submitted successfully", "contactId": rec.ID, "contactType": models.ContactTypeEducator}
			})
	default:
		rec := models.Contact{
			ContactName:    body.ContactName,
			ContactEmail:   body.ContactEmail,
			ContactPhone:   body.ContactPhone,
			ContactType:    in.ContactType,
			ContactSubject: body.ContactSubject,
			ContactMessage: body.ContactMessage,
			Status:         body.Status,
		}
		fc.insert(c, "contact", &rec, func() gin.H {
			return gin.H{"message": "Contact form submitted successfully", "contactId": rec.ID}
		})
	}
}

func (fc *FormController) SubmitConsultation(c *gin.Context) {
	var in consultationInput
	if !fc.bind(c, "consultation", &in) {
		return
	}
	date, err := parseDate(in.ConsultDate)
	if err != nil {
		fc.reject(c, "consultation", apperrors.Validation("Invalid consultation date",
			apperrors.FieldError{Field: "consultDate", Message: "consultDate must be a date (YYYY-MM-DD)"}))
		return
	}
	rec := models.Consultation{
		ConsultationType: in.ConsultationType,
		ConsultName:      strings.TrimSpace(in.ConsultName),
		ConsultEmail:     normalize(in.ConsultEmail),
		ConsultPhone:     in.ConsultPhone,
		ConsultOrg:       in.ConsultOrg,
		ConsultDate:      date,
		ConsultTime:      in.ConsultTime,
		ConsultTopic:     in.ConsultTopic,
		Status:           models.ConsultationStatuses[0],
	}
	fc.insert(c, "consultation", &rec, func() gin.H {
		return gin.H{"message": "Consultation booked successfully", "consultationId": rec.ID}
	})
}

// bind reads JSON or multipart form input depending on the content type.
func (fc *FormController) bind(c *gin.Context, form string, in any) bool {
	if err := c.ShouldBind(in); err != nil {
		fc.reject(c, form, bindError(err))
		return false
	}
	return true
}

func (fc *FormController) reject(c *gin.Context, form string, err error) {
	result := "error"
	if apperrors.HTTPStatus(err) < http.StatusInternalServerError {
		result = "invalid"
	}
	metrics.FormSubmissions.WithLabelValues(form, result).Inc()
	fc.fail(c, err)
}

func (fc *FormController) insert(c *gin.Context, form string, rec any, payload func() gin.H) bool {
	if err := fc.db.WithContext(c.Request.Context()).Create(rec).Error; err != nil {
		fc.reject(c, form, err)
		return false
	}
	metrics.FormSubmissions.WithLabelValues(form, "created").Inc()
	created(c, payload())
	return true
}

// discard removes an uploaded resume whose record was never stored.
func (fc *FormController) discard(path string) {
	if path == "" {
		return
	}
	if err := fc.files.Delete(path); err != nil {
		logrus.WithError(err).WithField("path", path).Warn("Could not remove orphaned resume")
	}
}

// insertOnce stores rec unless a row with the same contact_email exists. A
// concurrent insert that loses on the unique index gets the same duplicate answer.
func (fc *FormController) insertOnce(c *gin.Context, form string, rec any, email, dupMessage string, payload func() gin.H) {
	db := fc.db.WithContext(c.Request.Context())

	var n int64
	if err := db.Model(rec).Where("contact_email = ?", email).Count(&n).Error; err != nil {
		fc.reject(c, form, err)
		return
	}
	if n == 0 {
		err := db.Create(rec).Error
		if err == nil {
			metrics.FormSubmissions.WithLabelValues(form, "created").Inc()
			created(c, payload())
			return
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			fc.reject(c, form, err)
			return
		}
	}

	metrics.FormSubmissions.WithLabelValues(form, "duplicate").Inc()
	ok(c, gin.H{"duplicate": true, "message": dupMessage})
}

// saveResume stores the optional resume part of a multipart request.
func (fc *FormController) saveResume(c *gin.Context, field string) (string, error) {
	if c.ContentType() != binding.MIMEMultipartPOSTForm {
		return "", nil
	}
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return "", nil
	}
	if err != nil {
		return "", apperrors.Validation("Invalid resume upload", apperrors.FieldError{Field: field, Message: err.Error()})
	}
	return fc.store(fh, field)
}

func (fc *FormController) store(fh *multipart.FileHeader, field string) (string, error) {
	if fc.files == nil {
		return "", errors.New("resume storage not configured")
	}
	path, err := fc.files.SaveResume(fh)
	switch {
	case errors.Is(err, storage.ErrFileType):
		return "", apperrors.Validation("Only .pdf, .doc and .docx files are allowed",
			apperrors.FieldError{Field: field, Message: storage.ErrFileType.Error()})
	case errors.Is(err, storage.ErrFileTooLarge):
		return "", apperrors.Validation("Resume file is too large",
			apperrors.FieldError{Field: field, Message: storage.ErrFileTooLarge.Error()})
	}
	return path, err
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
