package routes

import (
	"github.com/gin-gonic/gin"
)

func FormRoutes(r *gin.Engine, h handlers) {
	f := h.forms

	forms := r.Group("/api/forms")
	{
		forms.POST("/enrollment", f.SubmitEnrollment)
		forms.POST("/school-requirement", f.SubmitSchoolRequirement)
		forms.POST("/teacher-application", f.SubmitTeacherApplication)
		forms.POST("/mentor-application", f.SubmitMentorApplication)
		forms.POST("/job-application", f.SubmitJobApplication)
		forms.POST("/contact", f.SubmitContact)
		forms.POST("/consultation", f.SubmitConsultation)
	}

	consultations := forms.Group("")
	consultations.Use(h.adminAuth)
	{
		consultations.GET("/consultations", f.For("consultations", f.List))
		consultations.DELETE("/consultation/:id", f.For("consultations", f.Delete))
	}
}
