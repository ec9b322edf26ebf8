package routes

import (
	"github.com/gin-gonic/gin"
)

func SchoolPartnerRoutes(r *gin.Engine, h handlers) {
	partner := r.Group("/api/school-partner")
	partner.POST("/login", h.partners.Login)

	managed := partner.Group("")
	managed.Use(h.adminAuth)
	{
		managed.POST("/create", h.partners.Create)
		managed.GET("/all", h.partners.List)
		managed.PUT("/update/:id", h.partners.Update)
		managed.DELETE("/delete/:id", h.partners.Delete)
	}

	self := partner.Group("")
	self.Use(h.partnerAuth)
	{
		f := h.forms
		self.GET("/me", h.partners.Me)
		self.GET("/applications/jobs", f.For("job-applications", f.List))
		self.GET("/applications/teachers", f.For("teacher-applications", f.List))
		self.GET("/applications/mentors", f.For("mentor-applications", f.List))
	}
}
