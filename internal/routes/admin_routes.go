package routes

import (
	"github.com/gin-gonic/gin"
)

func AdminRoutes(r *gin.Engine, h handlers) {
	r.POST("/api/admin/login", h.admins.Login)

	admin := r.Group("/api/admin")
	admin.Use(h.adminAuth)
	{
		admin.GET("/admins", h.admins.ListAdmins)
		admin.POST("/admins", h.admins.CreateAdmin)
		admin.PUT("/admins/:id", h.admins.UpdateAdmin)
		admin.DELETE("/admins/:id", h.admins.DeleteAdmin)

		admin.GET("/users", h.admins.ListUsers)
		admin.GET("/stats", h.admins.Stats)
		admin.PUT("/users/:id/status", h.admins.UpdateUserStatus)
		admin.DELETE("/users/:id", h.admins.DeleteUser)

		// Contact inboxes kept at their original paths
		f := h.forms
		admin.GET("/contacts/partners", f.For("partner-contacts", f.List))
		admin.GET("/contacts/educators", f.For("educator-contacts", f.List))
		admin.PUT("/contacts/partners/:id/status", f.For("partner-contacts", f.UpdateStatus))
		admin.PUT("/contacts/educators/:id/status", f.For("educator-contacts", f.UpdateStatus))
		admin.DELETE("/contacts/partners/:id", f.For("partner-contacts", f.Delete))
		admin.DELETE("/contacts/educators/:id", f.For("educator-contacts", f.Delete))

		admin.GET("/forms/:kind", f.ByKind(f.List))
		admin.GET("/forms/:kind/:id", f.ByKind(f.Get))
		admin.PUT("/forms/:kind/:id/status", f.ByKind(f.UpdateStatus))
		admin.DELETE("/forms/:kind/:id", f.ByKind(f.Delete))
	}
}
