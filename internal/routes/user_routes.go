package routes

import (
	"github.com/gin-gonic/gin"

	"saira_acad/internal/middleware"
)

func UserRoutes(r *gin.Engine, h handlers, requireProfileAuth bool) {
	users := r.Group("/api/users")
	{
		users.POST("/register", h.users.Register)
		users.POST("/login", h.users.Login)
	}

	profile := users.Group("/profile")
	if requireProfileAuth {
		profile.Use(middleware.UserAuth(h.tokens))
	}
	{
		profile.GET("/:id", h.users.GetProfile)
		profile.PUT("/:id", h.users.UpdateProfile)
	}
}
