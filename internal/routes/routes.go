package routes

import (
	"io"
	"net/http"

	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"saira_acad/internal/auth"
	"saira_acad/internal/controllers"
	"saira_acad/internal/metrics"
	"saira_acad/internal/middleware"
	"saira_acad/internal/storage"
)

type Options struct {
	Deps controllers.Deps
	// RequireProfileAuth puts /api/users/profile/:id behind UserAuth.
	RequireProfileAuth bool
	// AccessLog receives one line per request; nil disables access logging.
	AccessLog io.Writer
	// UploadDir is served under /uploads.
	UploadDir string
}

type handlers struct {
	users    *controllers.UserController
	admins   *controllers.AdminController
	partners *controllers.SchoolPartnerController
	forms    *controllers.FormController
	health   *controllers.HealthController

	tokens      *auth.TokenService
	adminAuth   gin.HandlerFunc
	partnerAuth gin.HandlerFunc
}

func SetupRouter(opts Options) *gin.Engine {
	controllers.RegisterValidators()

	r := gin.New()
	r.Use(middleware.RequestID())
	if opts.AccessLog != nil {
		r.Use(ginlog.SetLogger(
			ginlog.WithWriter(opts.AccessLog),
			ginlog.WithSkipPath([]string{"/metrics"}),
		))
	}
	r.Use(metrics.Middleware())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logrus.WithFields(logrus.Fields{
			"request_id": middleware.RequestIDFrom(c),
			"panic":      recovered,
		}).Error("Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Something went wrong!"})
	}))

	tokens := opts.Deps.Auth.Tokens
	partners := controllers.NewSchoolPartnerController(opts.Deps)
	h := handlers{
		users:       controllers.NewUserController(opts.Deps),
		admins:      controllers.NewAdminController(opts.Deps),
		partners:    partners,
		forms:       controllers.NewFormController(opts.Deps),
		health:      controllers.NewHealthController(opts.Deps),
		tokens:      tokens,
		adminAuth:   middleware.AdminAuth(tokens),
		partnerAuth: middleware.PartnerAuth(tokens, partners.LoadAccount),
	}

	r.GET("/", h.health.Index)
	r.GET("/api/health", h.health.Health)
	r.GET("/metrics", metrics.Handler())
	if opts.UploadDir != "" {
		r.Static(storage.URLPrefix, opts.UploadDir)
	}

	UserRoutes(r, h, opts.RequireProfileAuth)
	AdminRoutes(r, h)
	SchoolPartnerRoutes(r, h)
	FormRoutes(r, h)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Route not found"})
	})

	return r
}
