package controllers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	base
}

func NewHealthController(d Deps) *HealthController {
	return &HealthController{base: newBase(d)}
}

// Health reports liveness and database reachability.
func (hc *HealthController) Health(c *gin.Context) {
	database := "ok"
	status := http.StatusOK

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if sqlDB, err := hc.db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
		database = "unreachable"
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"success":   status == http.StatusOK,
		"message":   "Saira Acad API is running",
		"database":  database,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (hc *HealthController) Index(c *gin.Context) {
	kinds := FormKinds()
	sort.Strings(kinds)

	ok(c, gin.H{
		"message": "Welcome to Saira Acad API",
		"endpoints": gin.H{
			"health":        "/api/health",
			"users":         "/api/users",
			"admin":         "/api/admin",
			"schoolPartner": "/api/school-partner",
			"forms":         "/api/forms",
			"adminForms":    kinds,
		},
	})
}
