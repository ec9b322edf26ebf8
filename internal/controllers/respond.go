package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"saira_acad/internal/apperrors"
	"saira_acad/internal/auth"
	"saira_acad/internal/middleware"
	"saira_acad/internal/storage"
)

// Deps is what every controller is built from.
type Deps struct {
	DB      *gorm.DB
	Auth    *auth.Service
	Storage *storage.LocalStorage
	// Debug adds internal error detail to 500 responses.
	Debug bool
	// DefaultAdmin is the configured bootstrap admin username, protected alongside "admin".
	DefaultAdmin string
}

type base struct {
	db    *gorm.DB
	debug bool
}

func newBase(d Deps) base { return base{db: d.DB, debug: d.Debug} }

func (b base) fail(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	body := gin.H{"success": false, "message": apperrors.Message(err)}
	if fields := apperrors.Fields(err); len(fields) > 0 {
		body["errors"] = fields
	}

	entry := logrus.WithError(err).WithFields(logrus.Fields{
		"request_id": middleware.RequestIDFrom(c),
		"method":     c.Request.Method,
		"route":      c.FullPath(),
	})
	if status >= http.StatusInternalServerError {
		entry.Error("Request failed")
		if b.debug {
			body["error"] = err.Error()
		}
	} else {
		entry.Debug("Request rejected")
	}

	c.JSON(status, body)
}

func ok(c *gin.Context, payload gin.H) { reply(c, http.StatusOK, payload) }

func created(c *gin.Context, payload gin.H) { reply(c, http.StatusCreated, payload) }

func reply(c *gin.Context, status int, payload gin.H) {
	if payload == nil {
		payload = gin.H{}
	}
	payload["success"] = true
	c.JSON(status, payload)
}

// first loads one T matching conds, mapping a missing row to a 404 with notFound as message.
func first[T any](db *gorm.DB, notFound string, conds ...any) (*T, error) {
	var out T
	err := db.First(&out, conds...).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound(notFound)
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func exists[T any](db *gorm.DB, query string, args ...any) (bool, error) {
	var n int64
	err := db.Model(new(T)).Where(query, args...).Count(&n).Error
	return n > 0, err
}

// uniqueViolation maps a unique index conflict to a 400 with msg.
func uniqueViolation(err error, msg string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.Duplicate(msg)
	}
	return err
}
