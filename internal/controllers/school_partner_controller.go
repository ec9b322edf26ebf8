package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"saira_acad/internal/apperrors"
	"saira_acad/internal/auth"
	"saira_acad/internal/metrics"
	"saira_acad/internal/middleware"
	"saira_acad/internal/models"
)

type partnerLoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type createPartnerInput struct {
	SchoolName string `json:"schoolName" binding:"required,max=200"`
	Username   string `json:"username" binding:"required,max=50"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8,max=72"`
}

type updatePartnerInput struct {
	SchoolName *string `json:"schoolName" binding:"omitempty,max=200"`
	Username   *string `json:"username" binding:"omitempty,max=50"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Password   *string `json:"password" binding:"omitempty,min=8,max=72"`
	Status     *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type SchoolPartnerController struct {
	base
	auth *auth.Service
}

func NewSchoolPartnerController(d Deps) *SchoolPartnerController {
	return &SchoolPartnerController{base: newBase(d), auth: d.Auth}
}

// LoadAccount is the PartnerAuth loader: it re-reads the partner on every request.
func (pc *SchoolPartnerController) LoadAccount(ctx context.Context, id uint) (auth.Account, error) {
	partner, err := first[models.SchoolPartner](pc.db.WithContext(ctx), "School partner not found", id)
	if err != nil {
		return nil, err
	}
	return partner, nil
}

func (pc *SchoolPartnerController) Login(c *gin.Context) {
	var in partnerLoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		pc.fail(c, bindError(err))
		return
	}

	var acct auth.Account
	partner, err := first[models.SchoolPartner](pc.db.WithContext(c.Request.Context()), "",
		"username = ? AND status = ?", normalize(in.Username), models.StatusActive)
	switch {
	case err == nil:
		acct = partner
	case !errors.Is(err, apperrors.ErrNotFound):
		pc.fail(c, err)
		return
	}

	sess, err := pc.auth.Login(acct, in.Password)
	metrics.LoginAttempts.WithLabelValues(string(auth.RolePartner), loginResult(err)).Inc()
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountInactive) {
			err = apperrors.ErrInvalidCredentials
		}
		pc.fail(c, err)
		return
	}

	ok(c, gin.H{
		"message": "Login successful!",
		"token":   sess.Token,
		"partner": partner,
	})
}

// Create registers a school partner on behalf of the calling admin.
func (pc *SchoolPartnerController) Create(c *gin.Context) {
	var in createPartnerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		pc.fail(c, bindError(err))
		return
	}

	schoolName, err := requireText("schoolName", in.SchoolName)
	if err != nil {
		pc.fail(c, err)
		return
	}
	username, err := requireText("username", in.Username)
	if err != nil {
		pc.fail(c, err)
		return
	}
	username = normalize(username)
	email := normalize(in.Email)
	db := pc.db.WithContext(c.Request.Context())

	if err := pc.checkUnique(db, username, email, 0); err != nil {
		pc.fail(c, err)
		return
	}

	hash, err := pc.auth.Hasher.Hash(in.Password)
	if err != nil {
		pc.fail(c, err)
		return
	}

	admin, _ := middleware.IdentityFrom(c)
	partner := models.SchoolPartner{
		SchoolName:  schoolName,
		Username:    username,
		Email:       email,
		Password:    hash,
		Status:      models.StatusActive,
		CreatedBy:   admin.ID,
		CreatedDate: time.Now(),
	}
	if err := db.Create(&partner).Error; err != nil {
		pc.fail(c, uniqueViolation(err, "Username or email already exists"))
		return
	}

	created(c, gin.H{"message": "School partner created successfully", "partner": partner})
}

func (pc *SchoolPartnerController) List(c *gin.Context) {
	var partners []models.SchoolPartner
	if err := pc.db.WithContext(c.Request.Context()).Order("created_date DESC").Find(&partners).Error; err != nil {
		pc.fail(c, err)
		return
	}
	ok(c, gin.H{"count": len(partners), "partners": partners})
}

// Update changes any subset of the partner's fields. Setting status to
// inactive locks the partner out on its next request.
func (pc *SchoolPartnerController) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pc.fail(c, err)
		return
	}

	var in updatePartnerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		pc.fail(c, bindError(err))
		return
	}

	db := pc.db.WithContext(c.Request.Context())
	partner, err := first[models.SchoolPartner](db, "School partner not found", id)
	if err != nil {
		pc.fail(c, err)
		return
	}

	updates := map[string]any{}
	var username, email string
	if in.Username != nil && normalize(*in.Username) != "" && normalize(*in.Username) != partner.Username {
		username = normalize(*in.Username)
		updates["username"] = username
	}
	if in.Email != nil && normalize(*in.Email) != "" && normalize(*in.Email) != partner.Email {
		email = normalize(*in.Email)
		updates["email"] = email
	}
	if err := pc.checkUnique(db, username, email, id); err != nil {
		pc.fail(c, err)
		return
	}

	if in.SchoolName != nil {
		name, err := requireText("schoolName", *in.SchoolName)
		if err != nil {
			pc.fail(c, err)
			return
		}
		updates["school_name"] = name
	}
	if in.Status != nil {
		updates["status"] = *in.Status
	}
	if in.Password != nil {
		hash, err := pc.auth.Hasher.Hash(*in.Password)
		if err != nil {
			pc.fail(c, err)
			return
		}
		updates["password"] = hash
	}

	if len(updates) > 0 {
		if err := db.Model(partner).Updates(updates).Error; err != nil {
			pc.fail(c, uniqueViolation(err, "Username or email already exists"))
			return
		}
	}

	partner, err = first[models.SchoolPartner](db, "School partner not found", id)
	if err != nil {
		pc.fail(c, err)
		return
	}
	ok(c, gin.H{"message": "School partner updated successfully", "partner": partner})
}

func (pc *SchoolPartnerController) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pc.fail(c, err)
		return
	}

	db := pc.db.WithContext(c.Request.Context())
	partner, err := first[models.SchoolPartner](db, "School partner not found", id)
	if err != nil {
		pc.fail(c, err)
		return
	}
	if err := db.Delete(partner).Error; err != nil {
		pc.fail(c, err)
		return
	}
	ok(c, gin.H{"message": "School partner deleted successfully"})
}

// Me returns the partner loaded by PartnerAuth.
func (pc *SchoolPartnerController) Me(c *gin.Context) {
	acct, found := middleware.AccountFrom(c)
	if !found {
		pc.fail(c, apperrors.ErrAuthInvalid)
		return
	}
	ok(c, gin.H{"partner": acct})
}

// checkUnique rejects a username or email already held by a partner other than
// self. Empty values are skipped.
func (pc *SchoolPartnerController) checkUnique(db *gorm.DB, username, email string, self uint) error {
	if username != "" {
		taken, err := exists[models.SchoolPartner](db, "username = ? AND id <> ?", username, self)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.Duplicate("Username already exists")
		}
	}
	if email != "" {
		taken, err := exists[models.SchoolPartner](db, "email = ? AND id <> ?", email, self)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.Duplicate("Email already exists")
		}
	}
	return nil
}
