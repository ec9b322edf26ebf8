package controllers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"saira_acad/internal/apperrors"
	"saira_acad/internal/auth"
	"saira_acad/internal/metrics"
	"saira_acad/internal/models"
)

type registerInput struct {
	FullName      string `json:"fullName" binding:"required,max=100"`
	PhoneNumber   string `json:"phoneNumber" binding:"required,phone10"`
	Qualification string `json:"qualification" binding:"required,oneof=B.Ed M.Ed B.A M.A B.Sc M.Sc PhD Other"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=8,max=72"`
}

type userLoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type profileInput struct {
	FullName      *string `json:"fullName" binding:"omitempty,min=1,max=100"`
	PhoneNumber   *string `json:"phoneNumber" binding:"omitempty,phone10"`
	Qualification *string `json:"qualification" binding:"omitempty,oneof=B.Ed M.Ed B.A M.A B.Sc M.Sc PhD Other"`
	Password      *string `json:"password" binding:"omitempty,min=8,max=72"`
}

type UserController struct {
	base
	auth *auth.Service
}

func NewUserController(d Deps) *UserController {
	return &UserController{base: newBase(d), auth: d.Auth}
}

// Register creates a User and signs them in.
func (uc *UserController) Register(c *gin.Context) {
	var in registerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		uc.fail(c, bindError(err))
		return
	}

	fullName, err := requireText("fullName", in.FullName)
	if err != nil {
		uc.fail(c, err)
		return
	}
	email := normalize(in.Email)
	db := uc.db.WithContext(c.Request.Context())

	taken, err := exists[models.User](db, "email = ?", email)
	if err != nil {
		uc.fail(c, err)
		return
	}
	if taken {
		uc.fail(c, apperrors.Duplicate("An account with this email already exists"))
		return
	}

	taken, err = exists[models.User](db, "LOWER(full_name) = LOWER(?)", fullName)
	if err != nil {
		uc.fail(c, err)
		return
	}
	if taken {
		uc.fail(c, apperrors.Duplicate("An account with this name already exists. Please use a different name."))
		return
	}

	hash, err := uc.auth.Hasher.Hash(in.Password)
	if err != nil {
		uc.fail(c, err)
		return
	}

	user := models.User{
		FullName:       fullName,
		PhoneNumber:    in.PhoneNumber,
		Qualification:  in.Qualification,
		Email:          email,
		Password:       hash,
		RegisteredDate: time.Now(),
		Status:         models.StatusActive,
	}
	if err := db.Create(&user).Error; err != nil {
		uc.fail(c, uniqueViolation(err, "An account with this email already exists"))
		return
	}

	sess, err := uc.auth.IssueFor(&user)
	if err != nil {
		uc.fail(c, err)
		return
	}

	created(c, gin.H{
		"message": "Registration successful!",
		"token":   sess.Token,
		"user":    user,
	})
}

func (uc *UserController) Login(c *gin.Context) {
	var in userLoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		uc.fail(c, bindError(err))
		return
	}

	var acct auth.Account
	user, err := first[models.User](uc.db.WithContext(c.Request.Context()), "", "email = ?", normalize(in.Email))
	switch {
	case err == nil:
		acct = user
	case !errors.Is(err, apperrors.ErrNotFound):
		uc.fail(c, err)
		return
	}

	sess, err := uc.auth.Login(acct, in.Password)
	metrics.LoginAttempts.WithLabelValues(string(auth.RoleUser), loginResult(err)).Inc()
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountInactive) {
			err = apperrors.New(apperrors.ErrAccountInactive, "Account is not active. Please contact support.")
		}
		uc.fail(c, err)
		return
	}

	ok(c, gin.H{
		"message": "Login successful!",
		"token":   sess.Token,
		"user":    user,
	})
}

func (uc *UserController) GetProfile(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		uc.fail(c, err)
		return
	}

	user, err := first[models.User](uc.db.WithContext(c.Request.Context()), "User not found", id)
	if err != nil {
		uc.fail(c, err)
		return
	}
	ok(c, gin.H{"user": user})
}

// UpdateProfile changes the editable profile fields. A new password is re-hashed.
func (uc *UserController) UpdateProfile(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		uc.fail(c, err)
		return
	}

	var in profileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		uc.fail(c, bindError(err))
		return
	}

	db := uc.db.WithContext(c.Request.Context())
	user, err := first[models.User](db, "User not found", id)
	if err != nil {
		uc.fail(c, err)
		return
	}

	updates := map[string]any{}
	if in.FullName != nil {
		name, err := requireText("fullName", *in.FullName)
		if err != nil {
			uc.fail(c, err)
			return
		}
		updates["full_name"] = name
	}
	if in.PhoneNumber != nil {
		updates["phone_number"] = *in.PhoneNumber
	}
	if in.Qualification != nil {
		updates["qualification"] = *in.Qualification
	}
	if in.Password != nil {
		hash, err := uc.auth.Hasher.Hash(*in.Password)
		if err != nil {
			uc.fail(c, err)
			return
		}
		updates["password"] = hash
	}

	if len(updates) > 0 {
		if err := db.Model(user).Updates(updates).Error; err != nil {
			uc.fail(c, err)
			return
		}
	}

	user, err = first[models.User](db, "User not found", id)
	if err != nil {
		uc.fail(c, err)
		return
	}
	ok(c, gin.H{"message": "Profile updated successfully", "user": user})
}

func loginResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return "invalid"
	case errors.Is(err, apperrors.ErrAccountInactive):
		return "inactive"
	default:
		return "error"
	}
}
