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

type adminLoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type createAdminInput struct {
	Username string `json:"username" binding:"required,max=50"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Email    string `json:"email" binding:"omitempty,email"`
	Role     string `json:"role" binding:"omitempty,oneof=super-admin admin"`
}

type updateAdminInput struct {
	Username *string `json:"username" binding:"omitempty,min=1,max=50"`
	Password *string `json:"password" binding:"omitempty,min=8,max=72"`
	Email    *string `json:"email"`
	Role     *string `json:"role" binding:"omitempty,oneof=super-admin admin"`
	Status   *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type statusInput struct {
	Status string `json:"status" binding:"required"`
}

type AdminController struct {
	base
	auth      *auth.Service
	protected map[string]bool
}

func NewAdminController(d Deps) *AdminController {
	protected := map[string]bool{models.DefaultAdminUsername: true}
	if d.DefaultAdmin != "" {
		protected[d.DefaultAdmin] = true
	}
	return &AdminController{base: newBase(d), auth: d.Auth, protected: protected}
}

// Login only considers active admins, so an inactive admin gets the same
// answer as an unknown username.
func (ac *AdminController) Login(c *gin.Context) {
	var in adminLoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		ac.fail(c, bindError(err))
		return
	}

	var acct auth.Account
	admin, err := first[models.Admin](ac.db.WithContext(c.Request.Context()), "",
		"username = ? AND status = ?", in.Username, models.StatusActive)
	switch {
	case err == nil:
		acct = admin
	case !errors.Is(err, apperrors.ErrNotFound):
		ac.fail(c, err)
		return
	}

	sess, err := ac.auth.Login(acct, in.Password)
	metrics.LoginAttempts.WithLabelValues(string(auth.RoleAdmin), loginResult(err)).Inc()
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) || errors.Is(err, apperrors.ErrAccountInactive) {
			err = apperrors.New(apperrors.ErrInvalidCredentials, "Invalid admin credentials")
		}
		ac.fail(c, err)
		return
	}

	ok(c, gin.H{
		"message": "Admin login successful!",
		"token":   sess.Token,
		"admin":   admin,
	})
}

func (ac *AdminController) ListAdmins(c *gin.Context) {
	var admins []models.Admin
	if err := ac.db.WithContext(c.Request.Context()).Order("created_at DESC").Find(&admins).Error; err != nil {
		ac.fail(c, err)
		return
	}
	ok(c, gin.H{"count": len(admins), "admins": admins})
}

func (ac *AdminController) CreateAdmin(c *gin.Context) {
	var in createAdminInput
	if err := c.ShouldBindJSON(&in); err != nil {
		ac.fail(c, bindError(err))
		return
	}

	username, err := requireText("username", in.Username)
	if err != nil {
		ac.fail(c, err)
		return
	}
	db := ac.db.WithContext(c.Request.Context())

	taken, err := exists[models.Admin](db, "username = ?", username)
	if err != nil {
		ac.fail(c, err)
		return
	}
	if taken {
		ac.fail(c, apperrors.Duplicate("Admin username already exists"))
		return
	}

	var email *string
	if in.Email != "" {
		e := normalize(in.Email)
		taken, err := exists[models.Admin](db, "email = ?", e)
		if err != nil {
			ac.fail(c, err)
			return
		}
		if taken {
			ac.fail(c, apperrors.Duplicate("Admin email already exists"))
			return
		}
		email = &e
	}

	role := in.Role
	if role == "" {
		role = models.AdminRoleAdmin
	}

	hash, err := ac.auth.Hasher.Hash(in.Password)
	if err != nil {
		ac.fail(c, err)
		return
	}

	admin := models.Admin{
		Username:    username,
		Password:    hash,
		Email:       email,
		AdminRole:   role,
		Status:      models.StatusActive,
		CreatedDate: time.Now(),
	}
	if err := db.Create(&admin).Error; err != nil {
		ac.fail(c, uniqueViolation(err, "Admin username or email already exists"))
		return
	}

	created(c, gin.H{"message": "Admin created successfully", "admin": admin})
}

// UpdateAdmin applies a partial update. Username and email stay unique
// across other admins; the default admin keeps its username. An empty
// email clears it.
func (ac *AdminController) UpdateAdmin(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		ac.fail(c, err)
		return
	}

	var in updateAdminInput
	if err := c.ShouldBindJSON(&in); err != nil {
		ac.fail(c, bindError(err))
		return
	}

	db := ac.db.WithContext(c.Request.Context())
	admin, err := first[models.Admin](db, "Admin not found", id)
	if err != nil {
		ac.fail(c, err)
		return
	}

	updates := map[string]any{}
	if in.Username != nil {
		username, err := requireText("username", *in.Username)
		if err != nil {
			ac.fail(c, err)
			return
		}
		if username != admin.Username {
			if ac.protected[admin.Username] {
				ac.fail(c, apperrors.New(apperrors.ErrProtected, "Default admin cannot be renamed"))
				return
			}
			taken, err := exists[models.Admin](db, "username = ? AND id <> ?", username, id)
			if err != nil {
				ac.fail(c, err)
				return
			}
			if taken {
				ac.fail(c, apperrors.Duplicate("Username already in use"))
				return
			}
			updates["username"] = username
		}
	}
	if in.Email != nil && normalize(*in.Email) == "" {
		updates["email"] = nil
	} else if in.Email != nil {
		email := normalize(*in.Email)
		if err := validEmail("email", email); err != nil {
			ac.fail(c, err)
			return
		}
		taken, err := exists[models.Admin](db, "email = ? AND id <> ?", email, id)
		if err != nil {
			ac.fail(c, err)
			return
		}
		if taken {
			ac.fail(c, apperrors.Duplicate("Email already in use"))
			return
		}
		updates["email"] = email
	}
	if in.Role != nil {
		updates["role"] = *in.Role
	}
	if in.Status != nil {
		updates["status"] = *in.Status
	}
	if in.Password != nil {
		hash, err := ac.auth.Hasher.Hash(*in.Password)
		if err != nil {
			ac.fail(c, err)
			return
		}
		updates["password"] = hash
	}

	if len(updates) > 0 {
		if err := db.Model(admin).Updates(updates).Error; err != nil {
			ac.fail(c, uniqueViolation(err, "Username or email already in use"))
			return
		}
	}

	admin, err = first[models.Admin](db, "Admin not found", id)
	if err != nil {
		ac.fail(c, err)
		return
	}
	ok(c, gin.H{"message": "Admin updated successfully", "admin": admin})
}

func (ac *AdminController) DeleteAdmin(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		ac.fail(c, err)
		return
	}

	db := ac.db.WithContext(c.Request.Context())
	admin, err := first[models.Admin](db, "Admin not found", id)
	if err != nil {
		ac.fail(c, err)
		return
	}
	if ac.protected[admin.Username] {
		ac.fail(c, apperrors.New(apperrors.ErrProtected, "Default admin cannot be deleted"))
		return
	}

	if err := db.Delete(admin).Error; err != nil {
		ac.fail(c, err)
		return
	}
	ok(c, gin.H{"message": "Admin deleted successfully"})
}

func (ac *AdminController) ListUsers(c *gin.Context) {
	var users []models.User
	if err := ac.db.WithContext(c.Request.Context()).Order("registered_date DESC").Find(&users).Error; err != nil {
		ac.fail(c, err)
		return
	}
	ok(c, gin.H{"count": len(users), "users": users})
}

// Stats backs the admin dashboard.
func (ac *AdminController) Stats(c *gin.Context) {
	db := ac.db.WithContext(c.Request.Context())

	var total, active int64
	if err := db.Model(&models.User{}).Count(&total).Error; err != nil {
		ac.fail(c, err)
		return
	}
	if err := db.Model(&models.User{}).Where("status = ?", models.StatusActive).Count(&active).Error; err != nil {
		ac.fail(c, err)
		return
	}

	var recent []models.User
	if err := db.Order("registered_date DESC").Limit(5).Find(&recent).Error; err != nil {
		ac.fail(c, err)
		return
	}

	ok(c, gin.H{"stats": gin.H{
		"totalUsers":    total,
		"activeUsers":   active,
		"inactiveUsers": total - active,
		"recentUsers":   recent,
	}})
}

func (ac *AdminController) UpdateUserStatus(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		ac.fail(c, err)
		return
	}

	status, err := bindStatus(c, models.UserStatuses)
	if err != nil {
		ac.fail(c, err)
		return
	}

	db := ac.db.WithContext(c.Request.Context())
	user, err := first[models.User](db, "User not found", id)
	if err != nil {
		ac.fail(c, err)
		return
	}
	if err := db.Model(user).Update("status", status).Error; err != nil {
		ac.fail(c, err)
		return
	}
	user.Status = status

	ok(c, gin.H{"message": "User status updated successfully", "user": user})
}

func (ac *AdminController) DeleteUser(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		ac.fail(c, err)
		return
	}

	db := ac.db.WithContext(c.Request.Context())
	user, err := first[models.User](db, "User not found", id)
	if err != nil {
		ac.fail(c, err)
		return
	}
	if err := db.Delete(user).Error; err != nil {
		ac.fail(c, err)
		return
	}
	ok(c, gin.H{"message": "User deleted successfully"})
}

// bindStatus reads {"status": ...} and checks it against allowed.
func bindStatus(c *gin.Context, allowed []string) (string, error) {
	var in statusInput
	if err := c.ShouldBindJSON(&in); err != nil {
		return "", bindError(err)
	}
	if !models.OneOf(in.Status, allowed) {
		return "", apperrors.Validation("Invalid status", apperrors.FieldError{Field: "status", Message: "status is invalid"})
	}
	return in.Status, nil
}
