package middleware

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"saira_acad/internal/apperrors"
	"saira_acad/internal/auth"
)

const (
	identityKey = "identity"
	accountKey  = "account"
)

// AccountLoader fetches the current state of an account by id. It returns an
// error wrapping apperrors.ErrNotFound when the account no longer exists.
type AccountLoader func(ctx context.Context, id uint) (auth.Account, error)

// IdentityFrom returns the identity attached by one of the guards.
func IdentityFrom(c *gin.Context) (auth.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return auth.Identity{}, false
	}
	id, ok := v.(auth.Identity)
	return id, ok
}

// AccountFrom returns the account re-fetched by PartnerAuth.
func AccountFrom(c *gin.Context) (auth.Account, bool) {
	v, ok := c.Get(accountKey)
	if !ok {
		return nil, false
	}
	acct, ok := v.(auth.Account)
	return acct, ok
}

// AdminAuth ensures a valid admin token is present. The admin account is
// not re-fetched, so a deactivated admin keeps access until the token expires.
func AdminAuth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := authenticate(c, tokens, auth.RoleAdmin); !ok {
			return
		}
		c.Next()
	}
}

// PartnerAuth ensures a valid partner token is present and that the partner
// account still exists and is active.
func PartnerAuth(tokens *auth.TokenService, load AccountLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := authenticate(c, tokens, auth.RolePartner)
		if !ok {
			return
		}

		acct, err := load(c.Request.Context(), id.ID)
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			abort(c, apperrors.New(apperrors.ErrAuthInvalid, "Partner not authorized"))
			return
		case err != nil:
			logrus.WithError(err).WithField("partner_id", id.ID).Error("Partner lookup failed")
			abort(c, err)
			return
		case acct == nil || !acct.Active():
			abort(c, apperrors.New(apperrors.ErrAuthInvalid, "Partner not authorized"))
			return
		}

		c.Set(accountKey, acct)
		c.Next()
	}
}

// UserAuth ensures a valid user token is present. When the route carries an
// :id parameter it must name the token's own account.
func UserAuth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := authenticate(c, tokens, auth.RoleUser)
		if !ok {
			return
		}

		if param := c.Param("id"); param != "" {
			if want, err := strconv.ParseUint(param, 10, 64); err != nil || uint(want) != id.ID {
				abort(c, apperrors.ErrForbidden)
				return
			}
		}
		c.Next()
	}
}

// authenticate verifies the bearer token and its role tag. On failure it aborts
// the request and returns false; it never calls c.Next.
func authenticate(c *gin.Context, tokens *auth.TokenService, role auth.Role) (auth.Identity, bool) {
	raw, ok := bearerToken(c)
	if !ok {
		abort(c, apperrors.ErrAuthTokenMissing)
		return auth.Identity{}, false
	}

	id, err := tokens.Verify(raw)
	if err != nil || id.Type != role {
		abort(c, apperrors.ErrAuthInvalid)
		return auth.Identity{}, false
	}

	c.Set(identityKey, id)
	return id, true
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	return token, token != ""
}

func abort(c *gin.Context, err error) {
	c.AbortWithStatusJSON(apperrors.HTTPStatus(err), gin.H{
		"success": false,
		"message": apperrors.Message(err),
	})
}
