package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	RoleUser    Role = "user"
	RoleAdmin   Role = "admin"
	RolePartner Role = "partner"
)

const (
	DefaultUserTTL    = 7 * 24 * time.Hour
	DefaultAdminTTL   = 24 * time.Hour
	DefaultPartnerTTL = 24 * time.Hour
)

// ErrInvalidToken covers every verification failure: malformed, expired,
// wrong secret, wrong algorithm or missing identity.
var ErrInvalidToken = errors.New("invalid token")

// Identity is the role-tagged subject embedded in every token.
type Identity struct {
	ID         uint   `json:"id"`
	Type       Role   `json:"type"`
	Email      string `json:"email,omitempty"`
	Username   string `json:"username,omitempty"`
	SchoolName string `json:"schoolName,omitempty"`
}

type Claims struct {
	Identity Identity `json:"identity"`
	jwt.RegisteredClaims
}

type TokenConfig struct {
	Secret     string
	UserTTL    time.Duration
	AdminTTL   time.Duration
	PartnerTTL time.Duration
	// Now defaults to time.Now.
	Now func() time.Time
}

// TokenService issues and verifies HS256 bearer tokens. It is immutable
// after construction and safe for concurrent use.
type TokenService struct {
	secret []byte
	ttl    map[Role]time.Duration
	now    func() time.Time
}

func NewTokenService(cfg TokenConfig) (*TokenService, error) {
	if cfg.Secret == "" {
		return nil, errors.New("token secret is empty")
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &TokenService{
		secret: []byte(cfg.Secret),
		ttl: map[Role]time.Duration{
			RoleUser:    orDefault(cfg.UserTTL, DefaultUserTTL),
			RoleAdmin:   orDefault(cfg.AdminTTL, DefaultAdminTTL),
			RolePartner: orDefault(cfg.PartnerTTL, DefaultPartnerTTL),
		},
		now: cfg.Now,
	}, nil
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}

// TTL returns the lifetime of tokens issued for role.
func (s *TokenService) TTL(role Role) time.Duration { return s.ttl[role] }

// Issue signs a token for id with the lifetime of its role.
func (s *TokenService) Issue(id Identity) (string, time.Time, error) {
	ttl, ok := s.ttl[id.Type]
	if !ok {
		return "", time.Time{}, fmt.Errorf("issue token: unknown role %q", id.Type)
	}

	now := s.now()
	claims := Claims{
		Identity: id,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(id.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, claims.ExpiresAt.Time, nil
}

// Verify returns the identity carried by a valid token, or ErrInvalidToken.
func (s *TokenService) Verify(raw string) (Identity, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(raw, &claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	if claims.Identity.ID == 0 {
		return Identity{}, ErrInvalidToken
	}
	if _, known := s.ttl[claims.Identity.Type]; !known {
		return Identity{}, ErrInvalidToken
	}
	return claims.Identity, nil
}
