package auth

import (
	"fmt"
	"sync"
	"time"

	"saira_acad/internal/apperrors"
)

// Account is what every credential-bearing model exposes to the login flow
// and the access guards.
type Account interface {
	AccountID() uint
	Role() Role
	Active() bool
	PasswordHash() string
	Identity() Identity
}

// Session is the result of a successful login.
type Session struct {
	Token     string
	ExpiresAt time.Time
	Identity  Identity
}

// Service bundles hashing and token issuance for the account handlers.
type Service struct {
	Hasher *Hasher
	Tokens *TokenService

	dummyOnce sync.Once
	dummy     string
}

func NewService(hasher *Hasher, tokens *TokenService) *Service {
	return &Service{Hasher: hasher, Tokens: tokens}
}

// Login checks password against acct and issues a token scoped to its role.
// A nil acct (unknown login name) still pays for one bcrypt comparison and
// fails with the same error as a wrong password.
func (s *Service) Login(acct Account, password string) (Session, error) {
	if acct == nil {
		_, _ = s.Hasher.Verify(s.dummyHash(), password)
		return Session{}, apperrors.ErrInvalidCredentials
	}

	ok, err := s.Hasher.Verify(acct.PasswordHash(), password)
	if err != nil {
		return Session{}, err
	}
	if !ok {
		return Session{}, apperrors.ErrInvalidCredentials
	}
	if !acct.Active() {
		return Session{}, apperrors.ErrAccountInactive
	}

	return s.IssueFor(acct)
}

// IssueFor signs a token for acct without checking a password. Used right after registration.
func (s *Service) IssueFor(acct Account) (Session, error) {
	id := acct.Identity()
	token, exp, err := s.Tokens.Issue(id)
	if err != nil {
		return Session{}, fmt.Errorf("issue %s token: %w", acct.Role(), err)
	}
	return Session{Token: token, ExpiresAt: exp, Identity: id}, nil
}

func (s *Service) dummyHash() string {
	s.dummyOnce.Do(func() {
		h, err := s.Hasher.Hash("not-a-real-password")
		if err == nil {
			s.dummy = h
		}
	})
	return s.dummy
}
