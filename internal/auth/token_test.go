package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func newTestTokens(t *testing.T, secret string, clock *fakeClock) *TokenService {
	t.Helper()
	s, err := NewTokenService(TokenConfig{Secret: secret, Now: clock.Now})
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	return s
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)}
	s := newTestTokens(t, "secret-a", clock)

	in := Identity{ID: 42, Type: RolePartner, Username: "greenfield", SchoolName: "Greenfield High"}
	tok, exp, err := s.Issue(in)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if want := clock.t.Add(24 * time.Hour); !exp.Equal(want) {
		t.Fatalf("expiry=%v want=%v", exp, want)
	}

	got, err := s.Verify(tok)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if got != in {
		t.Fatalf("identity mismatch: got %+v want %+v", got, in)
	}
}

func TestTTLByRole(t *testing.T) {
	s := newTestTokens(t, "secret", &fakeClock{t: time.Now()})

	cases := map[Role]time.Duration{
		RoleUser:    7 * 24 * time.Hour,
		RoleAdmin:   24 * time.Hour,
		RolePartner: 24 * time.Hour,
	}
	for role, want := range cases {
		if got := s.TTL(role); got != want {
			t.Fatalf("TTL(%s)=%v want=%v", role, got, want)
		}
	}
}

func TestVerify_AdminTokenExpiry(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := &fakeClock{t: issuedAt}
	s := newTestTokens(t, "secret", clock)

	tok, _, err := s.Issue(Identity{ID: 1, Type: RoleAdmin, Username: "admin"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	for _, offset := range []time.Duration{0, time.Hour, 24*time.Hour - time.Second} {
		clock.t = issuedAt.Add(offset)
		if _, err := s.Verify(tok); err != nil {
			t.Fatalf("offset %v: expected valid token, got %v", offset, err)
		}
	}

	for _, offset := range []time.Duration{24 * time.Hour, 24*time.Hour + time.Second, 30 * 24 * time.Hour} {
		clock.t = issuedAt.Add(offset)
		if _, err := s.Verify(tok); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("offset %v: expected ErrInvalidToken, got %v", offset, err)
		}
	}
}

func TestVerify_RejectsUniformly(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	s := newTestTokens(t, "right-secret", clock)
	other := newTestTokens(t, "wrong-secret", clock)

	foreign, _, err := other.Issue(Identity{ID: 1, Type: RoleAdmin})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		Identity: Identity{ID: 1, Type: RoleAdmin},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(clock.t.Add(time.Hour)),
		},
	}).SignedString([]byte("right-secret"))
	if err != nil {
		t.Fatalf("sign HS512: %v", err)
	}

	noIdentity, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 1,
		"role":    "admin",
		"exp":     clock.t.Add(time.Hour).Unix(),
	}).SignedString([]byte("right-secret"))
	if err != nil {
		t.Fatalf("sign legacy claims: %v", err)
	}

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Identity: Identity{ID: 1, Type: RoleAdmin},
	}).SignedString([]byte("right-secret"))
	if err != nil {
		t.Fatalf("sign without exp: %v", err)
	}

	good, _, err := s.Issue(Identity{ID: 1, Type: RoleAdmin})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	parts := strings.Split(good, ".")
	foreignParts := strings.Split(foreign, ".")
	spliced := parts[0] + "." + parts[1] + "." + foreignParts[2]

	cases := map[string]string{
		"malformed":    "not-a-token",
		"empty":        "",
		"wrong secret": foreign,
		"wrong alg":    hs512,
		"no identity":  noIdentity,
		"no expiry":    noExpiry,
		"spliced sig":  spliced,
	}
	for name, raw := range cases {
		if _, err := s.Verify(raw); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("%s: expected ErrInvalidToken, got %v", name, err)
		}
	}
}

func TestIssue_UnknownRole(t *testing.T) {
	s := newTestTokens(t, "secret", &fakeClock{t: time.Now()})
	if _, _, err := s.Issue(Identity{ID: 1, Type: "root"}); err == nil {
		t.Fatalf("expected error for unknown role")
	}
}

func TestNewTokenService_RequiresSecret(t *testing.T) {
	if _, err := NewTokenService(TokenConfig{}); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}
