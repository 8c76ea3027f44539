package token

import (
	"testing"
	"time"

	"github.com/hrdesk/employee-api/internal/core/domain"
)

func testConfig() Config {
	return Config{
		Secret:   "test-secret",
		Issuer:   "employee-api",
		Audience: "employee-api-clients",
	}
}

func TestManager_IssueAndVerify(t *testing.T) {
	mgr := NewManager(testConfig())
	user := &domain.User{ID: "u1", Username: "alice"}

	signed, expiresAt, err := mgr.Issue(user, []domain.Role{domain.RoleAdmin, domain.RoleUser})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if signed == "" {
		t.Fatalf("expected a signed token")
	}

	claims, err := mgr.Verify(signed)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Username != "alice" || claims.UserID != "u1" {
		t.Fatalf("unexpected identity claims: %+v", claims)
	}
	if !claims.HasRole(domain.RoleAdmin) || !claims.HasRole(domain.RoleUser) {
		t.Fatalf("role claims missing: %v", claims.Roles)
	}
	if claims.ID == "" {
		t.Fatalf("expected a jti claim")
	}
	if got := claims.ExpiresAt.Time; !got.Equal(expiresAt.Truncate(time.Second)) {
		t.Fatalf("expiration mismatch: claim %v, returned %v", got, expiresAt)
	}
}

func TestManager_DefaultLifetimeIsThreeHours(t *testing.T) {
	mgr := NewManager(testConfig())

	before := time.Now().UTC()
	_, expiresAt, err := mgr.Issue(&domain.User{ID: "u1", Username: "alice"}, nil)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	after := time.Now().UTC()

	if expiresAt.Before(before.Add(DefaultTTL)) || expiresAt.After(after.Add(DefaultTTL)) {
		t.Fatalf("expected expiration %v after issuance, got %v", DefaultTTL, expiresAt)
	}
}

func TestManager_FreshJTIPerToken(t *testing.T) {
	mgr := NewManager(testConfig())
	user := &domain.User{ID: "u1", Username: "alice"}

	first, _, err := mgr.Issue(user, nil)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	second, _, err := mgr.Issue(user, nil)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	c1, err := mgr.Verify(first)
	if err != nil {
		t.Fatalf("verify first: %v", err)
	}
	c2, err := mgr.Verify(second)
	if err != nil {
		t.Fatalf("verify second: %v", err)
	}
	if c1.ID == c2.ID {
		t.Fatalf("expected distinct jti values, both %q", c1.ID)
	}
}

func TestManager_RejectsWrongSecret(t *testing.T) {
	mgr := NewManager(testConfig())
	signed, _, err := mgr.Issue(&domain.User{ID: "u1", Username: "alice"}, nil)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	other := NewManager(Config{Secret: "other", Issuer: "employee-api", Audience: "employee-api-clients"})
	if _, err := other.Verify(signed); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestManager_RejectsWrongIssuerAndAudience(t *testing.T) {
	issuerCfg := testConfig()
	issuerCfg.Issuer = "someone-else"
	signed, _, err := NewManager(issuerCfg).Issue(&domain.User{ID: "u1", Username: "alice"}, nil)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := NewManager(testConfig()).Verify(signed); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for wrong issuer, got %v", err)
	}

	audCfg := testConfig()
	audCfg.Audience = "someone-else"
	signed, _, err = NewManager(audCfg).Issue(&domain.User{ID: "u1", Username: "alice"}, nil)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := NewManager(testConfig()).Verify(signed); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for wrong audience, got %v", err)
	}
}

func TestManager_RejectsExpiredToken(t *testing.T) {
	cfg := testConfig()
	cfg.TTL = -time.Minute
	mgr := &Manager{cfg: cfg} // NewManager would replace the negative TTL

	signed, _, err := mgr.Issue(&domain.User{ID: "u1", Username: "alice"}, nil)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := NewManager(testConfig()).Verify(signed); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}
