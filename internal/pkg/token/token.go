// Package token issues and verifies the signed bearer tokens used by the API.
// Issuance and verification share a single explicit Config so both sides
// always agree on secret, issuer and audience.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/hrdesk/employee-api/internal/core/domain"
)

// DefaultTTL is the token lifetime applied when Config.TTL is unset.
const DefaultTTL = 3 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

// Config carries the signing parameters. It is loaded once at startup and
// passed explicitly to the issuer and the auth middleware.
type Config struct {
	Secret   string
	Issuer   string
	Audience string
	TTL      time.Duration
}

// Claims is the signed claim set embedded in every token. Roles reflect the
// user's membership at issuance time; later role changes do not affect
// already-issued tokens.
type Claims struct {
	Username string        `json:"username"`
	UserID   string        `json:"uid"`
	Roles    []domain.Role `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// HasRole reports whether the claim set carries the given role.
func (c *Claims) HasRole(role domain.Role) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Manager signs and verifies tokens with a symmetric HS256 key.
type Manager struct {
	cfg Config
}

func NewManager(cfg Config) *Manager {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	return &Manager{cfg: cfg}
}

// Issue mints a token for the user with the given role set and returns the
// signed string together with its absolute expiration. Every token gets a
// fresh jti, so two logins in the same instant still produce distinct tokens.
func (m *Manager) Issue(user *domain.User, roles []domain.Role) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(m.cfg.TTL)

	claims := Claims{
		Username: user.Username,
		UserID:   user.ID,
		Roles:    roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.cfg.Issuer,
			Audience:  jwt.ClaimStrings{m.cfg.Audience},
			Subject:   user.Username,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(m.cfg.Secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Verify validates signature, signing method, issuer, audience and lifetime,
// and returns the embedded claims.
func (m *Manager) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(raw, claims,
		func(t *jwt.Token) (any, error) {
			return []byte(m.cfg.Secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.cfg.Issuer),
		jwt.WithAudience(m.cfg.Audience),
	)
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
