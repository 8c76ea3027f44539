package service

import (
	"context"
	"errors"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/hrdesk/employee-api/internal/core/domain"
	"github.com/hrdesk/employee-api/internal/core/ports"
	"github.com/hrdesk/employee-api/internal/pkg/token"
)

// AuthService implements registration and login against the credential store.
type AuthService struct {
	users  ports.UserRepository
	tokens *token.Manager
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens *token.Manager, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, logger: logger}
}

// Register creates a new account. The username-taken check runs before the
// password policy so a duplicate registration never reveals policy details.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) error {
	if input.Username == "" || input.Password == "" {
		return domain.ErrInvalidCredentials
	}

	if _, err := s.users.FindByUsername(ctx, input.Username); err == nil {
		return domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	if err := checkPasswordPolicy(input.Password); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:      input.Username,
		Email:         input.Email,
		PasswordHash:  string(hash),
		SecurityStamp: uuid.NewString(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// The unique index closes the race between the lookup above and the insert.
	if _, err := s.users.Create(ctx, user); err != nil {
		return err
	}

	s.logger.Info().Str("username", input.Username).Msg("user registered")
	return nil
}

// Login verifies credentials and mints a bearer token carrying the user's
// role set as of this moment. Unknown usernames and wrong passwords are
// deliberately indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	roles, err := s.users.GetRoles(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	signed, expiresAt, err := s.tokens.Issue(user, roles)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", user.Username).Time("expires_at", expiresAt).Msg("token issued")
	return &ports.LoginResult{Token: signed, ExpiresAt: expiresAt}, nil
}

// checkPasswordPolicy applies the credential store's password rules and
// collects every violation rather than stopping at the first.
func checkPasswordPolicy(password string) error {
	var violations []domain.PasswordViolation

	add := func(code, description string) {
		violations = append(violations, domain.PasswordViolation{Code: code, Description: description})
	}

	if len(password) < 6 {
		add("PasswordTooShort", "Passwords must be at least 6 characters.")
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	if !hasUpper {
		add("PasswordRequiresUpper", "Passwords must have at least one uppercase letter.")
	}
	if !hasLower {
		add("PasswordRequiresLower", "Passwords must have at least one lowercase letter.")
	}
	if !hasDigit {
		add("PasswordRequiresDigit", "Passwords must have at least one digit.")
	}
	if !hasSymbol {
		add("PasswordRequiresNonAlphanumeric", "Passwords must have at least one non-alphanumeric character.")
	}

	if len(violations) > 0 {
		return &domain.PasswordPolicyError{Violations: violations}
	}
	return nil
}
