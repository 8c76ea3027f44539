package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hrdesk/employee-api/internal/api/metrics"
	"github.com/hrdesk/employee-api/internal/core/domain"
	"github.com/hrdesk/employee-api/internal/core/ports"
)

// AuthHandler handles registration, login and role seeding.
type AuthHandler struct {
	authService ports.AuthService
	roleService ports.RoleService
}

func NewAuthHandler(authService ports.AuthService, roleService ports.RoleService) *AuthHandler {
	return &AuthHandler{authService: authService, roleService: roleService}
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token      string    `json:"token"`
	Expiration time.Time `json:"expiration"`
}

type registerFailedResponse struct {
	Message string                     `json:"message"`
	Errors  []domain.PasswordViolation `json:"errors"`
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      500   {object}  registerFailedResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "User already exists!"})
		}
		var policyErr *domain.PasswordPolicyError
		if errors.As(err, &policyErr) {
			metrics.RegistrationsTotal.WithLabelValues("policy_rejected").Inc()
			return c.JSON(http.StatusInternalServerError, registerFailedResponse{
				Message: "User creation failed!",
				Errors:  policyErr.Violations,
			})
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "User created successfully!"})
}

// Login authenticates a user and returns a signed bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  messageResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}

	result, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		// One generic message for unknown users and wrong passwords alike,
		// so the endpoint cannot be used to enumerate usernames.
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Invalid username or password"})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Token: result.Token, Expiration: result.ExpiresAt})
}

// SeedRoles idempotently creates the baseline roles.
//
// @Summary      Seed baseline roles
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /auth/seed-roles [post]
func (h *AuthHandler) SeedRoles(c echo.Context) error {
	if err := h.roleService.Seed(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Roles seeded successfully!"})
}
