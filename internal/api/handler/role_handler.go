package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hrdesk/employee-api/internal/core/domain"
	"github.com/hrdesk/employee-api/internal/core/ports"
)

// RoleHandler handles role administration. All routes are Admin-only; the
// role check happens in the middleware chain, not here.
type RoleHandler struct {
	service ports.RoleService
}

func NewRoleHandler(service ports.RoleService) *RoleHandler {
	return &RoleHandler{service: service}
}

type createRoleRequest struct {
	RoleName string `json:"roleName" validate:"required"`
}

// List returns all role names.
//
// @Summary      List roles
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   string
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Router       /roles [get]
func (h *RoleHandler) List(c echo.Context) error {
	roles, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roles)
}

// Create adds a new role.
//
// @Summary      Create a role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRoleRequest  true  "Role name"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Router       /roles [post]
func (h *RoleHandler) Create(c echo.Context) error {
	var req createRoleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	if err := h.service.Create(c.Request().Context(), domain.Role(req.RoleName)); err != nil {
		if errors.Is(err, domain.ErrRoleExists) {
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Role already exists."})
		}
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Role created successfully."})
}

// Delete removes a role by name.
//
// @Summary      Delete a role
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Param        roleName  path      string  true  "Role name"
// @Success      200       {object}  messageResponse
// @Failure      404       {object}  messageResponse
// @Router       /roles/{roleName} [delete]
func (h *RoleHandler) Delete(c echo.Context) error {
	name := domain.Role(c.Param("roleName"))

	if err := h.service.Delete(c.Request().Context(), name); err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Role not found."})
		}
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Role deleted successfully."})
}
