package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hrdesk/employee-api/internal/api/metrics"
	"github.com/hrdesk/employee-api/internal/core/domain"
	"github.com/hrdesk/employee-api/internal/core/ports"
)

// EmployeeHandler handles the employee directory endpoints.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

type createEmployeeRequest struct {
	Name     string       `json:"name"     validate:"required"`
	Position string       `json:"position"`
	Salary   domain.Money `json:"salary"   validate:"gt=0"`
}

// List returns all employee records.
//
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Employee
// @Failure      401  {object}  messageResponse
// @Router       /employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employees)
}

// Create persists a new employee and points at it with a Location header.
//
// @Summary      Create an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEmployeeRequest  true  "Employee details"
// @Success      201   {object}  domain.Employee
// @Failure      400   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Router       /employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req createEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	created, err := h.service.Create(c.Request().Context(), ports.CreateEmployeeInput{
		Name:     req.Name,
		Position: req.Position,
		Salary:   req.Salary,
	})
	if err != nil {
		return err
	}

	metrics.EmployeesCreatedTotal.Inc()
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/employees/%d", created.ID))
	return c.JSON(http.StatusCreated, created)
}

// Get returns a single employee by id.
//
// No auth on single-employee reads; tightening this to match list/create is a
// pending product decision.
//
// @Summary      Get an employee by id
// @Tags         employees
// @Produce      json
// @Param        id   path      int  true  "Employee id"
// @Success      200  {object}  domain.Employee
// @Failure      404  {object}  messageResponse
// @Router       /employees/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid employee id"})
	}

	employee, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "employee not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, employee)
}
