package ports

import (
	"context"

	"github.com/hrdesk/employee-api/internal/core/domain"
)

// CreateEmployeeInput carries the fields of an employee creation request.
type CreateEmployeeInput struct {
	Name     string
	Position string
	Salary   domain.Money
}

// EmployeeService defines employee directory use cases.
type EmployeeService interface {
	List(ctx context.Context) ([]domain.Employee, error)
	Create(ctx context.Context, input CreateEmployeeInput) (*domain.Employee, error)
	Get(ctx context.Context, id int64) (*domain.Employee, error)
}
