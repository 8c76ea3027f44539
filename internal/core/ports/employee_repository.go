package ports

import (
	"context"

	"github.com/hrdesk/employee-api/internal/core/domain"
)

// EmployeeRepository defines persistence for employee records.
type EmployeeRepository interface {
	// Create persists the employee and assigns its store-generated ID.
	Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	FindByID(ctx context.Context, id int64) (*domain.Employee, error)
}
