package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/hrdesk/employee-api/internal/core/domain"
	"github.com/hrdesk/employee-api/internal/core/ports"
)

// EmployeeService implements the employee directory use cases.
type EmployeeService struct {
	employees ports.EmployeeRepository
	logger    zerolog.Logger
}

func NewEmployeeService(employees ports.EmployeeRepository, logger zerolog.Logger) *EmployeeService {
	return &EmployeeService{employees: employees, logger: logger}
}

func (s *EmployeeService) List(ctx context.Context) ([]domain.Employee, error) {
	return s.employees.List(ctx)
}

func (s *EmployeeService) Create(ctx context.Context, input ports.CreateEmployeeInput) (*domain.Employee, error) {
	created, err := s.employees.Create(ctx, &domain.Employee{
		Name:     input.Name,
		Position: input.Position,
		Salary:   input.Salary,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create employee")
		return nil, err
	}

	s.logger.Info().Int64("employee_id", created.ID).Msg("employee created")
	return created, nil
}

func (s *EmployeeService) Get(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.employees.FindByID(ctx, id)
}
