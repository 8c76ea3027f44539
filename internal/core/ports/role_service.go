package ports

import (
	"context"

	"github.com/hrdesk/employee-api/internal/core/domain"
)

// RoleService defines role administration use cases.
type RoleService interface {
	List(ctx context.Context) ([]domain.Role, error)
	Create(ctx context.Context, name domain.Role) error
	Delete(ctx context.Context, name domain.Role) error
	// Seed idempotently ensures the baseline roles exist. Safe to call
	// repeatedly and concurrently.
	Seed(ctx context.Context) error
}
