package ports

import (
	"context"

	"github.com/hrdesk/employee-api/internal/core/domain"
)

// RoleRepository defines persistence for authorization roles.
type RoleRepository interface {
	Exists(ctx context.Context, name domain.Role) (bool, error)
	Create(ctx context.Context, name domain.Role) error
	Delete(ctx context.Context, name domain.Role) error
	ListNames(ctx context.Context) ([]domain.Role, error)
}
