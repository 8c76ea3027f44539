package ports

import (
	"context"

	"github.com/hrdesk/employee-api/internal/core/domain"
)

// UserRepository defines persistence for the credential store.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// GetRoles returns the user's current role memberships.
	GetRoles(ctx context.Context, userID string) ([]domain.Role, error)
	// AddToRole and RemoveFromRole mutate membership. No HTTP operation is
	// wired to them; they exist for seeding and operational tooling.
	AddToRole(ctx context.Context, userID string, role domain.Role) error
	RemoveFromRole(ctx context.Context, userID string, role domain.Role) error
}
