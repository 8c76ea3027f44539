package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/hrdesk/employee-api/internal/core/domain"
	"github.com/hrdesk/employee-api/internal/core/ports"
)

// RoleService implements role administration.
type RoleService struct {
	roles  ports.RoleRepository
	logger zerolog.Logger
}

func NewRoleService(roles ports.RoleRepository, logger zerolog.Logger) *RoleService {
	return &RoleService{roles: roles, logger: logger}
}

func (s *RoleService) List(ctx context.Context) ([]domain.Role, error) {
	return s.roles.ListNames(ctx)
}

func (s *RoleService) Create(ctx context.Context, name domain.Role) error {
	exists, err := s.roles.Exists(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrRoleExists
	}

	if err := s.roles.Create(ctx, name); err != nil {
		return err
	}
	s.logger.Info().Str("role", name.String()).Msg("role created")
	return nil
}

func (s *RoleService) Delete(ctx context.Context, name domain.Role) error {
	if err := s.roles.Delete(ctx, name); err != nil {
		return err
	}
	s.logger.Info().Str("role", name.String()).Msg("role deleted")
	return nil
}

// Seed ensures the baseline roles exist, creating only the missing ones.
// A concurrent creation losing the race is treated as already seeded.
func (s *RoleService) Seed(ctx context.Context) error {
	for _, name := range domain.SeedRoles {
		exists, err := s.roles.Exists(ctx, name)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if err := s.roles.Create(ctx, name); err != nil && !errors.Is(err, domain.ErrRoleExists) {
			return err
		}
		s.logger.Info().Str("role", name.String()).Msg("baseline role seeded")
	}
	return nil
}
