package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hrdesk/employee-api/internal/core/domain"
)

type stubRoleRepo struct {
	names   map[domain.Role]bool
	creates int
}

func newStubRoleRepo() *stubRoleRepo {
	return &stubRoleRepo{names: make(map[domain.Role]bool)}
}

func (r *stubRoleRepo) Exists(_ context.Context, name domain.Role) (bool, error) {
	return r.names[name], nil
}

func (r *stubRoleRepo) Create(_ context.Context, name domain.Role) error {
	if r.names[name] {
		return domain.ErrRoleExists
	}
	r.names[name] = true
	r.creates++
	return nil
}

func (r *stubRoleRepo) Delete(_ context.Context, name domain.Role) error {
	if !r.names[name] {
		return domain.ErrRoleNotFound
	}
	delete(r.names, name)
	return nil
}

func (r *stubRoleRepo) ListNames(_ context.Context) ([]domain.Role, error) {
	var names []domain.Role
	for name := range r.names {
		names = append(names, name)
	}
	return names, nil
}

func TestRoleService_Create_Duplicate(t *testing.T) {
	repo := newStubRoleRepo()
	svc := NewRoleService(repo, zerolog.Nop())

	if err := svc.Create(context.Background(), "Auditor"); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if err := svc.Create(context.Background(), "Auditor"); !errors.Is(err, domain.ErrRoleExists) {
		t.Fatalf("expected ErrRoleExists, got %v", err)
	}
}

func TestRoleService_Delete(t *testing.T) {
	repo := newStubRoleRepo()
	svc := NewRoleService(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), "Ghost"); !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}

	if err := svc.Create(context.Background(), "Auditor"); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := svc.Delete(context.Background(), "Auditor"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	names, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, name := range names {
		if name == "Auditor" {
			t.Fatalf("deleted role still listed")
		}
	}
}

func TestRoleService_Seed_Idempotent(t *testing.T) {
	repo := newStubRoleRepo()
	svc := NewRoleService(repo, zerolog.Nop())

	if err := svc.Seed(context.Background()); err != nil {
		t.Fatalf("first seed failed: %v", err)
	}
	if err := svc.Seed(context.Background()); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}

	if !repo.names[domain.RoleAdmin] || !repo.names[domain.RoleUser] {
		t.Fatalf("expected Admin and User roles to exist: %v", repo.names)
	}
	if repo.creates != 2 {
		t.Fatalf("expected exactly 2 role creations, got %d", repo.creates)
	}
}
