package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/hrdesk/employee-api/internal/core/domain"
)

func TestRoleHandler_List(t *testing.T) {
	stub := &stubRoleService{
		listFn: func(ctx context.Context) ([]domain.Role, error) {
			return []domain.Role{domain.RoleAdmin, domain.RoleUser}, nil
		},
	}
	h := NewRoleHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/roles", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var names []string
	if err := json.Unmarshal(rec.Body.Bytes(), &names); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(names) != 2 || names[0] != "Admin" || names[1] != "User" {
		t.Fatalf("unexpected roles: %v", names)
	}
}

func TestRoleHandler_Create_Success(t *testing.T) {
	var createdName domain.Role
	stub := &stubRoleService{
		createFn: func(ctx context.Context, name domain.Role) error {
			createdName = name
			return nil
		},
	}
	h := NewRoleHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/roles", `{"roleName":"Auditor"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if createdName != "Auditor" {
		t.Fatalf("unexpected role name: %s", createdName)
	}
	if !strings.Contains(rec.Body.String(), "Role created successfully.") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRoleHandler_Create_Exists(t *testing.T) {
	stub := &stubRoleService{
		createFn: func(ctx context.Context, name domain.Role) error {
			return domain.ErrRoleExists
		},
	}
	h := NewRoleHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/roles", `{"roleName":"Admin"}`)
	_ = h.Create(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Role already exists.") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRoleHandler_Create_MissingName(t *testing.T) {
	stub := &stubRoleService{
		createFn: func(ctx context.Context, name domain.Role) error {
			t.Fatalf("service should not be called")
			return nil
		},
	}
	h := NewRoleHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/roles", `{}`)
	_ = h.Create(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRoleHandler_Delete_Success(t *testing.T) {
	var deletedName domain.Role
	stub := &stubRoleService{
		deleteFn: func(ctx context.Context, name domain.Role) error {
			deletedName = name
			return nil
		},
	}
	h := NewRoleHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/api/roles/Auditor", "")
	c.SetParamNames("roleName")
	c.SetParamValues("Auditor")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if deletedName != "Auditor" {
		t.Fatalf("unexpected role name: %s", deletedName)
	}
}

func TestRoleHandler_Delete_NotFound(t *testing.T) {
	stub := &stubRoleService{
		deleteFn: func(ctx context.Context, name domain.Role) error {
			return domain.ErrRoleNotFound
		},
	}
	h := NewRoleHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/api/roles/Ghost", "")
	c.SetParamNames("roleName")
	c.SetParamValues("Ghost")

	_ = h.Delete(c)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Role not found.") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
