package domain

import "errors"

// Role is a named authorization group. Authorization checks compare typed
// values, never raw request strings, so a typo cannot widen access.
type Role string

const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)

// SeedRoles is the baseline role set ensured by the seeding operation.
var SeedRoles = []Role{RoleAdmin, RoleUser}

var ErrRoleExists = errors.New("role already exists")
var ErrRoleNotFound = errors.New("role not found")

func (r Role) String() string { return string(r) }
