package auth

import (
	"context"

	"github.com/google/uuid"
)

// Role is the back-office role carried in the access token
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleManager    Role = "manager"
	RoleSupervisor Role = "supervisor"
)

// IsValid checks if the Role is known
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleSupervisor:
		return true
	}
	return false
}

// Principal is the authenticated caller of a request.
// It is attached to the request context by the auth middleware and read
// through PrincipalFromContext; nothing else stores it.
type Principal struct {
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
	Role   Role      `json:"role"`
}

// HasRole reports whether the principal has one of the given roles
func (p Principal) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}

type principalKey struct{}

// WithPrincipal returns a copy of ctx carrying p
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the principal stored in ctx, if any
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

// SystemPrincipal is used for work not triggered by a request (seeding, jobs)
var SystemPrincipal = Principal{Name: "system", Role: RoleAdmin}
