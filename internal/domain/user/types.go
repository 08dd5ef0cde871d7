package user

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RolePlayer Role = "player"
	RoleCoach  Role = "coach"
	RoleAdmin  Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RolePlayer, RoleCoach, RoleAdmin:
		return true
	default:
		return false
	}
}

// Privileged roles may act on other users' bookings (cancel past slots, mark
// sessions done).
func (r Role) IsPrivileged() bool {
	return r == RoleCoach || r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Principal is the authenticated actor supplied by the identity provider.
// Ownership and role checks still happen per operation.
type Principal struct {
	ID    uuid.UUID
	Role  Role
	Email string
}
