package model

import (
	"github.com/google/uuid"
)

// Role constants determine the post-login dashboard destination.
const (
	RoleAdmin      = "admin"
	RoleSupervisor = "supervisor"
	RoleNurse      = "nurse"
)

// User represents a system user as returned by the users collection
// and the identity endpoint.
type User struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
}
