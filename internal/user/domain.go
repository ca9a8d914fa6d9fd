// internal/user/domain.go
package user

import (
	"time"

	"elibrary/internal/store"
)

// Role is the access level of a user.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User represents a registered e-library user.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Meta exposes the store-owned identity fields.
func (u User) Meta() store.Meta {
	return store.Meta{ID: u.ID, CreatedAt: u.CreatedAt}
}

// WithMeta returns a copy of u carrying m's id and creation time.
func (u User) WithMeta(m store.Meta) User {
	u.ID = m.ID
	u.CreatedAt = m.CreatedAt
	return u
}

// CreateInput carries the fields a caller supplies when registering a user.
type CreateInput struct {
	Name  string `json:"name" yaml:"name" validate:"required,min=1"`
	Email string `json:"email" yaml:"email" validate:"required,email"`
	Role  Role   `json:"role,omitempty" yaml:"role" validate:"omitempty,oneof=admin user"`
}

// Build assembles a User, defaulting the role to RoleUser.
func (in CreateInput) Build(m store.Meta) User {
	role := in.Role
	if role == "" {
		role = RoleUser
	}
	return User{
		ID:        m.ID,
		Name:      in.Name,
		Email:     in.Email,
		Role:      role,
		CreatedAt: m.CreatedAt,
	}
}

// Patch is a sparse update; nil fields are left untouched.
type Patch struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
	Role  *Role   `json:"role,omitempty" validate:"omitempty,oneof=admin user"`
}

// Apply returns a copy of u with every non-nil patch field written over it.
func (p Patch) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	return u
}
