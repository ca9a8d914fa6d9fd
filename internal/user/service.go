// internal/user/service.go
package user

import (
	"context"
)

// Service defines the interface for the user service.
type Service interface {
	CreateUser(ctx context.Context, in CreateInput) User
	GetUser(ctx context.Context, id string) (User, bool)
	ListUsers(ctx context.Context) []User
	UpdateUser(ctx context.Context, id string, patch Patch) (User, bool)
	DeleteUser(ctx context.Context, id string) bool
}
