// internal/user/implementation.go
package user

import (
	"context"
)

// service implements the Service interface.
type service struct {
	repo Repository
}

// NewService creates a new user service instance.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateUser registers a new user.
func (s *service) CreateUser(ctx context.Context, in CreateInput) User {
	return s.repo.Create(ctx, in)
}

// GetUser retrieves a user by ID.
func (s *service) GetUser(ctx context.Context, id string) (User, bool) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) ListUsers(ctx context.Context) []User {
	return s.repo.FindAll(ctx)
}

// UpdateUser merges the supplied fields into an existing user.
func (s *service) UpdateUser(ctx context.Context, id string, patch Patch) (User, bool) {
	return s.repo.Update(ctx, id, patch)
}

func (s *service) DeleteUser(ctx context.Context, id string) bool {
	return s.repo.Delete(ctx, id)
}
