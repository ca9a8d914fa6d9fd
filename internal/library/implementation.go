// internal/library/implementation.go
package library

import (
	"context"
)

// service implements the Service interface. Manager references are not
// checked against the user store.
type service struct {
	repo Repository
}

// NewService creates a new library branch service instance.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateLibrary opens a new branch with no books.
func (s *service) CreateLibrary(ctx context.Context, in CreateInput) Library {
	return s.repo.Create(ctx, in)
}

func (s *service) GetLibrary(ctx context.Context, id string) (Library, bool) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) ListLibraries(ctx context.Context) []Library {
	return s.repo.FindAll(ctx)
}

func (s *service) ListLibrariesByFilters(ctx context.Context, f Filters) []Library {
	return s.repo.FindByFilters(ctx, f)
}

// UpdateLibrary merges the supplied fields into an existing branch.
func (s *service) UpdateLibrary(ctx context.Context, id string, patch Patch) (Library, bool) {
	return s.repo.Update(ctx, id, patch)
}

func (s *service) DeleteLibrary(ctx context.Context, id string) bool {
	return s.repo.Delete(ctx, id)
}
