// internal/book/implementation.go
package book

import (
	"context"
)

// service implements the Service interface.
type service struct {
	repo Repository
}

// NewService creates a new book catalog service instance.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateBook adds a new book to the catalog.
func (s *service) CreateBook(ctx context.Context, in CreateInput) Book {
	return s.repo.Create(ctx, in)
}

// GetBook retrieves a book by ID.
func (s *service) GetBook(ctx context.Context, id string) (Book, bool) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) ListBooks(ctx context.Context) []Book {
	return s.repo.FindAll(ctx)
}

func (s *service) ListBooksByGenre(ctx context.Context, genre string) []Book {
	return s.repo.FindByGenre(ctx, genre)
}

// UpdateBook merges the supplied fields into an existing book.
func (s *service) UpdateBook(ctx context.Context, id string, patch Patch) (Book, bool) {
	return s.repo.Update(ctx, id, patch)
}

// DeleteBook removes a book from the catalog.
func (s *service) DeleteBook(ctx context.Context, id string) bool {
	return s.repo.Delete(ctx, id)
}
