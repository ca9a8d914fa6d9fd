// internal/book/service.go
package book

import (
	"context"
)

// Service defines the interface for the book catalog service.
type Service interface {
	CreateBook(ctx context.Context, in CreateInput) Book
	GetBook(ctx context.Context, id string) (Book, bool)
	ListBooks(ctx context.Context) []Book
	ListBooksByGenre(ctx context.Context, genre string) []Book
	UpdateBook(ctx context.Context, id string, patch Patch) (Book, bool)
	DeleteBook(ctx context.Context, id string) bool
}
