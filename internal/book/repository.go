// internal/book/repository.go
package book

import (
	"context"

	"elibrary/internal/store"
)

// Repository is the storage contract the book service depends on.
type Repository interface {
	Create(ctx context.Context, in CreateInput) Book
	FindByID(ctx context.Context, id string) (Book, bool)
	FindAll(ctx context.Context) []Book
	FindByGenre(ctx context.Context, genre string) []Book
	Update(ctx context.Context, id string, patch Patch) (Book, bool)
	Delete(ctx context.Context, id string) bool
}

var _ Repository = (*MemoryRepository)(nil)

// MemoryRepository keeps books in process memory.
type MemoryRepository struct {
	store *store.Store[Book, CreateInput, Patch]
}

// NewMemoryRepository creates an empty repository unless seeded via store.WithSeed.
func NewMemoryRepository(opts ...store.Option[Book]) *MemoryRepository {
	return &MemoryRepository{store: store.New[Book, CreateInput, Patch]("book", opts...)}
}

func (r *MemoryRepository) Create(ctx context.Context, in CreateInput) Book {
	return r.store.Create(ctx, in)
}

func (r *MemoryRepository) FindByID(ctx context.Context, id string) (Book, bool) {
	return r.store.FindByID(ctx, id)
}

func (r *MemoryRepository) FindAll(ctx context.Context) []Book {
	return r.store.FindAll(ctx)
}

// FindByGenre returns the books whose genre equals genre exactly, case included.
func (r *MemoryRepository) FindByGenre(ctx context.Context, genre string) []Book {
	return r.store.Filter(ctx, func(b Book) bool {
		return string(b.Genre) == genre
	})
}

func (r *MemoryRepository) Update(ctx context.Context, id string, patch Patch) (Book, bool) {
	return r.store.Update(ctx, id, patch)
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) bool {
	return r.store.Delete(ctx, id)
}

// Len reports how many books are stored.
func (r *MemoryRepository) Len() int {
	return r.store.Len()
}
