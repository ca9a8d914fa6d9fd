// internal/library/repository.go
package library

import (
	"context"

	"elibrary/internal/store"
)

// Repository is the storage contract the library service depends on.
type Repository interface {
	Create(ctx context.Context, in CreateInput) Library
	FindByID(ctx context.Context, id string) (Library, bool)
	FindAll(ctx context.Context) []Library
	FindByFilters(ctx context.Context, f Filters) []Library
	Update(ctx context.Context, id string, patch Patch) (Library, bool)
	Delete(ctx context.Context, id string) bool
}

var _ Repository = (*MemoryRepository)(nil)

// MemoryRepository keeps library branches in process memory. It starts
// empty; fixture data is only loaded when passed with store.WithSeed.
type MemoryRepository struct {
	store *store.Store[Library, CreateInput, Patch]
}

func NewMemoryRepository(opts ...store.Option[Library]) *MemoryRepository {
	return &MemoryRepository{store: store.New[Library, CreateInput, Patch]("library", opts...)}
}

func (r *MemoryRepository) Create(ctx context.Context, in CreateInput) Library {
	return r.store.Create(ctx, in)
}

func (r *MemoryRepository) FindByID(ctx context.Context, id string) (Library, bool) {
	return r.store.FindByID(ctx, id)
}

func (r *MemoryRepository) FindAll(ctx context.Context) []Library {
	return r.store.FindAll(ctx)
}

// FindByFilters returns the branches matching every supplied predicate.
func (r *MemoryRepository) FindByFilters(ctx context.Context, f Filters) []Library {
	if f.IsEmpty() {
		return r.store.FindAll(ctx)
	}
	return r.store.Filter(ctx, f.Matcher())
}

func (r *MemoryRepository) Update(ctx context.Context, id string, patch Patch) (Library, bool) {
	return r.store.Update(ctx, id, patch)
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) bool {
	return r.store.Delete(ctx, id)
}

// Len reports how many branches are stored.
func (r *MemoryRepository) Len() int {
	return r.store.Len()
}
