// internal/user/repository.go
package user

import (
	"context"

	"elibrary/internal/store"
)

// Repository is the storage contract the user service depends on.
type Repository interface {
	Create(ctx context.Context, in CreateInput) User
	FindByID(ctx context.Context, id string) (User, bool)
	FindAll(ctx context.Context) []User
	Update(ctx context.Context, id string, patch Patch) (User, bool)
	Delete(ctx context.Context, id string) bool
}

var _ Repository = (*MemoryRepository)(nil)

// MemoryRepository keeps users in process memory.
type MemoryRepository struct {
	store *store.Store[User, CreateInput, Patch]
}

// NewMemoryRepository creates an empty repository unless seeded via store.WithSeed.
func NewMemoryRepository(opts ...store.Option[User]) *MemoryRepository {
	return &MemoryRepository{store: store.New[User, CreateInput, Patch]("user", opts...)}
}

func (r *MemoryRepository) Create(ctx context.Context, in CreateInput) User {
	return r.store.Create(ctx, in)
}

func (r *MemoryRepository) FindByID(ctx context.Context, id string) (User, bool) {
	return r.store.FindByID(ctx, id)
}

func (r *MemoryRepository) FindAll(ctx context.Context) []User {
	return r.store.FindAll(ctx)
}

func (r *MemoryRepository) Update(ctx context.Context, id string, patch Patch) (User, bool) {
	return r.store.Update(ctx, id, patch)
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) bool {
	return r.store.Delete(ctx, id)
}

// Len reports how many users are stored.
func (r *MemoryRepository) Len() int {
	return r.store.Len()
}
