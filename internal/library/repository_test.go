package library

import (
	"context"
	"testing"
	"time"

	"elibrary/internal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func names(ls []Library) []string {
	out := make([]string, 0, len(ls))
	for _, l := range ls {
		out = append(out, l.Name)
	}
	return out
}

func TestMemoryRepository_Create(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	manager := uuid.NewString()

	l := repo.Create(ctx, CreateInput{Name: "Central Library", Location: "Downtown", Manager: manager})

	assert.NotEmpty(t, l.ID)
	assert.Equal(t, "Central Library", l.Name)
	assert.Equal(t, "Downtown", l.Location)
	assert.Equal(t, manager, l.Manager)
	assert.Equal(t, 0, l.TotalBooks)
	assert.False(t, l.CreatedAt.IsZero())
}

func TestMemoryRepository_StartsEmpty(t *testing.T) {
	repo := NewMemoryRepository()
	assert.Empty(t, repo.FindAll(context.Background()))
	assert.Zero(t, repo.Len())
}

func TestMemoryRepository_Seeded(t *testing.T) {
	seed := Library{
		ID:        uuid.NewString(),
		Name:      "Seeded Branch",
		Location:  "Harbour",
		Manager:   uuid.NewString(),
		CreatedAt: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	repo := NewMemoryRepository(store.WithSeed(seed))

	got, ok := repo.FindByID(context.Background(), seed.ID)
	require.True(t, ok)
	assert.Equal(t, seed, got)
	assert.Equal(t, 1, repo.Len())
}

func TestMemoryRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	l := repo.Create(ctx, CreateInput{Name: "Central Library", Location: "Downtown", Manager: uuid.NewString()})

	updated, ok := repo.Update(ctx, l.ID, Patch{TotalBooks: ptr(42), Name: ptr("Central")})

	require.True(t, ok)
	assert.Equal(t, l.ID, updated.ID)
	assert.Equal(t, l.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "Central", updated.Name)
	assert.Equal(t, "Downtown", updated.Location)
	assert.Equal(t, l.Manager, updated.Manager)
	assert.Equal(t, 42, updated.TotalBooks)

	_, ok = repo.Update(ctx, uuid.NewString(), Patch{Name: ptr("x")})
	assert.False(t, ok)
}

func TestMemoryRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	l := repo.Create(ctx, CreateInput{Name: "Branch", Location: "Uptown", Manager: uuid.NewString()})

	assert.True(t, repo.Delete(ctx, l.ID))
	assert.False(t, repo.Delete(ctx, l.ID))
	_, ok := repo.FindByID(ctx, l.ID)
	assert.False(t, ok)
}

func TestMemoryRepository_FindByFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	managerA := uuid.NewString()
	managerB := uuid.NewString()

	central := repo.Create(ctx, CreateInput{Name: "Central Library", Location: "Downtown", Manager: managerA})
	repo.Create(ctx, CreateInput{Name: "Branch Library", Location: "Downtown", Manager: managerB})
	repo.Create(ctx, CreateInput{Name: "Test Library", Location: "Suburbs", Manager: managerA})
	_, ok := repo.Update(ctx, central.ID, Patch{TotalBooks: ptr(120)})
	require.True(t, ok)

	tests := []struct {
		name    string
		filters Filters
		want    []string
	}{
		{
			name:    "empty filter set returns everything",
			filters: Filters{},
			want:    []string{"Central Library", "Branch Library", "Test Library"},
		},
		{
			name:    "AND over name and location",
			filters: Filters{Name: ptr("Central"), Location: ptr("Downtown")},
			want:    []string{"Central Library"},
		},
		{
			name:    "name substring is case-insensitive",
			filters: Filters{Name: ptr("test")},
			want:    []string{"Test Library"},
		},
		{
			name:    "upper-case substring",
			filters: Filters{Name: ptr("LIBRARY")},
			want:    []string{"Central Library", "Branch Library", "Test Library"},
		},
		{
			name:    "location substring",
			filters: Filters{Location: ptr("town")},
			want:    []string{"Central Library", "Branch Library"},
		},
		{
			name:    "manager exact match",
			filters: Filters{Manager: ptr(managerA)},
			want:    []string{"Central Library", "Test Library"},
		},
		{
			name:    "manager is not a substring match",
			filters: Filters{Manager: ptr(managerA[:8])},
			want:    []string{},
		},
		{
			name:    "totalBooks exact match",
			filters: Filters{TotalBooks: ptr(0)},
			want:    []string{"Branch Library", "Test Library"},
		},
		{
			name:    "no match",
			filters: Filters{Name: ptr("Central"), TotalBooks: ptr(0)},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(repo.FindByFilters(ctx, tt.filters)))
		})
	}
}

func TestFilters_IsEmpty(t *testing.T) {
	assert.True(t, Filters{}.IsEmpty())
	assert.False(t, Filters{TotalBooks: ptr(0)}.IsEmpty())
	assert.False(t, Filters{Name: ptr("")}.IsEmpty())
}
