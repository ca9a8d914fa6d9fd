// internal/library/service.go
package library

import (
	"context"
)

// Service defines the interface for the library branch service.
type Service interface {
	CreateLibrary(ctx context.Context, in CreateInput) Library
	GetLibrary(ctx context.Context, id string) (Library, bool)
	ListLibraries(ctx context.Context) []Library
	ListLibrariesByFilters(ctx context.Context, f Filters) []Library
	UpdateLibrary(ctx context.Context, id string, patch Patch) (Library, bool)
	DeleteLibrary(ctx context.Context, id string) bool
}
