package main

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"elibrary/internal/book"
	"elibrary/internal/fixtures"
	"elibrary/internal/library"
	"elibrary/internal/server"
	"elibrary/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	users := user.NewMemoryRepository()
	books := book.NewMemoryRepository()
	libraries := library.NewMemoryRepository()
	srv := httptest.NewServer(server.NewRouter(server.Deps{
		Users:     user.NewService(users),
		Books:     book.NewService(books),
		Libraries: library.NewService(libraries),
	}))
	defer srv.Close()

	set, err := fixtures.Load("../../fixtures.example.yaml")
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, seed(context.Background(), logger, srv.URL, set))

	assert.Equal(t, len(set.Users), users.Len())
	assert.Equal(t, len(set.Books), books.Len())
	assert.Equal(t, len(set.Libraries), libraries.Len())
}

func TestSeed_FailsOnWrongBaseURL(t *testing.T) {
	srv := httptest.NewServer(server.NewRouter(server.Deps{
		Users:     user.NewService(user.NewMemoryRepository()),
		Books:     book.NewService(book.NewMemoryRepository()),
		Libraries: library.NewService(library.NewMemoryRepository()),
	}))
	defer srv.Close()

	set, err := fixtures.Load("../../fixtures.example.yaml")
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	err = seed(context.Background(), logger, srv.URL+"/api/v1", set)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "create user")
}
