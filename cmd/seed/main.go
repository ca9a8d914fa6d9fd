// cmd/seed/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"elibrary/internal/clients"
	"elibrary/internal/fixtures"
	"elibrary/internal/telemetry"
)

func main() {
	file := flag.String("file", "fixtures.example.yaml", "YAML fixture file")
	baseURL := flag.String("url", getEnv("ELIBRARY_URL", "http://localhost:3000"), "e-library API base URL")
	timeout := flag.Duration("timeout", 30*time.Second, "overall timeout")
	flag.Parse()

	logger := telemetry.NewLogger(os.Stderr, "text", slog.LevelInfo)

	set, err := fixtures.Load(*file)
	if err != nil {
		logger.Error("load fixtures", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := seed(ctx, logger, *baseURL, set); err != nil {
		logger.Error("seed", "error", err)
		os.Exit(1)
	}
	logger.Info("seed complete", "fixtures", set.Len())
}

// seed posts every fixture as a create request. Fixed ids are not carried
// over; the server assigns its own.
func seed(ctx context.Context, logger *slog.Logger, baseURL string, set fixtures.Set) error {
	users := clients.NewUserClient(baseURL, nil)
	for _, f := range set.Users {
		u, err := users.Create(ctx, f.CreateInput)
		if err != nil {
			return fmt.Errorf("create user %q: %w", f.Email, err)
		}
		logger.Info("created user", "id", u.ID, "email", u.Email)
	}

	books := clients.NewBookClient(baseURL, nil)
	for _, f := range set.Books {
		b, err := books.Create(ctx, f.CreateInput)
		if err != nil {
			return fmt.Errorf("create book %q: %w", f.Title, err)
		}
		logger.Info("created book", "id", b.ID, "title", b.Title)
	}

	libraries := clients.NewLibraryClient(baseURL, nil)
	for _, f := range set.Libraries {
		l, err := libraries.Create(ctx, f.CreateInput)
		if err != nil {
			return fmt.Errorf("create library %q: %w", f.Name, err)
		}
		logger.Info("created library", "id", l.ID, "name", l.Name)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
