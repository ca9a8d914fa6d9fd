// Package fixtures reads YAML descriptions of users, books and libraries used
// to seed a fresh server.
package fixtures

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"elibrary/internal/book"
	"elibrary/internal/httpx"
	"elibrary/internal/library"
	"elibrary/internal/store"
	"elibrary/internal/user"
)

// Set is the parsed content of a fixture file.
type Set struct {
	Users     []User    `yaml:"users"`
	Books     []Book    `yaml:"books"`
	Libraries []Library `yaml:"libraries"`
}

// Fixed carries optional identity fields. Missing values are generated when
// the fixture is turned into a seed entity.
type Fixed struct {
	ID        string    `yaml:"id"`
	CreatedAt time.Time `yaml:"createdAt"`
}

type User struct {
	Fixed            `yaml:",inline"`
	user.CreateInput `yaml:",inline"`
}

type Book struct {
	Fixed            `yaml:",inline"`
	book.CreateInput `yaml:",inline"`
}

type Library struct {
	Fixed               `yaml:",inline"`
	library.CreateInput `yaml:",inline"`
}

// Load parses and validates the fixture file at path.
func Load(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return Set{}, fmt.Errorf("open fixtures: %w", err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return Set{}, err
	}
	if err := s.Validate(); err != nil {
		return Set{}, fmt.Errorf("invalid fixtures in %s: %w", path, err)
	}
	return s, nil
}

// Decode parses fixtures from r without validating them. An empty document
// yields an empty Set.
func Decode(r io.Reader) (Set, error) {
	var s Set
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Set{}, fmt.Errorf("decode fixtures: %w", err)
	}
	return s, nil
}

// Len is the total number of fixtures across all sections.
func (s Set) Len() int {
	return len(s.Users) + len(s.Books) + len(s.Libraries)
}

// Validate applies the same rules a create request goes through to every
// fixture, and requires fixed ids to be unique UUIDs within their section.
// All failures are returned joined.
func (s Set) Validate() error {
	var errs []error
	users := newSectionCheck("users")
	for i, u := range s.Users {
		errs = append(errs, users.check(i, u.Fixed, u.CreateInput)...)
	}
	books := newSectionCheck("books")
	for i, b := range s.Books {
		errs = append(errs, books.check(i, b.Fixed, b.CreateInput)...)
	}
	libraries := newSectionCheck("libraries")
	for i, l := range s.Libraries {
		errs = append(errs, libraries.check(i, l.Fixed, l.CreateInput)...)
	}
	return errors.Join(errs...)
}

type sectionCheck struct {
	name string
	ids  map[string]int
}

func newSectionCheck(name string) sectionCheck {
	return sectionCheck{name: name, ids: make(map[string]int)}
}

func (c sectionCheck) check(i int, f Fixed, input any) []error {
	var errs []error
	if f.ID != "" {
		if _, err := uuid.Parse(f.ID); err != nil {
			errs = append(errs, fmt.Errorf("%s[%d]: id %q must be a UUID", c.name, i, f.ID))
		} else if first, dup := c.ids[f.ID]; dup {
			errs = append(errs, fmt.Errorf("%s[%d]: id %q already used by %s[%d]", c.name, i, f.ID, c.name, first))
		} else {
			c.ids[f.ID] = i
		}
	}
	for _, d := range httpx.Validate(input) {
		errs = append(errs, fmt.Errorf("%s[%d]: %s", c.name, i, d.Message))
	}
	return errs
}

func (f Fixed) meta(now time.Time) store.Meta {
	m := store.Meta{ID: f.ID, CreatedAt: f.CreatedAt}
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	return m
}

// SeedUsers builds the stored form of every user fixture.
func (s Set) SeedUsers(now time.Time) []user.User {
	out := make([]user.User, 0, len(s.Users))
	for _, u := range s.Users {
		out = append(out, u.Build(u.meta(now)))
	}
	return out
}

// SeedBooks builds the stored form of every book fixture.
func (s Set) SeedBooks(now time.Time) []book.Book {
	out := make([]book.Book, 0, len(s.Books))
	for _, b := range s.Books {
		out = append(out, b.Build(b.meta(now)))
	}
	return out
}

// SeedLibraries builds the stored form of every library fixture. Fixtures
// start with an empty holding, as created libraries do.
func (s Set) SeedLibraries(now time.Time) []library.Library {
	out := make([]library.Library, 0, len(s.Libraries))
	for _, l := range s.Libraries {
		out = append(out, l.Build(l.meta(now)))
	}
	return out
}
