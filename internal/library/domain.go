// internal/library/domain.go
package library

import (
	"strings"
	"time"

	"elibrary/internal/store"
)

// Library represents a library branch.
type Library struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Location   string    `json:"location"`
	Manager    string    `json:"manager"`
	TotalBooks int       `json:"totalBooks"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Meta exposes the store-owned identity fields.
func (l Library) Meta() store.Meta {
	return store.Meta{ID: l.ID, CreatedAt: l.CreatedAt}
}

// WithMeta returns a copy of l carrying m's id and creation time.
func (l Library) WithMeta(m store.Meta) Library {
	l.ID = m.ID
	l.CreatedAt = m.CreatedAt
	return l
}

// CreateInput carries the fields of a new branch. TotalBooks is not
// accepted at creation.
type CreateInput struct {
	Name     string `json:"name" yaml:"name" validate:"required,min=1"`
	Location string `json:"location" yaml:"location" validate:"required,min=1"`
	Manager  string `json:"manager" yaml:"manager" validate:"required,uuid"`
}

// Build assembles a Library with an empty holding.
func (in CreateInput) Build(m store.Meta) Library {
	return Library{
		ID:         m.ID,
		Name:       in.Name,
		Location:   in.Location,
		Manager:    in.Manager,
		TotalBooks: 0,
		CreatedAt:  m.CreatedAt,
	}
}

// Patch is a sparse update; nil fields are left untouched.
type Patch struct {
	Name       *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Location   *string `json:"location,omitempty" validate:"omitempty,min=1"`
	Manager    *string `json:"manager,omitempty" validate:"omitempty,uuid"`
	TotalBooks *int    `json:"totalBooks,omitempty" validate:"omitempty,gte=0"`
}

// Apply returns a copy of l with every non-nil patch field written over it.
func (p Patch) Apply(l Library) Library {
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.Location != nil {
		l.Location = *p.Location
	}
	if p.Manager != nil {
		l.Manager = *p.Manager
	}
	if p.TotalBooks != nil {
		l.TotalBooks = *p.TotalBooks
	}
	return l
}

// Filters is a sparse set of predicates; nil fields impose no constraint.
type Filters struct {
	Name       *string
	Location   *string
	Manager    *string
	TotalBooks *int
}

// IsEmpty reports whether no predicate is set.
func (f Filters) IsEmpty() bool {
	return f.Name == nil && f.Location == nil && f.Manager == nil && f.TotalBooks == nil
}

// Match reports whether l satisfies every supplied predicate. Name and
// location match case-insensitive substrings, manager and totalBooks match
// exactly.
func (f Filters) Match(l Library) bool {
	return f.Matcher()(l)
}

// Matcher returns Match as a predicate with the substring needles lowered
// once, for scanning a whole collection.
func (f Filters) Matcher() func(Library) bool {
	name := lowerPtr(f.Name)
	location := lowerPtr(f.Location)
	return func(l Library) bool {
		if name != nil && !strings.Contains(strings.ToLower(l.Name), *name) {
			return false
		}
		if location != nil && !strings.Contains(strings.ToLower(l.Location), *location) {
			return false
		}
		if f.Manager != nil && l.Manager != *f.Manager {
			return false
		}
		if f.TotalBooks != nil && l.TotalBooks != *f.TotalBooks {
			return false
		}
		return true
	}
}

func lowerPtr(s *string) *string {
	if s == nil {
		return nil
	}
	lowered := strings.ToLower(*s)
	return &lowered
}
