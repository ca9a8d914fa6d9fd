// internal/book/domain.go
package book

import (
	"time"

	"elibrary/internal/store"
)

// Genre is one of the catalog's fixed genres.
type Genre string

const (
	GenreFiction    Genre = "fiction"
	GenreNonFiction Genre = "non-fiction"
	GenreMystery    Genre = "mystery"
	GenreRomance    Genre = "romance"
	GenreSciFi      Genre = "sci-fi"
	GenreFantasy    Genre = "fantasy"
	GenreBiography  Genre = "biography"
	GenreHistory    Genre = "history"
	GenreSelfHelp   Genre = "self-help"
	GenreTechnology Genre = "technology"
)

// Genres lists every valid genre.
var Genres = []Genre{
	GenreFiction, GenreNonFiction, GenreMystery, GenreRomance, GenreSciFi,
	GenreFantasy, GenreBiography, GenreHistory, GenreSelfHelp, GenreTechnology,
}

// Book represents a title held in the catalog.
type Book struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	ISBN          string    `json:"isbn"`
	Genre         Genre     `json:"genre"`
	PublishedYear int       `json:"publishedYear"`
	Quantity      int       `json:"quantity"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Meta exposes the store-owned identity fields.
func (b Book) Meta() store.Meta {
	return store.Meta{ID: b.ID, CreatedAt: b.CreatedAt}
}

// WithMeta returns a copy of b carrying m's id and creation time.
func (b Book) WithMeta(m store.Meta) Book {
	b.ID = m.ID
	b.CreatedAt = m.CreatedAt
	return b
}

// CreateInput carries the fields of a new catalog entry.
type CreateInput struct {
	Title         string `json:"title" yaml:"title" validate:"required,min=1"`
	Author        string `json:"author" yaml:"author" validate:"required,min=1"`
	ISBN          string `json:"isbn" yaml:"isbn"`
	Genre         Genre  `json:"genre" yaml:"genre" validate:"required,oneof=fiction non-fiction mystery romance sci-fi fantasy biography history self-help technology"`
	PublishedYear int    `json:"publishedYear" yaml:"publishedYear" validate:"gte=1000,notfuture"`
	Quantity      int    `json:"quantity" yaml:"quantity" validate:"gte=0"`
}

// Build assembles a Book from the input and the store-assigned identity.
func (in CreateInput) Build(m store.Meta) Book {
	return Book{
		ID:            m.ID,
		Title:         in.Title,
		Author:        in.Author,
		ISBN:          in.ISBN,
		Genre:         in.Genre,
		PublishedYear: in.PublishedYear,
		Quantity:      in.Quantity,
		CreatedAt:     m.CreatedAt,
	}
}

// Patch is a sparse update; nil fields are left untouched.
type Patch struct {
	Title         *string `json:"title,omitempty" validate:"omitempty,min=1"`
	Author        *string `json:"author,omitempty" validate:"omitempty,min=1"`
	ISBN          *string `json:"isbn,omitempty"`
	Genre         *Genre  `json:"genre,omitempty" validate:"omitempty,oneof=fiction non-fiction mystery romance sci-fi fantasy biography history self-help technology"`
	PublishedYear *int    `json:"publishedYear,omitempty" validate:"omitempty,gte=1000,notfuture"`
	Quantity      *int    `json:"quantity,omitempty" validate:"omitempty,gte=0"`
}

// Apply returns a copy of b with every non-nil patch field written over it.
func (p Patch) Apply(b Book) Book {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.ISBN != nil {
		b.ISBN = *p.ISBN
	}
	if p.Genre != nil {
		b.Genre = *p.Genre
	}
	if p.PublishedYear != nil {
		b.PublishedYear = *p.PublishedYear
	}
	if p.Quantity != nil {
		b.Quantity = *p.Quantity
	}
	return b
}
