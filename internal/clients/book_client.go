// internal/clients/book_client.go
package clients

import (
	"context"
	"net/http"
	"net/url"

	"elibrary/internal/book"
)

type BookClient struct {
	r resource[book.Book, book.CreateInput, book.Patch]
}

func NewBookClient(baseURL string, hc *http.Client) *BookClient {
	return &BookClient{r: resource[book.Book, book.CreateInput, book.Patch]{newTransport(baseURL, hc), "/books"}}
}

func (c *BookClient) Create(ctx context.Context, in book.CreateInput) (book.Book, error) {
	return c.r.create(ctx, in)
}

func (c *BookClient) Get(ctx context.Context, id string) (book.Book, bool, error) {
	return c.r.get(ctx, id)
}

func (c *BookClient) List(ctx context.Context) ([]book.Book, error) {
	return c.r.list(ctx, nil)
}

func (c *BookClient) ListByGenre(ctx context.Context, genre string) ([]book.Book, error) {
	return c.r.list(ctx, url.Values{"genre": {genre}})
}

func (c *BookClient) Update(ctx context.Context, id string, patch book.Patch) (book.Book, bool, error) {
	return c.r.update(ctx, id, patch)
}

func (c *BookClient) Delete(ctx context.Context, id string) (bool, error) {
	return c.r.delete(ctx, id)
}
