// internal/clients/library_client.go
package clients

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"elibrary/internal/library"
)

type LibraryClient struct {
	r resource[library.Library, library.CreateInput, library.Patch]
}

func NewLibraryClient(baseURL string, hc *http.Client) *LibraryClient {
	return &LibraryClient{r: resource[library.Library, library.CreateInput, library.Patch]{newTransport(baseURL, hc), "/libraries"}}
}

func (c *LibraryClient) Create(ctx context.Context, in library.CreateInput) (library.Library, error) {
	return c.r.create(ctx, in)
}

func (c *LibraryClient) Get(ctx context.Context, id string) (library.Library, bool, error) {
	return c.r.get(ctx, id)
}

func (c *LibraryClient) List(ctx context.Context) ([]library.Library, error) {
	return c.r.list(ctx, nil)
}

// ListByFilters sends only the predicates that are set; an empty Filters
// lists everything.
func (c *LibraryClient) ListByFilters(ctx context.Context, f library.Filters) ([]library.Library, error) {
	q := url.Values{}
	if f.Name != nil {
		q.Set("name", *f.Name)
	}
	if f.Location != nil {
		q.Set("location", *f.Location)
	}
	if f.Manager != nil {
		q.Set("manager", *f.Manager)
	}
	if f.TotalBooks != nil {
		q.Set("totalBooks", strconv.Itoa(*f.TotalBooks))
	}
	return c.r.list(ctx, q)
}

func (c *LibraryClient) Update(ctx context.Context, id string, patch library.Patch) (library.Library, bool, error) {
	return c.r.update(ctx, id, patch)
}

func (c *LibraryClient) Delete(ctx context.Context, id string) (bool, error) {
	return c.r.delete(ctx, id)
}
