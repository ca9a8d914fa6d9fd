// internal/clients/user_client.go
package clients

import (
	"context"
	"net/http"

	"elibrary/internal/user"
)

type UserClient struct {
	r resource[user.User, user.CreateInput, user.Patch]
}

// NewUserClient talks to the /users collection at baseURL. A nil hc uses a
// client with a 10s timeout.
func NewUserClient(baseURL string, hc *http.Client) *UserClient {
	return &UserClient{r: resource[user.User, user.CreateInput, user.Patch]{newTransport(baseURL, hc), "/users"}}
}

func (c *UserClient) Create(ctx context.Context, in user.CreateInput) (user.User, error) {
	return c.r.create(ctx, in)
}

func (c *UserClient) Get(ctx context.Context, id string) (user.User, bool, error) {
	return c.r.get(ctx, id)
}

func (c *UserClient) List(ctx context.Context) ([]user.User, error) {
	return c.r.list(ctx, nil)
}

func (c *UserClient) Update(ctx context.Context, id string, patch user.Patch) (user.User, bool, error) {
	return c.r.update(ctx, id, patch)
}

func (c *UserClient) Delete(ctx context.Context, id string) (bool, error) {
	return c.r.delete(ctx, id)
}
