// internal/clients/client.go
package clients

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"elibrary/internal/httpx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// APIError is a non-2xx, non-404 response from the server.
type APIError struct {
	Status  int
	Code    string
	Message string
	Details []httpx.ErrorDetail
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("unexpected status code: %d", e.Status)
	}
	return fmt.Sprintf("%d %s: %s", e.Status, e.Code, e.Message)
}

type transport struct {
	baseURL string
	http    *http.Client
}

func newTransport(baseURL string, hc *http.Client) transport {
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	return transport{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

// do sends in as the JSON body and decodes a 2xx response into out. Any
// other status, 404 included, comes back as an *APIError.
func (t transport) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	target := t.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := t.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var envelope httpx.ErrorResponse
		if json.NewDecoder(resp.Body).Decode(&envelope) == nil {
			apiErr.Code = envelope.Error.Code
			apiErr.Message = envelope.Error.Message
			apiErr.Details = envelope.Error.Details
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// asLookup turns a 404 into found=false. Only lookups by id may treat a 404 as
// absence; for create and list it means the endpoint itself is missing.
func asLookup(err error) (found bool, _ error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
		return false, nil
	}
	return err == nil, err
}

// resource is the CRUD surface shared by every collection.
type resource[E, C, P any] struct {
	transport
	path string
}

func (r resource[E, C, P]) create(ctx context.Context, in C) (E, error) {
	var out E
	if err := r.do(ctx, http.MethodPost, r.path, nil, in, &out); err != nil {
		var zero E
		return zero, err
	}
	return out, nil
}

func (r resource[E, C, P]) get(ctx context.Context, id string) (E, bool, error) {
	var out E
	found, err := asLookup(r.do(ctx, http.MethodGet, r.path+"/"+url.PathEscape(id), nil, nil, &out))
	return out, found, err
}

func (r resource[E, C, P]) list(ctx context.Context, query url.Values) ([]E, error) {
	out := []E{}
	if err := r.do(ctx, http.MethodGet, r.path, query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r resource[E, C, P]) update(ctx context.Context, id string, patch P) (E, bool, error) {
	var out E
	found, err := asLookup(r.do(ctx, http.MethodPatch, r.path+"/"+url.PathEscape(id), nil, patch, &out))
	return out, found, err
}

func (r resource[E, C, P]) delete(ctx context.Context, id string) (bool, error) {
	var ack httpx.DeleteResponse
	found, err := asLookup(r.do(ctx, http.MethodDelete, r.path+"/"+url.PathEscape(id), nil, nil, &ack))
	return found && ack.Success, err
}
