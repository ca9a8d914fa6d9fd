package library

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (http.Handler, *MemoryRepository) {
	t.Helper()
	repo := NewMemoryRepository()
	r := chi.NewRouter()
	r.Route("/libraries", NewHandler(NewService(repo)).Routes)
	return r, repo
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHandler_CreateIgnoresTotalBooks(t *testing.T) {
	h, _ := newTestRouter(t)
	manager := uuid.NewString()

	w := do(t, h, http.MethodPost, "/libraries/",
		`{"name":"Central Library","location":"Downtown","manager":"`+manager+`","totalBooks":99}`)

	require.Equal(t, http.StatusCreated, w.Code)
	var got Library
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 0, got.TotalBooks)
	assert.Equal(t, manager, got.Manager)
}

func TestHandler_CreateValidation(t *testing.T) {
	h, repo := newTestRouter(t)

	w := do(t, h, http.MethodPost, "/libraries/", `{"name":"","location":"Downtown","manager":"not-a-uuid"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "manager")
	assert.Contains(t, w.Body.String(), "name")
	assert.Zero(t, repo.Len())
}

func TestHandler_ListWithFilters(t *testing.T) {
	h, repo := newTestRouter(t)
	ctx := t.Context()
	repo.Create(ctx, CreateInput{Name: "Central Library", Location: "Downtown", Manager: uuid.NewString()})
	repo.Create(ctx, CreateInput{Name: "Branch Library", Location: "Downtown", Manager: uuid.NewString()})

	w := do(t, h, http.MethodGet, "/libraries/?name=central&location=DOWN", "")
	require.Equal(t, http.StatusOK, w.Code)
	var got []Library
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Central Library", got[0].Name)

	w = do(t, h, http.MethodGet, "/libraries/", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 2)

	w = do(t, h, http.MethodGet, "/libraries/?totalBooks=-1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, h, http.MethodGet, "/libraries/?manager=nope", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateAndDelete(t *testing.T) {
	h, repo := newTestRouter(t)
	l := repo.Create(t.Context(), CreateInput{Name: "Central", Location: "Downtown", Manager: uuid.NewString()})

	w := do(t, h, http.MethodPatch, "/libraries/"+l.ID,
		`{"totalBooks":12,"id":"`+uuid.NewString()+`","createdAt":"2000-01-01T00:00:00Z"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var got Library
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, l.ID, got.ID)
	assert.True(t, l.CreatedAt.Equal(got.CreatedAt))
	assert.Equal(t, 12, got.TotalBooks)
	assert.Equal(t, "Central", got.Name)

	w = do(t, h, http.MethodPatch, "/libraries/"+l.ID, `{"totalBooks":-3}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, h, http.MethodDelete, "/libraries/"+l.ID, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"id":"`+l.ID+`"}`, w.Body.String())

	w = do(t, h, http.MethodDelete, "/libraries/"+l.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, h, http.MethodGet, "/libraries/"+l.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_InvalidID(t *testing.T) {
	h, _ := newTestRouter(t)

	w := do(t, h, http.MethodGet, "/libraries/not-a-uuid", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
