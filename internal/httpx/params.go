package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// PathID returns the {id} URL parameter, writing a 400 and returning false
// when it is not a UUID.
func PathID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		Error(w, r, http.StatusBadRequest, "INVALID_ID", "invalid ID: must be a UUID", nil)
		return "", false
	}
	return id, true
}
