// internal/library/handler.go
package library

import (
	"net/http"
	"net/url"
	"strconv"

	"elibrary/internal/httpx"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Routes mounts the library endpoints on r.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.handleCreateLibrary)
	r.Get("/", h.handleListLibraries)
	r.Get("/{id}", h.handleGetLibrary)
	r.Patch("/{id}", h.handleUpdateLibrary)
	r.Delete("/{id}", h.handleDeleteLibrary)
}

func (h *Handler) handleCreateLibrary(w http.ResponseWriter, r *http.Request) {
	var req CreateInput
	if !httpx.DecodeValid(w, r, &req) {
		return
	}

	httpx.JSON(w, http.StatusCreated, h.service.CreateLibrary(r.Context(), req))
}

// handleListLibraries filters when any filter key is present in the query.
func (h *Handler) handleListLibraries(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if len(query) == 0 {
		httpx.JSON(w, http.StatusOK, h.service.ListLibraries(r.Context()))
		return
	}

	filters, details := parseFilters(query)
	if len(details) > 0 {
		httpx.Error(w, r, http.StatusBadRequest, "INVALID_QUERY", "invalid filter parameters", details)
		return
	}
	httpx.JSON(w, http.StatusOK, h.service.ListLibrariesByFilters(r.Context(), filters))
}

func parseFilters(query url.Values) (Filters, []httpx.ErrorDetail) {
	var (
		f       Filters
		details []httpx.ErrorDetail
	)
	if query.Has("name") {
		v := query.Get("name")
		f.Name = &v
	}
	if query.Has("location") {
		v := query.Get("location")
		f.Location = &v
	}
	if query.Has("manager") {
		v := query.Get("manager")
		if _, err := uuid.Parse(v); err != nil {
			details = append(details, httpx.ErrorDetail{Field: "manager", Message: "manager must be a UUID"})
		}
		f.Manager = &v
	}
	if query.Has("totalBooks") {
		n, err := strconv.Atoi(query.Get("totalBooks"))
		if err != nil || n < 0 {
			details = append(details, httpx.ErrorDetail{Field: "totalBooks", Message: "totalBooks must be a non-negative integer"})
		}
		f.TotalBooks = &n
	}
	return f, details
}

func (h *Handler) handleGetLibrary(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathID(w, r)
	if !ok {
		return
	}

	l, found := h.service.GetLibrary(r.Context(), id)
	if !found {
		httpx.NotFound(w, r, "library")
		return
	}
	httpx.JSON(w, http.StatusOK, l)
}

func (h *Handler) handleUpdateLibrary(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathID(w, r)
	if !ok {
		return
	}
	var req Patch
	if !httpx.DecodeValid(w, r, &req) {
		return
	}

	l, found := h.service.UpdateLibrary(r.Context(), id, req)
	if !found {
		httpx.NotFound(w, r, "library")
		return
	}
	httpx.JSON(w, http.StatusOK, l)
}

func (h *Handler) handleDeleteLibrary(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathID(w, r)
	if !ok {
		return
	}

	if !h.service.DeleteLibrary(r.Context(), id) {
		httpx.NotFound(w, r, "library")
		return
	}
	httpx.Deleted(w, id)
}
