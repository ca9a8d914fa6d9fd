// internal/book/handler.go
package book

import (
	"net/http"

	"elibrary/internal/httpx"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Routes mounts the book endpoints on r.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.handleCreateBook)
	r.Get("/", h.handleListBooks)
	r.Get("/{id}", h.handleGetBook)
	r.Patch("/{id}", h.handleUpdateBook)
	r.Delete("/{id}", h.handleDeleteBook)
}

func (h *Handler) handleCreateBook(w http.ResponseWriter, r *http.Request) {
	var req CreateInput
	if !httpx.DecodeValid(w, r, &req) {
		return
	}

	httpx.JSON(w, http.StatusCreated, h.service.CreateBook(r.Context(), req))
}

// handleListBooks lists the whole catalog, or one genre when ?genre= is set.
func (h *Handler) handleListBooks(w http.ResponseWriter, r *http.Request) {
	if genre := r.URL.Query().Get("genre"); genre != "" {
		httpx.JSON(w, http.StatusOK, h.service.ListBooksByGenre(r.Context(), genre))
		return
	}
	httpx.JSON(w, http.StatusOK, h.service.ListBooks(r.Context()))
}

func (h *Handler) handleGetBook(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathID(w, r)
	if !ok {
		return
	}

	b, found := h.service.GetBook(r.Context(), id)
	if !found {
		httpx.NotFound(w, r, "book")
		return
	}
	httpx.JSON(w, http.StatusOK, b)
}

func (h *Handler) handleUpdateBook(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathID(w, r)
	if !ok {
		return
	}
	var req Patch
	if !httpx.DecodeValid(w, r, &req) {
		return
	}

	b, found := h.service.UpdateBook(r.Context(), id, req)
	if !found {
		httpx.NotFound(w, r, "book")
		return
	}
	httpx.JSON(w, http.StatusOK, b)
}

func (h *Handler) handleDeleteBook(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathID(w, r)
	if !ok {
		return
	}

	if !h.service.DeleteBook(r.Context(), id) {
		httpx.NotFound(w, r, "book")
		return
	}
	httpx.Deleted(w, id)
}
