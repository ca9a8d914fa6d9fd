// internal/user/handler.go
package user

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

// Routes mounts the user endpoints on r.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.handleCreateUser)
	r.Get("/", h.handleListUsers)
	r.Get("/{id}", h.handleGetUser)
	r.Patch("/{id}", h.handleUpdateUser)
	r.Delete("/{id}", h.handleDeleteUser)
}

func (h *Handler) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateInput
	if !httpx.DecodeValid(w, r, &req) {
		return
	}

	httpx.JSON(w, http.StatusCreated, h.service.CreateUser(r.Context(), req))
}

func (h *Handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.ListUsers(r.Context()))
}

func (h *Handler) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathID(w, r)
	if !ok {
		return
	}

	u, found := h.service.GetUser(r.Context(), id)
	if !found {
		httpx.NotFound(w, r, "user")
		return
	}
	httpx.JSON(w, http.StatusOK, u)
}

func (h *Handler) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathID(w, r)
	if !ok {
		return
	}
	var req Patch
	if !httpx.DecodeValid(w, r, &req) {
		return
	}

	u, found := h.service.UpdateUser(r.Context(), id, req)
	if !found {
		httpx.NotFound(w, r, "user")
		return
	}
	httpx.JSON(w, http.StatusOK, u)
}

func (h *Handler) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathID(w, r)
	if !ok {
		return
	}

	if !h.service.DeleteUser(r.Context(), id) {
		httpx.NotFound(w, r, "user")
		return
	}
	httpx.Deleted(w, id)
}
