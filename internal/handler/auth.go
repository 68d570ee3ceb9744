package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ivmart/tracker-service/internal/apperr"
)

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles user registration
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, apperr.Validation("invalid request body"))
		return
	}
	if req.Username == "" || req.Password == "" {
		h.respondError(w, apperr.Validation("username and password are required"))
		return
	}

	result, err := h.auth.Register(r.Context(), req.Username, req.Password, req.Email)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, result)
}

// Login handles user authentication
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, apperr.Validation("invalid request body"))
		return
	}

	result, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, result)
}
