package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/agroassist/engine/internal/api/types"
	"github.com/agroassist/engine/internal/models"
	"github.com/agroassist/engine/internal/services"
)

// AuthPayload is the data object returned by signup and login.
type AuthPayload struct {
	User  models.PublicUser `json:"user"`
	Token string            `json:"token"`
}

type AuthHandler struct {
	auth services.AuthService
}

func NewAuthHandler(auth services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req types.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeErrorStr(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, token, err := h.auth.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, types.APIResponse{
		Success: true,
		Data:    AuthPayload{User: user, Token: token},
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeErrorStr(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, types.APIResponse{
		Success: true,
		Data:    AuthPayload{User: user, Token: token},
	})
}

// Logout exists for API symmetry: there is no server-held session to
// invalidate, so it always succeeds. Clients clear their own state.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true})
}
