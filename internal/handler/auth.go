package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/blackash/todo-api/internal/middleware"
	"github.com/blackash/todo-api/internal/model"
	"github.com/blackash/todo-api/internal/service"
)

// AuthHandler handles registration, login, sign-out and profile requests.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleRegister handles POST /api/register/ requests.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse("invalid request body"))
		return
	}

	resp, err := h.service.Register(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailRequired),
			errors.Is(err, service.ErrUsernameRequired),
			errors.Is(err, service.ErrPasswordRequired),
			errors.Is(err, service.ErrEmailTaken),
			errors.Is(err, service.ErrUsernameTaken):
			writeJSON(w, http.StatusBadRequest, messageResponse(err.Error()))
		default:
			serverError(w, "register", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleLogin handles POST /api/login/ requests.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse("invalid request body"))
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials),
			errors.Is(err, service.ErrUserNotFound),
			errors.Is(err, service.ErrInvalidCredentials):
			writeJSON(w, http.StatusBadRequest, messageResponse(err.Error()))
		default:
			serverError(w, "login", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleSignout handles POST /api/signout requests. Session tokens travel in
// the Authorization header, so there is no server-side credential to clear;
// the client discards its token.
func (h *AuthHandler) HandleSignout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Signed out successfully",
	})
}

// HandleUsername handles GET /api/username/ requests.
func (h *AuthHandler) HandleUsername(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, messageResponse("unauthorized"))
		return
	}

	username, err := h.service.Username(r.Context(), claims.UserID)
	if err != nil {
		serverError(w, "username", err)
		return
	}

	writeJSON(w, http.StatusOK, username)
}

// HandleProfile handles GET /api/user/profile/ requests.
func (h *AuthHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, messageResponse("unauthorized"))
		return
	}

	profile, err := h.service.Profile(r.Context(), claims.UserID)
	if err != nil {
		serverError(w, "profile", err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(msg))
}

func messageResponse(msg string) map[string]string {
	return map[string]string{"message": msg}
}

// serverError hides infrastructure failures behind a generic message; the
// detail only goes to the server log.
func serverError(w http.ResponseWriter, op string, err error) {
	slog.Error("handler error", "op", op, "error", err)
	writeJSON(w, http.StatusInternalServerError, messageResponse("Server error"))
}
