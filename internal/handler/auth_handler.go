package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"cinemadb-api/internal/service"

	"go.uber.org/zap"
)

type AuthHandler struct {
	svc *service.AuthService
	log *zap.Logger
}

func NewAuthHandler(s *service.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: s, log: log}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// @Summary Registro de usuario
// @Tags users
// @Accept json
// @Produce json
// @Param body body registerRequest true "email, password y role opcional"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /users [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error": "Please provide user name and password",
		})
		return
	}

	result, err := h.svc.Register(r.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, service.ErrEmailInUse) {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
			return
		}
		h.log.Error("error registrando usuario", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// el acknowledgment del driver va tal cual en la respuesta
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "New user account has been created",
		"result":  result,
	})
}

// @Summary Login
// @Tags users
// @Accept json
// @Produce json
// @Param body body loginRequest true "credenciales"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {string} string "credenciales inválidas"
// @Router /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"message": "Please provide email and password",
		})
		return
	}

	accessToken, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// 401 pelado, sin pista de si falló el email o el password
			h.log.Warn("login rechazado", zap.String("email", req.Email))
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		h.log.Error("error en login", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"accessToken": accessToken})
}

// @Summary Perfil propio
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]any
// @Router /user [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	// devuelve los claims tal cual se emitieron; pueden estar desactualizados
	// respecto de la base, por diseño
	writeJSON(w, http.StatusOK, map[string]any{"user": ClaimsFromContext(r.Context())})
}

// @Summary Listar usuarios (ADMIN)
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 403 {object} map[string]string
// @Router /users [get]
func (h *AuthHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		h.log.Error("error listando usuarios", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]any{"message": "Server error"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"users": users})
}
