package users

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"pet-cry-monitor/internal/middleware"
	"pet-cry-monitor/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registra las rutas de cuentas. issuer puede ser nil
// (modo dev): signup/login no devuelven token.
func RegisterRoutes(r chi.Router, svc *Service, issuer auth.Issuer) {
	r.Route("/users", func(ur chi.Router) {
		ur.Post("/", createUserHandler(svc, issuer))
		ur.Post("/login", loginHandler(svc, issuer))

		ur.Get("/me", getMeHandler(svc))
		ur.Patch("/me", updateMeHandler(svc))
		ur.Delete("/me", deleteMeHandler(svc))

		// Perfil público de otro usuario (requiere estar autenticado).
		ur.Get("/{userID}", getUserHandler(svc))
	})
}

type createUserRequest struct {
	UID      string  `json:"uid"`
	Email    string  `json:"email"`
	Nickname string  `json:"nickname"`
	PhotoID  *string `json:"photo_id"`
}

type loginRequest struct {
	Email string `json:"email"`
	UID   string `json:"uid"`
}

type updateUserRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Nickname *string `json:"nickname"`
	PhotoID  *string `json:"photo_id"`
}

type userResponse struct {
	UID      string  `json:"uid"`
	Email    string  `json:"email"`
	Nickname string  `json:"nickname"`
	PhotoID  *string `json:"photo_id,omitempty"`
}

type authedUserResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token,omitempty"`
}

func createUserHandler(svc *Service, issuer auth.Issuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		u, err := svc.Create(r.Context(), CreateInput{
			UID:      req.UID,
			Email:    req.Email,
			Nickname: req.Nickname,
			PhotoID:  req.PhotoID,
		})
		if err != nil {
			writeUserError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, authedUserResponse{
			User:  toUserResponse(u),
			Token: issueToken(r, issuer, u.UID),
		})
	}
}

func loginHandler(svc *Service, issuer auth.Issuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		u, err := svc.Login(r.Context(), req.Email, req.UID)
		if err != nil {
			writeUserError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, authedUserResponse{
			User:  toUserResponse(u),
			Token: issueToken(r, issuer, u.UID),
		})
	}
}

func getMeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		u, err := svc.GetByUID(r.Context(), claims.UserID)
		if err != nil {
			writeUserError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toUserResponse(u))
	}
}

func updateMeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req updateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		u, err := svc.Update(r.Context(), claims.UserID, UpdateInput{
			Nickname: req.Nickname,
			PhotoID:  req.PhotoID,
		})
		if err != nil {
			writeUserError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toUserResponse(u))
	}
}

func deleteMeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), claims.UserID); err != nil {
			writeUserError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func getUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		u, err := svc.GetByUID(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			writeUserError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toUserResponse(u))
	}
}

func issueToken(r *http.Request, issuer auth.Issuer, uid string) string {
	if issuer == nil {
		return ""
	}
	tok, err := issuer.Issue(r.Context(), uid)
	if err != nil {
		// El usuario ya quedó creado/validado; sin token tendrá que
		// loguearse de nuevo.
		return ""
	}
	return tok
}

func toUserResponse(u User) userResponse {
	return userResponse{
		UID:      u.UID,
		Email:    u.Email,
		Nickname: u.Nickname,
		PhotoID:  u.PhotoID,
	}
}

func writeUserError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrDuplicateUID), errors.Is(err, ErrDuplicateEmail):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrUnauthorized):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeJSON está duplicado a propósito en los handlers de cada módulo;
// si se repite en más lugares, recién ahí vale extraer un helper común.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
