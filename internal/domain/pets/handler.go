package pets

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"pet-cry-monitor/internal/middleware"
	"pet-cry-monitor/internal/vocab"

	"github.com/go-chi/chi/v5"
)

const maxUploadBytes = 16 << 20 // 16MB por foto alcanza y sobra

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc))
		pr.Get("/", listPetsHandler(svc))

		pr.Get("/{petID}", getPetHandler(svc))
		pr.Patch("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))

		pr.Post("/{petID}/profile-image", uploadProfileImageHandler(svc))

		// Lectura pública: si no hay foto se sirve el asset default.
		pr.Get("/{petID}/profile-image", serveProfileImageHandler(svc))
	})
}

type createPetRequest struct {
	Name       string `json:"name"`
	Gender     string `json:"gender"`  // cualquiera de los dos léxicos
	Age        int    `json:"age"`
	Species    string `json:"species"` // cualquiera de los dos léxicos
	SubSpecies string `json:"sub_species"`
}

type updatePetRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Name       *string `json:"name"`
	Gender     *string `json:"gender"`
	Age        *int    `json:"age"`
	Species    *string `json:"species"`
	SubSpecies *string `json:"sub_species"`
	PhotoID    *string `json:"photo_id"`
}

type petResponse struct {
	ID          int64   `json:"id"`
	OwnerUserID string  `json:"owner_user_id"`
	Name        string  `json:"name"`
	Gender      string  `json:"gender"`
	Age         int     `json:"age"`
	Species     string  `json:"species"`
	SubSpecies  string  `json:"sub_species"`
	PhotoID     *string `json:"photo_id,omitempty"`
}

func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Name:       req.Name,
			Gender:     req.Gender,
			Age:        req.Age,
			Species:    req.Species,
			SubSpecies: req.SubSpecies,
		})
		if err != nil {
			writePetError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByOwner(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		petID, ok := parsePetID(w, r)
		if !ok {
			return
		}

		p, err := svc.GetByID(r.Context(), petID, claims.UserID)
		if err != nil {
			writePetError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		petID, ok := parsePetID(w, r)
		if !ok {
			return
		}

		var req updatePetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Update(r.Context(), petID, claims.UserID, UpdateInput{
			Name:       req.Name,
			Gender:     req.Gender,
			Age:        req.Age,
			Species:    req.Species,
			SubSpecies: req.SubSpecies,
			PhotoID:    req.PhotoID,
		})
		if err != nil {
			writePetError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		petID, ok := parsePetID(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), petID, claims.UserID); err != nil {
			writePetError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func uploadProfileImageHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		petID, ok := parsePetID(w, r)
		if !ok {
			return
		}

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			http.Error(w, "invalid multipart form", http.StatusBadRequest)
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "file field required", http.StatusBadRequest)
			return
		}
		defer file.Close()

		// Un byte de más para detectar el exceso sin truncar en silencio.
		data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if len(data) > maxUploadBytes {
			http.Error(w, "image file too large", http.StatusRequestEntityTooLarge)
			return
		}

		if err := svc.UploadProfileImage(r.Context(), petID, claims.UserID, header.Filename, data); err != nil {
			writePetError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	}
}

func serveProfileImageHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := parsePetID(w, r)
		if !ok {
			return
		}
		http.ServeFile(w, r, svc.ProfileImagePath(petID))
	}
}

func parsePetID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "petID"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "petID must be a positive integer", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// La respuesta siempre sale en el léxico display (la app muestra coreano);
// lo persistido sigue siendo canónico.
func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:          p.ID,
		OwnerUserID: p.OwnerUserID,
		Name:        p.Name,
		Gender:      vocab.LocalizeGender(p.Gender),
		Age:         p.Age,
		Species:     vocab.LocalizeSpecies(p.Species),
		SubSpecies:  p.SubSpecies,
		PhotoID:     p.PhotoID,
	}
}

func writePetError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrWrongFileType):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeJSON está duplicado a propósito en los handlers de cada módulo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
