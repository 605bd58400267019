package cries

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-cry-monitor/internal/domain/pets"
	"pet-cry-monitor/internal/middleware"
	"pet-cry-monitor/internal/vocab"

	"github.com/go-chi/chi/v5"
)

const maxWavBytes = 32 << 20

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets/{petID}/cries", func(cr chi.Router) {
		cr.Post("/", createCryHandler(svc))
		cr.Get("/", listCriesHandler(svc))

		cr.Get("/state", listCriesByStateHandler(svc))
		cr.Get("/range", listCriesByRangeHandler(svc))

		cr.Get("/inspect", inspectHandler(svc))
		cr.Post("/predict", predictHandler(svc))
	})

	r.Route("/cries/{cryID}", func(cr chi.Router) {
		cr.Get("/", getCryHandler(svc))
		cr.Patch("/", updateCryHandler(svc))
		cr.Delete("/", deleteCryHandler(svc))
	})
}

// createCryRequest es el cuerpo para registrar un llanto a mano.
// state e intensity se aceptan en cualquiera de los dos léxicos.
type createCryRequest struct {
	Time       string             `json:"time"` // RFC3339
	State      string             `json:"state"`
	AudioID    string             `json:"audio_id"`
	PredictMap map[string]float64 `json:"predict_map"`
	Intensity  string             `json:"intensity"`
	Duration   *float64           `json:"duration"`
}

type updateCryRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Time       *string            `json:"time"`
	State      *string            `json:"state"`
	AudioID    *string            `json:"audio_id"`
	PredictMap map[string]float64 `json:"predict_map"`
	Intensity  *string            `json:"intensity"`
	Duration   *float64           `json:"duration"`
}

type cryResponse struct {
	ID         int64              `json:"id"`
	PetID      int64              `json:"pet_id"`
	Time       time.Time          `json:"time"`
	State      string             `json:"state"`
	AudioID    string             `json:"audio_id"`
	PredictMap map[string]float64 `json:"predict_map"`
	Intensity  string             `json:"intensity"`
	Duration   float64            `json:"duration"`
}

type inspectResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Result  *Report `json:"result"`
}

// createCryHandler godoc
// @Summary Registrar llanto
// @Description Crea un llanto para la mascota. El estado debe pertenecer al vocabulario de la especie; se acepta en inglés o coreano y se persiste canónico.
// @Tags cries
// @Accept json
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Param payload body createCryRequest true "Datos del llanto; time en RFC3339"
// @Success 201 {object} cryResponse
// @Failure 400 {string} string "invalid json / estado fuera del vocabulario de la especie"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/cries [post]
func createCryHandler(svc *Service) http.HandlerFunc {
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

		var req createCryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		t, err := time.Parse(time.RFC3339, req.Time)
		if err != nil {
			http.Error(w, "time must be RFC3339", http.StatusBadRequest)
			return
		}

		c, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			PetID:      petID,
			Time:       t,
			State:      req.State,
			AudioID:    req.AudioID,
			PredictMap: req.PredictMap,
			Intensity:  req.Intensity,
			Duration:   req.Duration,
		})
		if err != nil {
			writeCryError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toCryResponse(c))
	}
}

func listCriesHandler(svc *Service) http.HandlerFunc {
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

		items, err := svc.ListByPet(r.Context(), petID, claims.UserID)
		if err != nil {
			writeCryError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toCryResponses(items))
	}
}

func listCriesByStateHandler(svc *Service) http.HandlerFunc {
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

		state := r.URL.Query().Get("state")
		if strings.TrimSpace(state) == "" {
			http.Error(w, "state query param required", http.StatusBadRequest)
			return
		}

		items, err := svc.ListByPetWithState(r.Context(), petID, claims.UserID, state)
		if err != nil {
			writeCryError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toCryResponses(items))
	}
}

func listCriesByRangeHandler(svc *Service) http.HandlerFunc {
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

		from, ok := parseTimeParam(w, r, "from")
		if !ok {
			return
		}
		to, ok := parseTimeParam(w, r, "to")
		if !ok {
			return
		}

		items, err := svc.ListByPetBetween(r.Context(), petID, claims.UserID, from, to)
		if err != nil {
			writeCryError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toCryResponses(items))
	}
}

// inspectHandler godoc
// @Summary Reporte de inspección de llantos
// @Description Resume los últimos 30 días: histograma por hora, frecuencia por día, frecuencia por estado y duración media por estado normalizada. Con menos de 100 muestras result es null. El reporte se cachea por ventana y NO se invalida con llantos nuevos.
// @Tags cries
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Success 200 {object} inspectResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/cries/inspect [get]
func inspectHandler(svc *Service) http.HandlerFunc {
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

		report, err := svc.Inspect(r.Context(), petID, claims.UserID)
		if err != nil {
			writeCryError(w, err)
			return
		}

		msg := "cry inspected successfully"
		if report == nil {
			msg = "not enough samples in the last 30 days"
		}
		writeJSON(w, http.StatusOK, inspectResponse{Success: true, Message: msg, Result: report})
	}
}

// predictHandler godoc
// @Summary Clasificar un wav y registrar el llanto
// @Description Manda el audio al clasificador externo, guarda el wav y crea el llanto con el estado de mayor confianza.
// @Tags cries
// @Accept mpfd
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Param file formData file true "Audio wav"
// @Success 201 {object} cryResponse
// @Failure 400 {string} string "se requiere un archivo .wav"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Failure 500 {string} string "clasificador caído o respuesta malformada"
// @Router /pets/{petID}/cries/predict [post]
func predictHandler(svc *Service) http.HandlerFunc {
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

		if err := r.ParseMultipartForm(maxWavBytes); err != nil {
			http.Error(w, "invalid multipart form", http.StatusBadRequest)
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "file field required", http.StatusBadRequest)
			return
		}
		defer file.Close()

		if !strings.HasSuffix(strings.ToLower(header.Filename), ".wav") {
			http.Error(w, "wav file required", http.StatusBadRequest)
			return
		}

		// Se lee un byte de más para distinguir "justo en el límite" de
		// "excedido": truncar y mandar un wav cortado al clasificador sería
		// una corrupción silenciosa.
		wav, err := io.ReadAll(io.LimitReader(file, maxWavBytes+1))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if len(wav) > maxWavBytes {
			http.Error(w, "wav file too large", http.StatusRequestEntityTooLarge)
			return
		}

		c, err := svc.Predict(r.Context(), petID, claims.UserID, wav)
		if err != nil {
			writeCryError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toCryResponse(c))
	}
}

func getCryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		cryID, ok := parseCryID(w, r)
		if !ok {
			return
		}

		c, err := svc.GetByID(r.Context(), cryID, claims.UserID)
		if err != nil {
			writeCryError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toCryResponse(c))
	}
}

func updateCryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		cryID, ok := parseCryID(w, r)
		if !ok {
			return
		}

		var req updateCryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var in UpdateInput
		if req.Time != nil {
			t, err := time.Parse(time.RFC3339, *req.Time)
			if err != nil {
				http.Error(w, "time must be RFC3339", http.StatusBadRequest)
				return
			}
			in.Time = &t
		}
		in.State = req.State
		in.AudioID = req.AudioID
		in.PredictMap = req.PredictMap
		in.Intensity = req.Intensity
		in.Duration = req.Duration

		c, err := svc.Update(r.Context(), cryID, claims.UserID, in)
		if err != nil {
			writeCryError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toCryResponse(c))
	}
}

func deleteCryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		cryID, ok := parseCryID(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), cryID, claims.UserID); err != nil {
			writeCryError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
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

func parseCryID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "cryID"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "cryID must be a positive integer", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// parseTimeParam acepta RFC3339 o fecha plana YYYY-MM-DD.
func parseTimeParam(w http.ResponseWriter, r *http.Request, name string) (time.Time, bool) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		http.Error(w, name+" query param required", http.StatusBadRequest)
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, true
	}
	http.Error(w, name+" must be RFC3339 or YYYY-MM-DD", http.StatusBadRequest)
	return time.Time{}, false
}

// La respuesta sale con estado e intensidad en display (coreano).
func toCryResponse(c Cry) cryResponse {
	return cryResponse{
		ID:         c.ID,
		PetID:      c.PetID,
		Time:       c.Time,
		State:      vocab.LocalizeState(c.State),
		AudioID:    c.AudioID,
		PredictMap: c.PredictMap,
		Intensity:  vocab.LocalizeIntensity(c.Intensity),
		Duration:   c.Duration,
	}
}

func toCryResponses(items []Cry) []cryResponse {
	out := make([]cryResponse, 0, len(items))
	for _, c := range items {
		out = append(out, toCryResponse(c))
	}
	return out
}

func writeCryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrWrongStateForSpecies),
		errors.Is(err, pets.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrUnauthorized), errors.Is(err, pets.ErrUnauthorized):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, ErrNotFound), errors.Is(err, pets.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		// Fallas del clasificador / agregación: opacas para el caller.
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeJSON está duplicado a propósito en los handlers de cada módulo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
