package cries

import (
	"context"
	"fmt"
	"math"
	"sort"
)

const (
	// inspectWindowDays es la ventana de historial que resume un reporte.
	inspectWindowDays = 30

	// minInspectSample es el piso deliberado de muestras: con menos de
	// esto no se emite reporte (no es un error).
	minInspectSample = 100
)

// Report es el resumen estadístico cacheado de la ventana de 30 días.
// El artefacto se escribe una sola vez por key; llantos nuevos dentro de
// la misma ventana NO lo invalidan (stale-on-write documentado).
type Report struct {
	LogID          string        `json:"logId"`
	CryFreqHour    []int         `json:"cry_freq_hour"`
	CryFreqDate    DateFreq      `json:"cry_freq_date"`
	TypeFreq       map[string]int `json:"type_freq"`
	DurationOfType DurationStats `json:"duration_of_type"`
}

// DateFreq son listas paralelas fecha/conteo, fechas ascendentes.
type DateFreq struct {
	Date  []string `json:"date"`
	Freqs []int    `json:"freqs"`
}

// DurationStats son listas paralelas ordenadas por media ascendente:
// Duration es la media menos el mínimo, BarPercent esa diferencia
// escalada a [0,1] por el máximo (para las barras de la app).
type DurationStats struct {
	Type       []string  `json:"type"`
	Duration   []float64 `json:"duration"`
	BarPercent []float64 `json:"bar_percent"`
}

// Inspect calcula (o trae del cache) el reporte de los últimos 30 días.
// Devuelve (nil, nil) cuando la muestra no llega al piso.
func (s *Service) Inspect(ctx context.Context, petID int64, requesterID string) (*Report, error) {
	if _, err := s.pets.Authorize(ctx, petID, requesterID); err != nil {
		return nil, err
	}

	end := s.now()
	start := end.AddDate(0, 0, -inspectWindowDays)
	key := fmt.Sprintf("%d_%s_%s", petID, start.Format("2006-01-02"), end.Format("2006-01-02"))

	cached, err := s.reports.Get(ctx, key)
	if err != nil {
		// Cache roto se trata como miss; se recalcula y se repisa.
		s.log.Warn("inspect cache read failed", map[string]any{"key": key, "err": err.Error()})
	}
	if cached != nil {
		return cached, nil
	}

	window, err := s.repo.ListByPetBetween(ctx, petID, start, end)
	if err != nil {
		return nil, err
	}
	if len(window) < minInspectSample {
		return nil, nil
	}

	report, err := buildReport(key, window)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect cry: %w", err)
	}

	if err := s.reports.Put(ctx, key, report); err != nil {
		// El reporte igual se devuelve; solo perdemos el cache.
		s.log.Warn("inspect cache write failed", map[string]any{"key": key, "err": err.Error()})
	}

	s.log.Info("inspect report computed", map[string]any{"key": key, "samples": len(window)})
	return report, nil
}

// buildReport agrega la ventana completa; es puro para poder testearlo
// sin service ni cache.
func buildReport(logID string, window []Cry) (*Report, error) {
	hours := make([]int, 24)
	byDate := map[string]int{}
	byState := map[string]int{}
	durSum := map[string]float64{}

	for _, c := range window {
		if c.Duration < 0 {
			return nil, fmt.Errorf("negative duration on cry %d", c.ID)
		}
		hours[c.Time.Hour()]++
		byDate[c.Time.Format("2006-01-02")]++
		byState[c.State]++
		durSum[c.State] += c.Duration
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	freqs := make([]int, len(dates))
	for i, d := range dates {
		freqs[i] = byDate[d]
	}

	// Estados ordenados por media de duración ascendente
	// (empate => alfabético, para salida determinística).
	states := make([]string, 0, len(byState))
	for st := range byState {
		states = append(states, st)
	}
	sort.Slice(states, func(i, j int) bool {
		mi := durSum[states[i]] / float64(byState[states[i]])
		mj := durSum[states[j]] / float64(byState[states[j]])
		if mi != mj {
			return mi < mj
		}
		return states[i] < states[j]
	})

	means := make([]float64, len(states))
	for i, st := range states {
		means[i] = durSum[st] / float64(byState[st])
	}

	min := means[0]
	max := means[len(means)-1] - min

	durations := make([]float64, len(states))
	percents := make([]float64, len(states))
	for i := range states {
		durations[i] = round3(means[i] - min)
		if max == 0 {
			// Todas las medias iguales: sin división, todo 0.
			percents[i] = 0
			continue
		}
		percents[i] = round3((means[i] - min) / max)
	}

	return &Report{
		LogID:       logID,
		CryFreqHour: hours,
		CryFreqDate: DateFreq{Date: dates, Freqs: freqs},
		TypeFreq:    byState,
		DurationOfType: DurationStats{
			Type:       states,
			Duration:   durations,
			BarPercent: percents,
		},
	}, nil
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
