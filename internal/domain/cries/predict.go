package cries

import (
	"context"
	"fmt"
	"sort"
)

// labelBridge renombra los labels del clasificador externo a nuestro
// vocabulario canónico. Es un contrato estable, no un detalle: si el
// servicio externo cambia su set de labels y este mapa no lo acompaña,
// la asignación de estados se corrompe en silencio.
var labelBridge = map[string]string{
	"whining": "sad",
	"relax":   "happy",
	"hostile": "anger",
}

// Predict manda el wav al clasificador, persiste el audio y crea el
// llanto con el estado de mayor confianza. La creación pasa por Create,
// que revalida especie⇄estado.
func (s *Service) Predict(ctx context.Context, petID int64, requesterID string, wav []byte) (Cry, error) {
	pet, err := s.pets.Authorize(ctx, petID, requesterID)
	if err != nil {
		return Cry{}, err
	}
	if len(wav) == 0 {
		return Cry{}, ErrInvalidInput
	}

	raw, err := s.classifier.Classify(ctx, wav, pet.Species, requesterID)
	if err != nil {
		return Cry{}, fmt.Errorf("classifier: %w", err)
	}
	if len(raw) == 0 {
		return Cry{}, fmt.Errorf("classifier: empty prediction")
	}

	predictMap := remapLabels(raw)

	now := s.now()
	audioID := fmt.Sprintf("%d_%s", petID, now.Format("20060102-150405"))
	if err := s.audio.SaveWav(ctx, audioID, wav); err != nil {
		return Cry{}, fmt.Errorf("save audio: %w", err)
	}

	state := argmax(predictMap)
	s.log.Info("cry predicted", map[string]any{"pet_id": petID, "state": state, "audio_id": audioID})

	return s.Create(ctx, requesterID, CreateInput{
		PetID:      petID,
		Time:       now,
		State:      state,
		AudioID:    audioID,
		PredictMap: predictMap,
	})
}

func remapLabels(raw map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(raw))
	for label, score := range raw {
		if internal, ok := labelBridge[label]; ok {
			label = internal
		}
		out[label] = score
	}
	return out
}

// argmax con desempate lexicográfico (el orden de iteración de un map no
// es determinístico).
func argmax(m map[string]float64) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	best := keys[0]
	for _, k := range keys[1:] {
		if m[k] > m[best] {
			best = k
		}
	}
	return best
}
