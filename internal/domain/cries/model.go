package cries

import "time"

// Cry es un evento de llanto clasificado: momento, estado emocional
// (canónico, scoped por especie), referencia al wav almacenado y el mapa
// de confianzas que produjo el clasificador. Los registros creados a mano
// no están obligados a que PredictMap sume 1.0.
type Cry struct {
	ID    int64
	PetID int64

	Time       time.Time
	State      string
	AudioID    string
	PredictMap map[string]float64
	Intensity  string  // low, medium, high (default medium)
	Duration   float64 // segundos, > 0 (default 2.0)
}
