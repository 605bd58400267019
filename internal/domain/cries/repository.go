package cries

import (
	"context"
	"time"
)

type Repository interface {
	// Create asigna el ID y devuelve el llanto persistido.
	Create(ctx context.Context, c Cry) (Cry, error)

	// GetWithOwner trae el llanto junto con el dueño de su mascota en un
	// solo lookup (join), para que el guard distinga "no existe" de
	// "no es tuyo" sin una segunda consulta.
	GetWithOwner(ctx context.Context, id int64) (Cry, string, error)

	ListByPet(ctx context.Context, petID int64) ([]Cry, error)
	ListByPetAndState(ctx context.Context, petID int64, state string) ([]Cry, error)

	// ListByPetBetween es inclusivo en ambos extremos, sin ajustes: el
	// corrimiento fin-de-día de la búsqueda por rango lo aplica el service.
	ListByPetBetween(ctx context.Context, petID int64, from, to time.Time) ([]Cry, error)

	Update(ctx context.Context, c Cry) error
	Delete(ctx context.Context, id int64) error
}

// ReportStore es el cache keyed de reportes de inspección.
// Get devuelve (nil, nil) en cache miss.
type ReportStore interface {
	Get(ctx context.Context, key string) (*Report, error)
	Put(ctx context.Context, key string, r *Report) error
}

// Classifier es el servicio de inferencia externo: recibe el wav crudo y
// la especie, devuelve confianza por label en el vocabulario PROPIO del
// servicio (ver labelBridge en predict.go).
type Classifier interface {
	Classify(ctx context.Context, wav []byte, species, userID string) (map[string]float64, error)
}

// AudioStore persiste el asset de audio bajo un id determinístico.
type AudioStore interface {
	SaveWav(ctx context.Context, audioID string, data []byte) error
}
