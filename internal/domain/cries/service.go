package cries

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-cry-monitor/internal/domain/pets"
	"pet-cry-monitor/internal/platform/logger"
	"pet-cry-monitor/internal/vocab"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("cry not found")
	ErrUnauthorized = errors.New("unauthorized")

	// ErrWrongStateForSpecies es clase Validation: el estado no pertenece
	// al vocabulario de la especie de la mascota.
	ErrWrongStateForSpecies = errors.New("state not allowed for species")
)

const (
	defaultIntensity = string(vocab.IntensityMedium)
	defaultDuration  = 2.0
)

type Service struct {
	repo       Repository
	pets       *pets.Service
	reports    ReportStore
	classifier Classifier
	audio      AudioStore
	log        logger.Logger
	now        func() time.Time
}

func NewService(repo Repository, petsSvc *pets.Service, reports ReportStore, classifier Classifier, audio AudioStore, log logger.Logger) *Service {
	return &Service{
		repo:       repo,
		pets:       petsSvc,
		reports:    reports,
		classifier: classifier,
		audio:      audio,
		log:        log,
		now:        time.Now,
	}
}

type CreateInput struct {
	PetID      int64
	Time       time.Time
	State      string
	AudioID    string
	PredictMap map[string]float64
	Intensity  string   // "" => medium
	Duration   *float64 // nil => 2.0
}

func (s *Service) Create(ctx context.Context, requesterID string, in CreateInput) (Cry, error) {
	pet, err := s.pets.Authorize(ctx, in.PetID, requesterID)
	if err != nil {
		return Cry{}, err
	}

	if in.Time.IsZero() {
		return Cry{}, ErrInvalidInput
	}

	state := vocab.NormalizeState(strings.TrimSpace(in.State))
	if !vocab.ValidStateFor(pet.Species, state) {
		return Cry{}, ErrWrongStateForSpecies
	}

	intensity := defaultIntensity
	if strings.TrimSpace(in.Intensity) != "" {
		intensity = vocab.NormalizeIntensity(strings.TrimSpace(in.Intensity))
		if !vocab.ValidIntensity(intensity) {
			return Cry{}, ErrInvalidInput
		}
	}

	duration := defaultDuration
	if in.Duration != nil {
		if *in.Duration <= 0 {
			return Cry{}, ErrInvalidInput
		}
		duration = *in.Duration
	}

	predictMap := in.PredictMap
	if predictMap == nil {
		predictMap = map[string]float64{}
	}

	c := Cry{
		PetID:      in.PetID,
		Time:       in.Time,
		State:      state,
		AudioID:    strings.TrimSpace(in.AudioID),
		PredictMap: predictMap,
		Intensity:  intensity,
		Duration:   duration,
	}
	return s.repo.Create(ctx, c)
}

// getOwned resuelve el guard de un llanto: un join (llanto + dueño de su
// mascota) y comparación en proceso.
func (s *Service) getOwned(ctx context.Context, cryID int64, requesterID string) (Cry, error) {
	c, owner, err := s.repo.GetWithOwner(ctx, cryID)
	if err != nil {
		return Cry{}, err
	}
	if owner != requesterID {
		return Cry{}, ErrUnauthorized
	}
	return c, nil
}

func (s *Service) GetByID(ctx context.Context, cryID int64, requesterID string) (Cry, error) {
	return s.getOwned(ctx, cryID, requesterID)
}

func (s *Service) ListByPet(ctx context.Context, petID int64, requesterID string) ([]Cry, error) {
	if _, err := s.pets.Authorize(ctx, petID, requesterID); err != nil {
		return nil, err
	}
	return s.repo.ListByPet(ctx, petID)
}

// ListByPetWithState acepta el estado en cualquiera de los dos léxicos.
func (s *Service) ListByPetWithState(ctx context.Context, petID int64, requesterID, state string) ([]Cry, error) {
	pet, err := s.pets.Authorize(ctx, petID, requesterID)
	if err != nil {
		return nil, err
	}

	state = vocab.NormalizeState(strings.TrimSpace(state))
	if !vocab.ValidStateFor(pet.Species, state) {
		return nil, ErrWrongStateForSpecies
	}
	return s.repo.ListByPetAndState(ctx, petID, state)
}

// ListByPetBetween trata el límite superior como fin-de-día inclusivo:
// el caller suele mandar fechas sin hora y espera que el último día cuente
// completo, así que corremos el tope un día.
func (s *Service) ListByPetBetween(ctx context.Context, petID int64, requesterID string, from, to time.Time) ([]Cry, error) {
	if _, err := s.pets.Authorize(ctx, petID, requesterID); err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByPetBetween(ctx, petID, from, to.Add(24*time.Hour))
}

type UpdateInput struct {
	// Punteros para PATCH real: nil = no tocar.
	Time       *time.Time
	State      *string
	AudioID    *string
	PredictMap map[string]float64
	Intensity  *string
	Duration   *float64
}

func (s *Service) Update(ctx context.Context, cryID int64, requesterID string, in UpdateInput) (Cry, error) {
	c, err := s.getOwned(ctx, cryID, requesterID)
	if err != nil {
		return Cry{}, err
	}

	if in.Time != nil {
		if in.Time.IsZero() {
			return Cry{}, ErrInvalidInput
		}
		c.Time = *in.Time
	}
	if in.State != nil {
		// Cambia el estado => se revalida contra la especie.
		pet, err := s.pets.Authorize(ctx, c.PetID, requesterID)
		if err != nil {
			return Cry{}, err
		}
		state := vocab.NormalizeState(strings.TrimSpace(*in.State))
		if !vocab.ValidStateFor(pet.Species, state) {
			return Cry{}, ErrWrongStateForSpecies
		}
		c.State = state
	}
	if in.AudioID != nil {
		c.AudioID = strings.TrimSpace(*in.AudioID)
	}
	if in.PredictMap != nil {
		c.PredictMap = in.PredictMap
	}
	if in.Intensity != nil {
		intensity := vocab.NormalizeIntensity(strings.TrimSpace(*in.Intensity))
		if !vocab.ValidIntensity(intensity) {
			return Cry{}, ErrInvalidInput
		}
		c.Intensity = intensity
	}
	if in.Duration != nil {
		if *in.Duration <= 0 {
			return Cry{}, ErrInvalidInput
		}
		c.Duration = *in.Duration
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return Cry{}, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, cryID int64, requesterID string) error {
	c, err := s.getOwned(ctx, cryID, requesterID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, c.ID)
}
