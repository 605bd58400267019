package pets

import (
	"context"
	"errors"
	"strings"

	"pet-cry-monitor/internal/vocab"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("pet not found")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrWrongFileType = errors.New("wrong file type")
)

// Extensiones de imagen aceptadas para la foto de perfil.
var allowedImageExts = map[string]struct{}{
	"jpg": {}, "jpeg": {}, "png": {}, "tiff": {}, "webp": {}, "heif": {}, "heic": {},
}

type Service struct {
	repo   Repository
	images ImageStore
}

func NewService(repo Repository, images ImageStore) *Service {
	return &Service{repo: repo, images: images}
}

type CreateInput struct {
	Name       string
	Gender     string
	Age        int
	Species    string
	SubSpecies string
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Pet, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, ErrInvalidInput
	}
	if in.Age < 0 {
		return Pet{}, ErrInvalidInput
	}

	// Se acepta cualquiera de los dos léxicos; se persiste el canónico.
	species := vocab.NormalizeSpecies(strings.TrimSpace(in.Species))
	if !vocab.ValidSpecies(species) {
		return Pet{}, ErrInvalidInput
	}
	gender := vocab.NormalizeGender(strings.TrimSpace(in.Gender))
	if !vocab.ValidGender(gender) {
		return Pet{}, ErrInvalidInput
	}

	p := Pet{
		OwnerUserID: ownerUserID,
		Name:        strings.TrimSpace(in.Name),
		Gender:      gender,
		Age:         in.Age,
		Species:     species,
		SubSpecies:  strings.TrimSpace(in.SubSpecies),
	}
	return s.repo.Create(ctx, p)
}

// Authorize es el ownership guard: un solo lookup por id y comparación de
// dueño en proceso, así "no existe" y "no es tuya" quedan distinguibles
// sin abrir una ventana entre chequeo y uso.
func (s *Service) Authorize(ctx context.Context, petID int64, requesterID string) (Pet, error) {
	p, err := s.repo.GetByID(ctx, petID)
	if err != nil {
		return Pet{}, err
	}
	if p.OwnerUserID != requesterID {
		return Pet{}, ErrUnauthorized
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, petID int64, requesterID string) (Pet, error) {
	return s.Authorize(ctx, petID, requesterID)
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, ownerUserID)
}

type UpdateInput struct {
	// Punteros para PATCH real: nil = no tocar.
	Name       *string
	Gender     *string
	Age        *int
	Species    *string
	SubSpecies *string
	PhotoID    *string
}

func (s *Service) Update(ctx context.Context, petID int64, requesterID string, in UpdateInput) (Pet, error) {
	p, err := s.Authorize(ctx, petID, requesterID)
	if err != nil {
		return Pet{}, err
	}

	if in.Name != nil {
		n := strings.TrimSpace(*in.Name)
		if n == "" {
			return Pet{}, ErrInvalidInput
		}
		p.Name = n
	}
	if in.Age != nil {
		if *in.Age < 0 {
			return Pet{}, ErrInvalidInput
		}
		p.Age = *in.Age
	}
	if in.Species != nil {
		sp := vocab.NormalizeSpecies(strings.TrimSpace(*in.Species))
		if !vocab.ValidSpecies(sp) {
			return Pet{}, ErrInvalidInput
		}
		p.Species = sp
	}
	if in.Gender != nil {
		g := vocab.NormalizeGender(strings.TrimSpace(*in.Gender))
		if !vocab.ValidGender(g) {
			return Pet{}, ErrInvalidInput
		}
		p.Gender = g
	}
	if in.SubSpecies != nil {
		p.SubSpecies = strings.TrimSpace(*in.SubSpecies)
	}
	if in.PhotoID != nil {
		p.PhotoID = in.PhotoID
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, petID int64, requesterID string) error {
	if _, err := s.Authorize(ctx, petID, requesterID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, petID)
}

// UploadProfileImage valida la extensión declarada y delega la
// normalización (decode → RGB → JPEG) al ImageStore.
func (s *Service) UploadProfileImage(ctx context.Context, petID int64, requesterID, filename string, data []byte) error {
	if _, err := s.Authorize(ctx, petID, requesterID); err != nil {
		return err
	}

	filename = strings.TrimSpace(filename)
	i := strings.LastIndex(filename, ".")
	if i < 0 || i == len(filename)-1 {
		return ErrWrongFileType
	}
	ext := strings.ToLower(filename[i+1:])
	if _, ok := allowedImageExts[ext]; !ok {
		return ErrWrongFileType
	}

	return s.images.SaveProfile(ctx, petID, data)
}

// ProfileImagePath es lectura pública: foto de la mascota o default.
func (s *Service) ProfileImagePath(petID int64) string {
	return s.images.ProfilePath(petID)
}

// OwnerOf expone el dueño de una mascota sin guard (lo usan otros módulos).
func (s *Service) OwnerOf(ctx context.Context, petID int64) (string, error) {
	p, err := s.repo.GetByID(ctx, petID)
	if err != nil {
		return "", err
	}
	return p.OwnerUserID, nil
}
