package pets

import "context"

type Repository interface {
	// Create asigna el ID y devuelve la mascota persistida.
	Create(ctx context.Context, p Pet) (Pet, error)
	GetByID(ctx context.Context, id int64) (Pet, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error)
	Update(ctx context.Context, p Pet) error

	// Delete borra la mascota y en cascada sus llantos.
	Delete(ctx context.Context, id int64) error
}

// ImageStore normaliza y guarda la foto de perfil en un formato canónico
// único por mascota (la anterior se pisa, no se versiona).
type ImageStore interface {
	// SaveProfile decodifica la imagen, la convierte a RGB y la guarda
	// como JPEG en la ruta determinística de la mascota.
	SaveProfile(ctx context.Context, petID int64, data []byte) error

	// ProfilePath devuelve la ruta a servir: la foto de la mascota si
	// existe, o el asset default.
	ProfilePath(petID int64) string
}
