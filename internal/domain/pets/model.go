package pets

// Pet representa el perfil de una mascota registrada. Species y Gender se
// persisten siempre en forma canónica (vocab); SubSpecies es la raza en
// texto libre.
type Pet struct {
	ID          int64
	OwnerUserID string

	Name       string
	Gender     string // male, female, spayed
	Age        int
	Species    string // dog, cat
	SubSpecies string
	PhotoID    *string
}
