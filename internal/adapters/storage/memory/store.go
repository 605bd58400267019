// Package memory implementa los repositorios sobre maps en memoria.
// Comparte un Store único entre repos para poder honrar el borrado en
// cascada (user → pets → cries) y el join llanto→dueño igual que el
// esquema relacional.
package memory

import (
	"sync"

	"pet-cry-monitor/internal/domain/cries"
	"pet-cry-monitor/internal/domain/pets"
	"pet-cry-monitor/internal/domain/users"
)

type Store struct {
	mu sync.RWMutex

	users   map[string]users.User
	pets    map[int64]pets.Pet
	cries   map[int64]cries.Cry
	nextPet int64
	nextCry int64
}

func NewStore() *Store {
	return &Store{
		users: make(map[string]users.User),
		pets:  make(map[int64]pets.Pet),
		cries: make(map[int64]cries.Cry),
	}
}

func (s *Store) Users() users.Repository { return &userRepo{s} }
func (s *Store) Pets() pets.Repository   { return &petRepo{s} }
func (s *Store) Cries() cries.Repository { return &cryRepo{s} }

// deletePetLocked borra la mascota y sus llantos; requiere s.mu tomado.
func (s *Store) deletePetLocked(petID int64) {
	delete(s.pets, petID)
	for id, c := range s.cries {
		if c.PetID == petID {
			delete(s.cries, id)
		}
	}
}
