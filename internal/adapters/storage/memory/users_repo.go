package memory

import (
	"context"
	"errors"

	"pet-cry-monitor/internal/domain/users"
)

type userRepo struct {
	s *Store
}

func (r *userRepo) Create(ctx context.Context, u users.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if u.UID == "" {
		return errors.New("user uid required")
	}
	if _, exists := r.s.users[u.UID]; exists {
		return users.ErrDuplicateUID
	}
	r.s.users[u.UID] = u
	return nil
}

func (r *userRepo) GetByUID(ctx context.Context, uid string) (users.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[uid]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return users.User{}, users.ErrNotFound
}

func (r *userRepo) Update(ctx context.Context, u users.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.users[u.UID]; !exists {
		return users.ErrNotFound
	}
	r.s.users[u.UID] = u
	return nil
}

func (r *userRepo) Delete(ctx context.Context, uid string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.users[uid]; !exists {
		return users.ErrNotFound
	}
	delete(r.s.users, uid)

	// Cascada: mascotas del usuario y sus llantos.
	for id, p := range r.s.pets {
		if p.OwnerUserID == uid {
			r.s.deletePetLocked(id)
		}
	}
	return nil
}
