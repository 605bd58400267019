package memory

import (
	"context"
	"sort"
	"time"

	"pet-cry-monitor/internal/domain/cries"
)

type cryRepo struct {
	s *Store
}

func (r *cryRepo) Create(ctx context.Context, c cries.Cry) (cries.Cry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextCry++
	c.ID = r.s.nextCry
	r.s.cries[c.ID] = c
	return c, nil
}

func (r *cryRepo) GetWithOwner(ctx context.Context, id int64) (cries.Cry, string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.cries[id]
	if !ok {
		return cries.Cry{}, "", cries.ErrNotFound
	}
	p, ok := r.s.pets[c.PetID]
	if !ok {
		// Llanto huérfano no debería existir con la cascada; se trata
		// como inexistente.
		return cries.Cry{}, "", cries.ErrNotFound
	}
	return c, p.OwnerUserID, nil
}

func (r *cryRepo) ListByPet(ctx context.Context, petID int64) ([]cries.Cry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]cries.Cry, 0)
	for _, c := range r.s.cries {
		if c.PetID == petID {
			out = append(out, c)
		}
	}
	sortByTime(out)
	return out, nil
}

func (r *cryRepo) ListByPetAndState(ctx context.Context, petID int64, state string) ([]cries.Cry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]cries.Cry, 0)
	for _, c := range r.s.cries {
		if c.PetID == petID && c.State == state {
			out = append(out, c)
		}
	}
	sortByTime(out)
	return out, nil
}

func (r *cryRepo) ListByPetBetween(ctx context.Context, petID int64, from, to time.Time) ([]cries.Cry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]cries.Cry, 0)
	for _, c := range r.s.cries {
		if c.PetID != petID {
			continue
		}
		if c.Time.Before(from) || c.Time.After(to) {
			continue
		}
		out = append(out, c)
	}
	sortByTime(out)
	return out, nil
}

func (r *cryRepo) Update(ctx context.Context, c cries.Cry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.cries[c.ID]; !exists {
		return cries.ErrNotFound
	}
	r.s.cries[c.ID] = c
	return nil
}

func (r *cryRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.cries[id]; !exists {
		return cries.ErrNotFound
	}
	delete(r.s.cries, id)
	return nil
}

func sortByTime(out []cries.Cry) {
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Time.Equal(out[j].Time) {
			return out[i].Time.Before(out[j].Time)
		}
		return out[i].ID < out[j].ID
	})
}
