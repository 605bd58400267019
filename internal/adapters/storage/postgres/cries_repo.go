package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pet-cry-monitor/internal/domain/cries"
)

type CriesRepo struct {
	db *sql.DB
}

func NewCriesRepo(db *sql.DB) *CriesRepo {
	return &CriesRepo{db: db}
}

func (r *CriesRepo) Create(ctx context.Context, c cries.Cry) (cries.Cry, error) {
	pm, err := json.Marshal(c.PredictMap)
	if err != nil {
		return cries.Cry{}, fmt.Errorf("marshal predict map: %w", err)
	}

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO cries (pet_id, time, state, audio_id, predict_map, intensity, duration)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`,
		c.PetID,
		c.Time,
		c.State,
		c.AudioID,
		pm,
		c.Intensity,
		c.Duration,
	)
	if err := row.Scan(&c.ID); err != nil {
		return cries.Cry{}, err
	}
	return c, nil
}

func (r *CriesRepo) GetWithOwner(ctx context.Context, id int64) (cries.Cry, string, error) {
	// Join llanto + dueño en una sola consulta (guard atómico).
	row := r.db.QueryRowContext(ctx, `
		SELECT c.id, c.pet_id, c.time, c.state, c.audio_id, c.predict_map, c.intensity, c.duration,
		       p.owner_uid
		FROM cries c
		JOIN pets p ON p.id = c.pet_id
		WHERE c.id = $1
	`, id)

	var c cries.Cry
	var pm []byte
	var owner string
	if err := row.Scan(
		&c.ID, &c.PetID, &c.Time, &c.State, &c.AudioID, &pm, &c.Intensity, &c.Duration,
		&owner,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return cries.Cry{}, "", cries.ErrNotFound
		}
		return cries.Cry{}, "", err
	}
	if err := json.Unmarshal(pm, &c.PredictMap); err != nil {
		return cries.Cry{}, "", fmt.Errorf("unmarshal predict map: %w", err)
	}
	return c, owner, nil
}

func (r *CriesRepo) ListByPet(ctx context.Context, petID int64) ([]cries.Cry, error) {
	return r.list(ctx, `WHERE pet_id = $1`, petID)
}

func (r *CriesRepo) ListByPetAndState(ctx context.Context, petID int64, state string) ([]cries.Cry, error) {
	return r.list(ctx, `WHERE pet_id = $1 AND state = $2`, petID, state)
}

func (r *CriesRepo) ListByPetBetween(ctx context.Context, petID int64, from, to time.Time) ([]cries.Cry, error) {
	return r.list(ctx, `WHERE pet_id = $1 AND time >= $2 AND time <= $3`, petID, from, to)
}

func (r *CriesRepo) list(ctx context.Context, where string, args ...any) ([]cries.Cry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, time, state, audio_id, predict_map, intensity, duration
		FROM cries
	`+where+`
		ORDER BY time ASC, id ASC
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]cries.Cry, 0)
	for rows.Next() {
		var c cries.Cry
		var pm []byte
		if err := rows.Scan(
			&c.ID, &c.PetID, &c.Time, &c.State, &c.AudioID, &pm, &c.Intensity, &c.Duration,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(pm, &c.PredictMap); err != nil {
			return nil, fmt.Errorf("unmarshal predict map: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CriesRepo) Update(ctx context.Context, c cries.Cry) error {
	pm, err := json.Marshal(c.PredictMap)
	if err != nil {
		return fmt.Errorf("marshal predict map: %w", err)
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE cries
		SET time = $2, state = $3, audio_id = $4, predict_map = $5, intensity = $6, duration = $7
		WHERE id = $1
	`,
		c.ID,
		c.Time,
		c.State,
		c.AudioID,
		pm,
		c.Intensity,
		c.Duration,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return cries.ErrNotFound
	}
	return nil
}

func (r *CriesRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return cries.ErrNotFound
	}
	return nil
}
