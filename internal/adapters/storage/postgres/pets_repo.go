package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pet-cry-monitor/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO pets (owner_uid, name, gender, age, species, sub_species, photo_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`,
		p.OwnerUserID,
		p.Name,
		p.Gender,
		p.Age,
		p.Species,
		p.SubSpecies,
		toNullString(p.PhotoID),
	)
	if err := row.Scan(&p.ID); err != nil {
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, owner_uid, name, gender, age, species, sub_species, photo_id
		FROM pets
		WHERE id = $1
	`, id)

	p, err := scanPet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, owner_uid, name, gender, age, species, sub_species, photo_id
		FROM pets
		WHERE owner_uid = $1
		ORDER BY id ASC
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET name = $2, gender = $3, age = $4, species = $5, sub_species = $6, photo_id = $7
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.Gender,
		p.Age,
		p.Species,
		p.SubSpecies,
		toNullString(p.PhotoID),
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) Delete(ctx context.Context, id int64) error {
	// Los llantos caen por ON DELETE CASCADE.
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(row rowScanner) (pets.Pet, error) {
	var p pets.Pet
	var photo sql.NullString
	if err := row.Scan(
		&p.ID,
		&p.OwnerUserID,
		&p.Name,
		&p.Gender,
		&p.Age,
		&p.Species,
		&p.SubSpecies,
		&photo,
	); err != nil {
		return pets.Pet{}, err
	}
	if photo.Valid {
		p.PhotoID = &photo.String
	}
	return p, nil
}
