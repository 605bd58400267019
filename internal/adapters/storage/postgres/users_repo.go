package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pet-cry-monitor/internal/domain/users"

	"github.com/jackc/pgx/v5/pgconn"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (uid, email, nickname, photo_id)
		VALUES ($1, $2, $3, $4)
	`,
		u.UID,
		u.Email,
		u.Nickname,
		toNullString(u.PhotoID),
	)
	if err != nil {
		// 23505 = unique_violation; el service ya chequea unicidad pero
		// dos creates concurrentes pueden colarse hasta acá.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return users.ErrDuplicateEmail
			}
			return users.ErrDuplicateUID
		}
		return err
	}
	return nil
}

func (r *UsersRepo) GetByUID(ctx context.Context, uid string) (users.User, error) {
	return r.getBy(ctx, `WHERE uid = $1`, uid)
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	return r.getBy(ctx, `WHERE email = $1`, email)
}

func (r *UsersRepo) getBy(ctx context.Context, where string, arg any) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT uid, email, nickname, photo_id
		FROM users
	`+where, arg)

	var u users.User
	var photo sql.NullString
	if err := row.Scan(&u.UID, &u.Email, &u.Nickname, &photo); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}
	if photo.Valid {
		u.PhotoID = &photo.String
	}
	return u, nil
}

func (r *UsersRepo) Update(ctx context.Context, u users.User) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET email = $2, nickname = $3, photo_id = $4
		WHERE uid = $1
	`,
		u.UID,
		u.Email,
		u.Nickname,
		toNullString(u.PhotoID),
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return users.ErrNotFound
	}
	return nil
}

func (r *UsersRepo) Delete(ctx context.Context, uid string) error {
	// La cascada pets → cries la resuelven las FKs ON DELETE CASCADE.
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE uid = $1`, uid)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return users.ErrNotFound
	}
	return nil
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
