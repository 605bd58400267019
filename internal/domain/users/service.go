package users

import (
	"context"
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("user not found")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrDuplicateUID   = errors.New("user already exists")
	ErrDuplicateEmail = errors.New("email already exists")
)

var emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,7}$`)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	UID      string
	Email    string
	Nickname string
	PhotoID  *string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (User, error) {
	uid := strings.TrimSpace(in.UID)
	email := strings.TrimSpace(in.Email)
	nickname := strings.TrimSpace(in.Nickname)

	if uid == "" || nickname == "" {
		return User{}, ErrInvalidInput
	}
	if !emailRe.MatchString(email) {
		return User{}, ErrInvalidInput
	}

	// Unicidad de uid y de email, con errores distinguibles.
	if _, err := s.repo.GetByUID(ctx, uid); err == nil {
		return User{}, ErrDuplicateUID
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return User{}, ErrDuplicateEmail
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	u := User{
		UID:      uid,
		Email:    email,
		Nickname: nickname,
		PhotoID:  in.PhotoID,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *Service) GetByUID(ctx context.Context, uid string) (User, error) {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return User{}, ErrInvalidInput
	}
	return s.repo.GetByUID(ctx, uid)
}

type UpdateInput struct {
	// Punteros para PATCH real: nil = no tocar.
	Nickname *string
	PhotoID  *string
}

func (s *Service) Update(ctx context.Context, uid string, in UpdateInput) (User, error) {
	u, err := s.GetByUID(ctx, uid)
	if err != nil {
		return User{}, err
	}

	if in.Nickname != nil {
		n := strings.TrimSpace(*in.Nickname)
		if n == "" {
			return User{}, ErrInvalidInput
		}
		u.Nickname = n
	}
	if in.PhotoID != nil {
		u.PhotoID = in.PhotoID
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *Service) Delete(ctx context.Context, uid string) error {
	if _, err := s.GetByUID(ctx, uid); err != nil {
		return err
	}
	return s.repo.Delete(ctx, uid)
}

// Login valida el par (email, uid): email inexistente => NotFound,
// uid que no corresponde => Unauthorized.
func (s *Service) Login(ctx context.Context, email, uid string) (User, error) {
	email = strings.TrimSpace(email)
	uid = strings.TrimSpace(uid)
	if email == "" || uid == "" {
		return User{}, ErrInvalidInput
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return User{}, err
	}
	if u.UID != uid {
		return User{}, ErrUnauthorized
	}
	return u, nil
}
