package users

import "context"

type Repository interface {
	Create(ctx context.Context, u User) error
	GetByUID(ctx context.Context, uid string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Update(ctx context.Context, u User) error

	// Delete borra al usuario y en cascada sus mascotas y llantos.
	Delete(ctx context.Context, uid string) error
}
