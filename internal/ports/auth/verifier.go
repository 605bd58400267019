package auth

import "context"

// Verifier verifica un token y devuelve claims o error.
type Verifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// Issuer firma un token para un usuario ya autenticado
// (signup/login devuelve el token en la respuesta).
type Issuer interface {
	Issue(ctx context.Context, userID string) (string, error)
}
