package auth

import (
	"context"
	"errors"

	authdomain "github.com/birqadam/volunteer-backend/internal/auth/domain"
)

var ErrInvalidToken = errors.New("invalid token")

// TokenVerifier turns a bearer token into the caller identity.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (authdomain.Identity, error)
}
