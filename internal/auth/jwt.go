package auth

import (
	"context"
	"fmt"
	"strconv"

	jwt "github.com/golang-jwt/jwt/v5"

	authdomain "github.com/birqadam/volunteer-backend/internal/auth/domain"
)

// Claims is the HS256 token shape issued by the login endpoint. The
// subject is the account uid; older tokens carry it as user_id instead.
type Claims struct {
	UserID any    `json:"user_id,omitempty"`
	Email  string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// JWTVerifier verifies HS256 tokens signed with a shared secret.
type JWTVerifier struct {
	secret []byte
	parser *jwt.Parser
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}
}

func (v *JWTVerifier) Verify(_ context.Context, token string) (authdomain.Identity, error) {
	var claims Claims
	_, err := v.parser.ParseWithClaims(token, &claims, func(_ *jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return authdomain.Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	uid := claims.Subject
	if uid == "" {
		uid = userIDString(claims.UserID)
	}
	if uid == "" {
		return authdomain.Identity{}, fmt.Errorf("%w: no subject", ErrInvalidToken)
	}

	return authdomain.Identity{UID: uid, Email: claims.Email}, nil
}

func userIDString(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		return strconv.FormatInt(int64(id), 10)
	default:
		return ""
	}
}
