package bootstrap

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/birqadam/volunteer-backend/config"
	"github.com/birqadam/volunteer-backend/internal/auth"
	authmw "github.com/birqadam/volunteer-backend/internal/auth/middleware"
	"github.com/birqadam/volunteer-backend/internal/logutils"
)

// AuthMiddleware picks the identity middleware for the configured mode.
func AuthMiddleware(ctx context.Context, cfg config.AuthConfig) (gin.HandlerFunc, error) {
	switch cfg.Mode {
	case config.AuthModeFirebase:
		client, err := auth.InitializeFirebase(ctx, cfg.FirebaseCredentialsPath)
		if err != nil {
			return nil, err
		}
		return authmw.BearerAuthMiddleware(auth.NewFirebaseVerifier(client)), nil
	case config.AuthModeJWT:
		return authmw.BearerAuthMiddleware(auth.NewJWTVerifier(cfg.JWTSecret)), nil
	case config.AuthModeHeader:
		logutils.Log.Warn("AUTH_MODE=header trusts X-User-Id; development only")
		return authmw.HeaderAuthMiddleware(), nil
	default:
		return nil, fmt.Errorf("unknown auth mode %q", cfg.Mode)
	}
}
