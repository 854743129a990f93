package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	authdomain "github.com/birqadam/volunteer-backend/internal/auth/domain"
	"github.com/birqadam/volunteer-backend/internal/logutils"
)

// OrganizerLookup resolves a token subject to its account flags.
type OrganizerLookup interface {
	GetOrganizer(ctx context.Context, uid string) (authdomain.Organizer, error)
}

// WithOrganizer loads the caller's account after authentication. An unknown
// subject becomes an organizer with no privileges, so the project gate
// answers it with 403 like any other unprivileged caller.
func WithOrganizer(lookup OrganizerLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := UserUID(c)
		if uid == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
			return
		}

		o, err := lookup.GetOrganizer(c.Request.Context(), uid)
		switch {
		case errors.Is(err, authdomain.ErrUserNotFound):
			o = authdomain.Organizer{UID: uid}
		case err != nil:
			logutils.FromContext(c.Request.Context()).WithError(err).WithField("uid", uid).Error("load organizer")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to load account"})
			return
		}

		c.Set(CtxOrganizer, o)
		c.Next()
	}
}
