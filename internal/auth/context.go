package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	authdomain "github.com/birqadam/volunteer-backend/internal/auth/domain"
)

const (
	CtxUserUID   = "user_uid"
	CtxEmail     = "email"
	CtxOrganizer = "organizer"
)

// UserUID extracts the token subject from the Gin context.
// This is set by the bearer/header auth middlewares.
func UserUID(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxUserUID))
}

// SetIdentity stores a verified identity on the Gin context.
func SetIdentity(c *gin.Context, id authdomain.Identity) {
	c.Set(CtxUserUID, id.UID)
	if id.Email != "" {
		c.Set(CtxEmail, id.Email)
	}
}

// CurrentOrganizer returns the organizer resolved by WithOrganizer.
func CurrentOrganizer(c *gin.Context) (authdomain.Organizer, bool) {
	v, ok := c.Get(CtxOrganizer)
	if !ok {
		return authdomain.Organizer{}, false
	}
	o, ok := v.(authdomain.Organizer)
	return o, ok
}
