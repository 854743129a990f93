package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/birqadam/volunteer-backend/internal/auth"
)

// getProfile returns the caller's account flags as the project gate sees them.
func (h *Handler) getProfile(c *gin.Context) {
	o, ok := auth.CurrentOrganizer(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	email := o.Email
	if email == "" {
		email = c.GetString(auth.CtxEmail)
	}
	o.Email = email

	c.JSON(http.StatusOK, gin.H{"user": toProfileResponse(o)})
}
