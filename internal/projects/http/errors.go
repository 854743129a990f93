package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/birqadam/volunteer-backend/internal/logutils"
	"github.com/birqadam/volunteer-backend/internal/projects/domain"
)

var validationErrors = []error{
	domain.ErrMissingFields,
	domain.ErrInvalidCoordinate,
	domain.ErrInvalidVolunteerType,
	domain.ErrInvalidBody,
}

// writeError maps err onto the endpoint's error contract: {"error": msg}.
func writeError(c *gin.Context, err error) {
	status, msg := mapError(err)

	entry := logutils.FromContext(c.Request.Context()).WithError(err)
	switch status {
	case http.StatusInternalServerError:
		entry.Error("create project failed")
	default:
		entry.WithField("status", status).Debug("create project rejected")
	}

	c.JSON(status, gin.H{"error": msg})
}

func mapError(err error) (int, string) {
	switch domain.KindOf(err) {
	case domain.KindAuthorization:
		return http.StatusForbidden, domain.ErrNotAuthorized.Error()
	case domain.KindValidation:
		for _, target := range validationErrors {
			if errors.Is(err, target) {
				return http.StatusBadRequest, target.Error()
			}
		}
		return http.StatusBadRequest, err.Error()
	case domain.KindPersistence:
		return http.StatusInternalServerError, domain.ErrPersistence.Error()
	default:
		return http.StatusInternalServerError, err.Error()
	}
}
