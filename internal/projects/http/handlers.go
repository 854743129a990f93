package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/birqadam/volunteer-backend/internal/auth"
	"github.com/birqadam/volunteer-backend/internal/projects/domain"
)

func (h *Handler) create(c *gin.Context) {
	caller, _ := auth.CurrentOrganizer(c)

	// The gate answers before the body is looked at, so unauthorized callers
	// learn nothing about which fields are missing.
	if err := h.svc.Authorize(caller); err != nil {
		writeError(c, err)
		return
	}

	// An empty body is an empty field map, not a malformed one.
	var req createReq
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, domain.ErrInvalidBody)
			return
		}
	}

	p, err := h.svc.Create(c.Request.Context(), caller, req.toInput())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toCreateResponse(p))
}
