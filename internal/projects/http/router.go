package http

import "github.com/gin-gonic/gin"

// Register attaches project routes to the given router group. Extra
// handlers (rate limiting) run in front of create only.
func (h *Handler) Register(rg *gin.RouterGroup, createMiddleware ...gin.HandlerFunc) {
	rg.POST("", append(createMiddleware, h.create)...)
}
