package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/birqadam/volunteer-backend/internal/auth"
	"github.com/birqadam/volunteer-backend/internal/logutils"
)

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, logutils.RequestID(c.Request.Context()))
	})

	t.Run("echoes the caller's id", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, "/ping", nil)
		require.NoError(t, err)
		req.Header.Set(HeaderRequestID, "req-123")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, "req-123", rr.Header().Get(HeaderRequestID))
		assert.Equal(t, "req-123", rr.Body.String())
	})

	t.Run("generates one when absent", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, "/ping", nil)
		require.NoError(t, err)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		rid := rr.Header().Get(HeaderRequestID)
		assert.Len(t, rid, 36)
		assert.Equal(t, rid, rr.Body.String())
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/projects",
		func(c *gin.Context) {
			if uid := c.GetHeader("X-User-Id"); uid != "" {
				c.Set(auth.CtxUserUID, uid)
			}
			c.Next()
		},
		RateLimitMiddleware(NewKeyedLimiter(1, 2)),
		func(c *gin.Context) { c.Status(http.StatusCreated) },
	)

	post := func(uid string) int {
		req, err := http.NewRequest(http.MethodPost, "/projects", nil)
		require.NoError(t, err)
		if uid != "" {
			req.Header.Set("X-User-Id", uid)
		}
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusCreated, post("org-1"))
	assert.Equal(t, http.StatusCreated, post("org-1"))
	assert.Equal(t, http.StatusTooManyRequests, post("org-1"))

	// Buckets are per caller.
	assert.Equal(t, http.StatusCreated, post("org-2"))
	assert.Equal(t, http.StatusCreated, post(""))
}

func TestRateLimitMiddleware_NilLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/x", RateLimitMiddleware(nil), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for i := 0; i < 5; i++ {
		req, err := http.NewRequest(http.MethodGet, "/x", nil)
		require.NoError(t, err)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNoContent, rr.Code)
	}
}
