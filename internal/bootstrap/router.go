package bootstrap

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/birqadam/volunteer-backend/internal/api/http"
	"github.com/birqadam/volunteer-backend/internal/api/http/middleware"
	"github.com/birqadam/volunteer-backend/internal/auth"
	authhttp "github.com/birqadam/volunteer-backend/internal/auth/http"
	"github.com/birqadam/volunteer-backend/internal/logutils"
	projectshttp "github.com/birqadam/volunteer-backend/internal/projects/http"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	CORSOrigins []string

	DB    httpapi.Pinger
	Redis *redis.Client

	// Auth sets the caller identity. Organizers resolves it to account
	// flags for the create gate and must read the source of truth.
	// ProfileOrganizers serves /me and may be cached; it defaults to
	// Organizers.
	Auth              gin.HandlerFunc
	Organizers        auth.OrganizerLookup
	ProfileOrganizers auth.OrganizerLookup
	Projects          projectshttp.ProjectCreator

	CreateLimiter *middleware.KeyedLimiter

	// Metrics defaults to the global Prometheus registry.
	Metrics http.Handler
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestIDMiddleware())
	r.Use(gin.CustomRecovery(recoverJSON))
	r.Use(cors.New(corsConfig(dep.CORSOrigins)))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	metrics := dep.Metrics
	if metrics == nil {
		metrics = promhttp.Handler()
	}
	r.GET("/metrics", gin.WrapH(metrics))

	profiles := dep.ProfileOrganizers
	if profiles == nil {
		profiles = dep.Organizers
	}

	api := r.Group("/api/v1", dep.Auth)

	projectsGroup := api.Group("/organizer/projects", auth.WithOrganizer(dep.Organizers))
	projectshttp.New(dep.Projects).Register(projectsGroup, middleware.RateLimitMiddleware(dep.CreateLimiter))

	authhttp.New().Register(api.Group("/me", auth.WithOrganizer(profiles)))

	return r
}

func recoverJSON(c *gin.Context, recovered any) {
	logutils.FromContext(c.Request.Context()).WithField("panic", recovered).Error("handler panicked")
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders: []string{middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}

	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
