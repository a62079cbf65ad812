package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/traveljournal/tj_backend/internal/core/ports/services"
	"github.com/traveljournal/tj_backend/internal/middleware"
	"github.com/traveljournal/tj_backend/internal/platform/config"
	"github.com/traveljournal/tj_backend/internal/platform/storage"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	photoStore *storage.PhotoStore,
) {
	r.GET("/", getHome)

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services.User)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services, photoStore)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	photoStore *storage.PhotoStore,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	// Delegate route registration to specific handlers, passing required services
	registerUserRoutes(v1, services.User)
	registerJournalRoutes(v1, services.Journal, services.Export)
	registerEntryRoutes(v1, services.Entry, services.Journal)
	registerMediaRoutes(v1, services.Media, services.Entry)
	registerPhotoRoutes(v1, services.Photo, services.Entry, photoStore)
	registerSubscriptionRoutes(v1, services.Subscription, services.User)

	// Admin group requires the admin role on top of authentication
	admin := v1.Group("/admin", middleware.RequireAdmin())
	registerAdminRoutes(admin, services.Journal, services.Entry, services.User)
}
