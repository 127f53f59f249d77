package server

import (
	"context"
	"net/http"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/respicy/backend/config"
	"github.com/respicy/backend/internal/api"
	"github.com/respicy/backend/internal/middleware"
	"github.com/respicy/backend/internal/router"
	"github.com/respicy/backend/internal/service"
)

// Server wires the services and handlers onto an HTTP server.
type Server struct {
	http *http.Server
}

// New assembles the full service stack. redisClient and avatars may be nil;
// the affected features degrade gracefully.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, avatars service.AvatarStore) *Server {
	authService := service.NewAuthService(db, cfg.JWTSecret)
	profileService := service.NewProfileService(db, redisClient, avatars)
	recipeService := service.NewRecipeService(db)
	mealPlanService := service.NewMealPlanService(db)
	engagementService := service.NewEngagementService(db, redisClient)

	limiter := middleware.NewLoginRateLimiter(redisClient)

	engine := router.SetupRouter(
		api.NewAuthHandler(authService, limiter),
		api.NewUserHandler(profileService, authService),
		api.NewRecipeHandler(recipeService, authService),
		api.NewMealPlanHandler(mealPlanService, authService),
		api.NewEngagementHandler(engagementService, authService),
		api.NewStatsHandler(profileService, recipeService, authService),
		cfg.AllowedOrigins,
	)

	return &Server{
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: engine,
		},
	}
}

// Start runs the server until it is shut down.
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
