package router

import (
	"github.com/gin-gonic/gin"

	"github.com/respicy/backend/internal/api"
	"github.com/respicy/backend/internal/logger"
	"github.com/respicy/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	authHandler *api.AuthHandler,
	userHandler *api.UserHandler,
	recipeHandler *api.RecipeHandler,
	mealPlanHandler *api.MealPlanHandler,
	engagementHandler *api.EngagementHandler,
	statsHandler *api.StatsHandler,
	allowedOrigins []string,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger.Log))
	router.Use(middleware.CORS(allowedOrigins))

	root := router.Group("/api")

	authHandler.RegisterRoutes(root)
	userHandler.RegisterRoutes(root)
	recipeHandler.RegisterRoutes(root)
	mealPlanHandler.RegisterRoutes(root)
	engagementHandler.RegisterRoutes(root)
	statsHandler.RegisterRoutes(root)

	return router
}
