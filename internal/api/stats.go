package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/respicy/backend/internal/middleware"
	"github.com/respicy/backend/internal/service"
)

// StatsHandler serves document counts and the admin dashboard numbers.
type StatsHandler struct {
	profileService service.IProfileService
	recipeService  service.IRecipeService
	authService    service.IAuthService
}

func NewStatsHandler(profileService service.IProfileService, recipeService service.IRecipeService, authService service.IAuthService) *StatsHandler {
	return &StatsHandler{
		profileService: profileService,
		recipeService:  recipeService,
		authService:    authService,
	}
}

func (h *StatsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/users/count/total", h.CountUsers)
	router.GET("/recipes/count/total", h.CountRecipes)

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(h.authService), middleware.AdminRequired())
	{
		admin.GET("/dashboard/stats", h.DashboardStats)
	}
}

func (h *StatsHandler) CountUsers(c *gin.Context) {
	count, err := h.profileService.CountUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *StatsHandler) CountRecipes(c *gin.Context) {
	total, _, err := h.recipeService.CountAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": total})
}

func (h *StatsHandler) DashboardStats(c *gin.Context) {
	userCount, err := h.profileService.CountUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	total, public, err := h.recipeService.CountAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_count":      userCount,
		"recipe_count":    total,
		"public_recipes":  public,
		"private_recipes": total - public,
	})
}
