package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/respicy/backend/internal/middleware"
	"github.com/respicy/backend/internal/service"
)

// EngagementHandler serves the rate/favorite toggles and status reads.
type EngagementHandler struct {
	engagementService service.IEngagementService
	authService       service.IAuthService
}

func NewEngagementHandler(engagementService service.IEngagementService, authService service.IAuthService) *EngagementHandler {
	return &EngagementHandler{
		engagementService: engagementService,
		authService:       authService,
	}
}

func (h *EngagementHandler) RegisterRoutes(router *gin.RouterGroup) {
	records := router.Group("/recipe-records")
	records.Use(middleware.AuthMiddleware(h.authService))
	{
		records.POST("/:id/rate", h.ToggleRating)
		records.POST("/:id/favorite", h.ToggleFavorite)
		records.GET("/:id/user/:userId/status", h.GetStatus)
	}
}

func (h *EngagementHandler) ToggleRating(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "user not authenticated"})
		return
	}

	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid recipe id"})
		return
	}

	rated, ratedCount, err := h.engagementService.ToggleRating(c.Request.Context(), recipeID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rated":       rated,
		"rated_count": ratedCount,
	})
}

func (h *EngagementHandler) ToggleFavorite(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "user not authenticated"})
		return
	}

	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid recipe id"})
		return
	}

	favorited, err := h.engagementService.ToggleFavorite(c.Request.Context(), recipeID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorited": favorited})
}

func (h *EngagementHandler) GetStatus(c *gin.Context) {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid recipe id"})
		return
	}
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid user id"})
		return
	}

	status, err := h.engagementService.GetStatus(c.Request.Context(), recipeID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}
