package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/respicy/backend/internal/middleware"
	"github.com/respicy/backend/internal/service"
	"github.com/respicy/backend/internal/types"
)

// MealPlanHandler serves meal plan CRUD. Every route requires a bearer
// token; ownership of mutations is enforced by the service.
type MealPlanHandler struct {
	mealPlanService service.IMealPlanService
	authService     service.IAuthService
}

func NewMealPlanHandler(mealPlanService service.IMealPlanService, authService service.IAuthService) *MealPlanHandler {
	return &MealPlanHandler{
		mealPlanService: mealPlanService,
		authService:     authService,
	}
}

func (h *MealPlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	plans := router.Group("/meal-plans")
	plans.Use(middleware.AuthMiddleware(h.authService))
	{
		plans.POST("", h.Create)
		plans.GET("/user/:userId", h.ListByOwner)
		plans.GET("/:id", h.GetByID)
		plans.PUT("/:id", h.Update)
		plans.DELETE("/:id", h.Delete)
	}
}

func (h *MealPlanHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "user not authenticated"})
		return
	}

	var req types.CreateMealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	plan, err := h.mealPlanService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (h *MealPlanHandler) ListByOwner(c *gin.Context) {
	ownerID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid user id"})
		return
	}

	plans, err := h.mealPlanService.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

func (h *MealPlanHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid meal plan id"})
		return
	}

	plan, err := h.mealPlanService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *MealPlanHandler) Update(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "user not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid meal plan id"})
		return
	}

	var req types.UpdateMealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	plan, err := h.mealPlanService.Update(c.Request.Context(), id, userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			forbidden(c, "Not authorized to modify this meal plan")
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *MealPlanHandler) Delete(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "user not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid meal plan id"})
		return
	}

	if err := h.mealPlanService.Delete(c.Request.Context(), id, userID); err != nil {
		if errors.Is(err, service.ErrForbidden) {
			forbidden(c, "Not authorized to modify this meal plan")
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal plan deleted successfully"})
}
