package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/respicy/backend/internal/models"
	"github.com/respicy/backend/internal/types"
)

// Defaults applied when a recipe is created without the optional fields.
const (
	DefaultCookingTime = 30
	DefaultServings    = 4
	DefaultDifficulty  = "medium"
	DefaultCuisine     = "other"
)

// RecipeService handles recipe CRUD, scoped by ownership and visibility.
type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// CreateRecipe validates required fields, applies defaults and persists the recipe.
func (s *RecipeService) CreateRecipe(ctx context.Context, ownerID uuid.UUID, req *types.CreateRecipeRequest) (*models.Recipe, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" || ownerID == uuid.Nil {
		return nil, NewValidationError("title, description and owner are required")
	}

	recipe := models.Recipe{
		Title:        req.Title,
		Description:  req.Description,
		Ingredients:  models.IngredientList(req.Ingredients),
		Instructions: models.StepList(req.Instructions),
		CookingTime:  DefaultCookingTime,
		Servings:     DefaultServings,
		Difficulty:   DefaultDifficulty,
		Cuisine:      DefaultCuisine,
		IsPublic:     true,
		ImageURL:     req.ImageURL,
		UserID:       ownerID,
	}
	if recipe.Ingredients == nil {
		recipe.Ingredients = models.IngredientList{}
	}
	if recipe.Instructions == nil {
		recipe.Instructions = models.StepList{}
	}
	if req.CookingTime != nil {
		recipe.CookingTime = *req.CookingTime
	}
	if req.Servings != nil {
		recipe.Servings = *req.Servings
	}
	if req.Difficulty != "" {
		recipe.Difficulty = req.Difficulty
	}
	if req.Cuisine != "" {
		recipe.Cuisine = req.Cuisine
	}
	if req.IsPublic != nil {
		recipe.IsPublic = *req.IsPublic
	}

	if err := validateRecipe(&recipe); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GetRecipe retrieves a recipe by ID.
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// ListByOwner returns all of a user's recipes, newest first.
func (s *RecipeService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := s.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// ListPublic returns all public recipes, newest first.
func (s *RecipeService) ListPublic(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := s.db.WithContext(ctx).
		Where("is_public = ?", true).
		Order("created_at DESC").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// UpdateRecipe applies a partial update; only provided fields change. The
// requester must own the recipe.
func (s *RecipeService) UpdateRecipe(ctx context.Context, id, requesterID uuid.UUID, req *types.UpdateRecipeRequest) (*models.Recipe, error) {
	recipe, err := s.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}
	if recipe.UserID != requesterID {
		return nil, ErrForbidden
	}

	if req.Title != nil {
		recipe.Title = *req.Title
	}
	if req.Description != nil {
		recipe.Description = *req.Description
	}
	if req.Ingredients != nil {
		recipe.Ingredients = models.IngredientList(*req.Ingredients)
	}
	if req.Instructions != nil {
		recipe.Instructions = models.StepList(*req.Instructions)
	}
	if req.CookingTime != nil {
		recipe.CookingTime = *req.CookingTime
	}
	if req.Servings != nil {
		recipe.Servings = *req.Servings
	}
	if req.Difficulty != nil {
		recipe.Difficulty = *req.Difficulty
	}
	if req.Cuisine != nil {
		recipe.Cuisine = *req.Cuisine
	}
	if req.IsPublic != nil {
		recipe.IsPublic = *req.IsPublic
	}
	if req.ImageURL != nil {
		recipe.ImageURL = *req.ImageURL
	}

	if err := validateRecipe(recipe); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Save(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

// DeleteRecipe removes a recipe after verifying the requester owns it.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id, requesterID uuid.UUID) error {
	recipe, err := s.GetRecipe(ctx, id)
	if err != nil {
		return err
	}
	if recipe.UserID != requesterID {
		return ErrForbidden
	}
	return s.db.WithContext(ctx).Delete(&models.Recipe{}, "id = ?", id).Error
}

// CountAll reports the total number of recipes and how many are public.
func (s *RecipeService) CountAll(ctx context.Context) (total, public int64, err error) {
	if err = s.db.WithContext(ctx).Model(&models.Recipe{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err = s.db.WithContext(ctx).Model(&models.Recipe{}).Where("is_public = ?", true).Count(&public).Error; err != nil {
		return 0, 0, err
	}
	return total, public, nil
}

func validateRecipe(r *models.Recipe) error {
	if strings.TrimSpace(r.Title) == "" {
		return NewValidationError("title is required")
	}
	if strings.TrimSpace(r.Description) == "" {
		return NewValidationError("description is required")
	}
	if r.CookingTime <= 0 {
		return NewValidationError("cooking time must be positive")
	}
	if r.Servings <= 0 {
		return NewValidationError("servings must be positive")
	}
	switch r.Difficulty {
	case "easy", "medium", "hard":
	default:
		return NewValidationError("difficulty must be easy, medium or hard")
	}
	return nil
}
