package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/respicy/backend/internal/models"
	"github.com/respicy/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, name, username, email, password string) (*models.User, string, error)
	Login(ctx context.Context, identifier, password string) (*models.User, string, error)
	GenerateToken(userID uuid.UUID, isAdmin bool) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IProfileService defines the interface for user profile operations
type IProfileService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*types.ProfileView, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req *types.UpdateProfileRequest) (*types.PublicUser, error)
	StoreAvatarBlob(ctx context.Context, id uuid.UUID, data []byte, contentType string) (string, error)
	CountUsers(ctx context.Context) (int64, error)
}

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	CreateRecipe(ctx context.Context, ownerID uuid.UUID, req *types.CreateRecipeRequest) (*models.Recipe, error)
	GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Recipe, error)
	ListPublic(ctx context.Context) ([]models.Recipe, error)
	UpdateRecipe(ctx context.Context, id, requesterID uuid.UUID, req *types.UpdateRecipeRequest) (*models.Recipe, error)
	DeleteRecipe(ctx context.Context, id, requesterID uuid.UUID) error
	CountAll(ctx context.Context) (total, public int64, err error)
}

// IMealPlanService defines the interface for meal plan operations
type IMealPlanService interface {
	Create(ctx context.Context, ownerID uuid.UUID, req *types.CreateMealPlanRequest) (*models.MealPlan, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.MealPlan, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.MealPlan, error)
	Update(ctx context.Context, id, requesterID uuid.UUID, req *types.UpdateMealPlanRequest) (*models.MealPlan, error)
	Delete(ctx context.Context, id, requesterID uuid.UUID) error
}

// IEngagementService defines the interface for rate/favorite operations
type IEngagementService interface {
	ToggleRating(ctx context.Context, recipeID, userID uuid.UUID) (rated bool, ratedCount int64, err error)
	ToggleFavorite(ctx context.Context, recipeID, userID uuid.UUID) (favorited bool, err error)
	GetStatus(ctx context.Context, recipeID, userID uuid.UUID) (*EngagementStatus, error)
}

var (
	_ IAuthService       = (*AuthService)(nil)
	_ IProfileService    = (*ProfileService)(nil)
	_ IRecipeService     = (*RecipeService)(nil)
	_ IMealPlanService   = (*MealPlanService)(nil)
	_ IEngagementService = (*EngagementService)(nil)
)
