package types

import "github.com/respicy/backend/internal/models"

// Avatar is the tagged input variant for a user's picture: either a direct
// reference or an uploaded binary. Blobs are normalized to a stored URL by
// the avatar store before anything is persisted.
type Avatar struct {
	Kind        string `json:"kind"` // "url" or "blob"
	Value       string `json:"value,omitempty"`
	Data        []byte `json:"data,omitempty"`
	ContentType string `json:"content_type,omitempty"`
}

// UpdateProfileRequest is a partial profile update. Nil fields keep their
// previous values.
type UpdateProfileRequest struct {
	Name        *string             `json:"name"`
	Bio         *string             `json:"bio"`
	Avatar      *Avatar             `json:"avatar"`
	Preferences *models.Preferences `json:"preferences"`
}

// CreateRecipeRequest carries the client-supplied recipe fields. Owner is
// always taken from the verified token, never from the body.
type CreateRecipeRequest struct {
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Ingredients  []models.Ingredient `json:"ingredients"`
	Instructions []models.Step       `json:"instructions"`
	CookingTime  *int                `json:"cooking_time"`
	Servings     *int                `json:"servings"`
	Difficulty   string              `json:"difficulty"`
	Cuisine      string              `json:"cuisine"`
	IsPublic     *bool               `json:"is_public"`
	ImageURL     string              `json:"image_url"`
}

// UpdateRecipeRequest is a partial recipe update. Nil fields keep their
// previous values.
type UpdateRecipeRequest struct {
	Title        *string              `json:"title"`
	Description  *string              `json:"description"`
	Ingredients  *[]models.Ingredient `json:"ingredients"`
	Instructions *[]models.Step       `json:"instructions"`
	CookingTime  *int                 `json:"cooking_time"`
	Servings     *int                 `json:"servings"`
	Difficulty   *string              `json:"difficulty"`
	Cuisine      *string              `json:"cuisine"`
	IsPublic     *bool                `json:"is_public"`
	ImageURL     *string              `json:"image_url"`
}

// CreateMealPlanRequest carries the client-supplied meal plan fields.
type CreateMealPlanRequest struct {
	PlanName    string           `json:"plan_name"`
	Description string           `json:"description"`
	Days        *models.PlanDays `json:"days"`
}

// UpdateMealPlanRequest is a partial meal plan update.
type UpdateMealPlanRequest struct {
	PlanName    *string          `json:"plan_name"`
	Description *string          `json:"description"`
	Days        *models.PlanDays `json:"days"`
}
