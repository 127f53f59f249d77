package types

import (
	"github.com/google/uuid"

	"github.com/respicy/backend/internal/models"
)

// PublicUser is the set of user fields safe to return to clients.
type PublicUser struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	Username    string             `json:"username"`
	Email       string             `json:"email"`
	Bio         string             `json:"bio"`
	AvatarURL   string             `json:"avatar_url"`
	Preferences models.Preferences `json:"preferences"`
}

// NewPublicUser projects a stored user onto its public fields.
func NewPublicUser(u *models.User) PublicUser {
	return PublicUser{
		ID:          u.ID,
		Name:        u.Name,
		Username:    u.Username,
		Email:       u.Email,
		Bio:         u.Bio,
		AvatarURL:   u.AvatarURL,
		Preferences: u.Preferences,
	}
}

// ProfileView is a public user plus the cross-reference id lists derived
// from the recipe, meal plan and engagement relations.
type ProfileView struct {
	PublicUser
	Recipes   []uuid.UUID `json:"recipes"`
	MealPlans []uuid.UUID `json:"meal_plans"`
	Rated     []uuid.UUID `json:"rated"`
	Favorites []uuid.UUID `json:"favorites"`
}
