package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Engagement kinds tracked per (recipe, user) pair.
const (
	EngagementRated     = "rated"
	EngagementFavorited = "favorited"
)

// RecipeRecord is one membership row in a recipe's rated or favorited set.
// The composite unique index makes inserts and deletes atomic set operations,
// so concurrent toggles from different users never lose updates. Rows are
// hard-deleted on toggle-off; a soft delete would block re-insertion under
// the unique index.
type RecipeRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	RecipeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_recipe_records_membership" json:"recipe_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_recipe_records_membership;index" json:"user_id"`
	Kind      string    `gorm:"size:16;not null;uniqueIndex:idx_recipe_records_membership" json:"kind"`
}

func (RecipeRecord) TableName() string {
	return "recipe_records"
}

func (r *RecipeRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
