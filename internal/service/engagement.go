package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/respicy/backend/internal/logger"
	"github.com/respicy/backend/internal/models"
)

// EngagementStatus is the rate/favorite state of one user against one recipe.
type EngagementStatus struct {
	Rated      bool  `json:"rated"`
	Favorited  bool  `json:"favorited"`
	RatedCount int64 `json:"rated_count"`
}

// EngagementService flips per-user rating and favorite membership on recipes.
// Membership rows are the single source of truth; toggles are atomic
// delete-or-insert operations so concurrent flips from different users are
// never lost.
type EngagementService struct {
	db    *gorm.DB
	cache *redis.Client
}

// NewEngagementService creates an EngagementService. cache may be nil, in
// which case no favorites cache is maintained.
func NewEngagementService(db *gorm.DB, cache *redis.Client) *EngagementService {
	return &EngagementService{db: db, cache: cache}
}

func favoritesCacheKey(userID uuid.UUID) string {
	return fmt.Sprintf("favorites:%s", userID)
}

// ToggleRating flips userID's membership in the recipe's rated set and
// returns the new membership state plus the rated count.
func (s *EngagementService) ToggleRating(ctx context.Context, recipeID, userID uuid.UUID) (rated bool, ratedCount int64, err error) {
	rated, err = s.toggle(ctx, recipeID, userID, models.EngagementRated)
	if err != nil {
		return false, 0, err
	}
	ratedCount, err = s.count(ctx, recipeID, models.EngagementRated)
	if err != nil {
		return false, 0, err
	}
	return rated, ratedCount, nil
}

// ToggleFavorite flips userID's membership in the recipe's favorited set.
func (s *EngagementService) ToggleFavorite(ctx context.Context, recipeID, userID uuid.UUID) (favorited bool, err error) {
	favorited, err = s.toggle(ctx, recipeID, userID, models.EngagementFavorited)
	if err != nil {
		return false, err
	}

	// The cached favorites list is a derived view; drop it so the next read
	// rebuilds from the membership rows.
	if s.cache != nil {
		if err := s.cache.Del(ctx, favoritesCacheKey(userID)).Err(); err != nil {
			logger.Log.Warnw("failed to invalidate favorites cache", "user_id", userID, "error", err)
		}
	}
	return favorited, nil
}

// GetStatus reports membership and rated count without mutating anything.
// A recipe nobody has engaged with yet reports all-false/zero.
func (s *EngagementService) GetStatus(ctx context.Context, recipeID, userID uuid.UUID) (*EngagementStatus, error) {
	if err := s.recipeExists(ctx, recipeID); err != nil {
		return nil, err
	}

	status := &EngagementStatus{}

	var n int64
	err := s.db.WithContext(ctx).Model(&models.RecipeRecord{}).
		Where("recipe_id = ? AND user_id = ? AND kind = ?", recipeID, userID, models.EngagementRated).
		Count(&n).Error
	if err != nil {
		return nil, err
	}
	status.Rated = n > 0

	err = s.db.WithContext(ctx).Model(&models.RecipeRecord{}).
		Where("recipe_id = ? AND user_id = ? AND kind = ?", recipeID, userID, models.EngagementFavorited).
		Count(&n).Error
	if err != nil {
		return nil, err
	}
	status.Favorited = n > 0

	status.RatedCount, err = s.count(ctx, recipeID, models.EngagementRated)
	if err != nil {
		return nil, err
	}
	return status, nil
}

func (s *EngagementService) toggle(ctx context.Context, recipeID, userID uuid.UUID, kind string) (bool, error) {
	if err := s.recipeExists(ctx, recipeID); err != nil {
		return false, err
	}

	res := s.db.WithContext(ctx).
		Where("recipe_id = ? AND user_id = ? AND kind = ?", recipeID, userID, kind).
		Delete(&models.RecipeRecord{})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return false, nil
	}

	record := models.RecipeRecord{
		RecipeID: recipeID,
		UserID:   userID,
		Kind:     kind,
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&record).Error
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *EngagementService) count(ctx context.Context, recipeID uuid.UUID, kind string) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.RecipeRecord{}).
		Where("recipe_id = ? AND kind = ?", recipeID, kind).
		Count(&n).Error
	return n, err
}

func (s *EngagementService) recipeExists(ctx context.Context, recipeID uuid.UUID) error {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Recipe{}).
		Where("id = ?", recipeID).
		Count(&n).Error
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
