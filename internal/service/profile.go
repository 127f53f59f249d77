package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/respicy/backend/internal/logger"
	"github.com/respicy/backend/internal/models"
	"github.com/respicy/backend/internal/types"
)

const favoritesCacheTTL = 5 * time.Minute

// AvatarStore normalizes uploaded avatar binaries to a stored URL.
type AvatarStore interface {
	Store(ctx context.Context, userID uuid.UUID, data []byte, contentType string) (string, error)
}

// ProfileService handles user profile reads and partial updates. The
// cross-reference lists on a profile are derived from the recipe, meal plan
// and engagement relations; the favorites list is additionally cached in
// Redis as an eventually-consistent view.
type ProfileService struct {
	db      *gorm.DB
	cache   *redis.Client
	avatars AvatarStore
}

// NewProfileService creates a ProfileService. cache and avatars may be nil;
// without a cache every read hits the store, without an avatar store blob
// uploads are rejected.
func NewProfileService(db *gorm.DB, cache *redis.Client, avatars AvatarStore) *ProfileService {
	return &ProfileService{db: db, cache: cache, avatars: avatars}
}

// GetByID returns the public profile plus cross-reference id lists.
func (s *ProfileService) GetByID(ctx context.Context, id uuid.UUID) (*types.ProfileView, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	view := &types.ProfileView{
		PublicUser: types.NewPublicUser(&user),
		Recipes:    []uuid.UUID{},
		MealPlans:  []uuid.UUID{},
	}

	if err := s.db.WithContext(ctx).Model(&models.Recipe{}).
		Where("user_id = ?", id).Order("created_at DESC").
		Pluck("id", &view.Recipes).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&models.MealPlan{}).
		Where("user_id = ?", id).Order("created_at DESC").
		Pluck("id", &view.MealPlans).Error; err != nil {
		return nil, err
	}

	var err error
	if view.Rated, err = s.listEngagements(ctx, id, models.EngagementRated); err != nil {
		return nil, err
	}
	if view.Favorites, err = s.favorites(ctx, id); err != nil {
		return nil, err
	}
	return view, nil
}

// UpdateProfile merges a partial update into the stored profile. Omitted
// fields keep their previous values. Avatar input is normalized to the URL
// representation before it is stored.
func (s *ProfileService) UpdateProfile(ctx context.Context, id uuid.UUID, req *types.UpdateProfileRequest) (*types.PublicUser, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, NewValidationError("name cannot be empty")
		}
		user.Name = *req.Name
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Avatar != nil {
		url, err := s.normalizeAvatar(ctx, id, req.Avatar)
		if err != nil {
			return nil, err
		}
		user.AvatarURL = url
	}
	if req.Preferences != nil {
		user.Preferences = *req.Preferences
		if user.Preferences.Cuisines == nil {
			user.Preferences.Cuisines = []string{}
		}
	}

	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return nil, err
	}

	pub := types.NewPublicUser(&user)
	return &pub, nil
}

// StoreAvatarBlob uploads an avatar binary, stores the resulting URL on the
// user and returns it.
func (s *ProfileService) StoreAvatarBlob(ctx context.Context, id uuid.UUID, data []byte, contentType string) (string, error) {
	avatar := &types.Avatar{Kind: "blob", Data: data, ContentType: contentType}
	pub, err := s.UpdateProfile(ctx, id, &types.UpdateProfileRequest{Avatar: avatar})
	if err != nil {
		return "", err
	}
	return pub.AvatarURL, nil
}

// CountUsers reports the total number of registered users.
func (s *ProfileService) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.User{}).Count(&n).Error
	return n, err
}

func (s *ProfileService) normalizeAvatar(ctx context.Context, id uuid.UUID, avatar *types.Avatar) (string, error) {
	switch avatar.Kind {
	case "url", "":
		return avatar.Value, nil
	case "blob":
		if s.avatars == nil {
			return "", NewValidationError("avatar uploads are not enabled")
		}
		if len(avatar.Data) == 0 {
			return "", NewValidationError("avatar data is empty")
		}
		return s.avatars.Store(ctx, id, avatar.Data, avatar.ContentType)
	default:
		return "", NewValidationError("avatar kind must be url or blob")
	}
}

// favorites reads the favorites list through the cache. A cache miss or any
// cache failure falls back to the membership rows.
func (s *ProfileService) favorites(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
	key := favoritesCacheKey(id)
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, key).Bytes(); err == nil {
			var ids []uuid.UUID
			if err := json.Unmarshal(raw, &ids); err == nil {
				return ids, nil
			}
		}
	}

	ids, err := s.listEngagements(ctx, id, models.EngagementFavorited)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(ids); err == nil {
			if err := s.cache.Set(ctx, key, raw, favoritesCacheTTL).Err(); err != nil {
				logger.Log.Warnw("failed to cache favorites", "user_id", id, "error", err)
			}
		}
	}
	return ids, nil
}

func (s *ProfileService) listEngagements(ctx context.Context, userID uuid.UUID, kind string) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	err := s.db.WithContext(ctx).Model(&models.RecipeRecord{}).
		Where("user_id = ? AND kind = ?", userID, kind).
		Order("created_at DESC").
		Pluck("recipe_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
