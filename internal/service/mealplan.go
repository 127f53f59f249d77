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

// MealPlanService handles meal plan CRUD, scoped by ownership. Every
// mutating operation re-checks that the requester owns the plan.
type MealPlanService struct {
	db *gorm.DB
}

func NewMealPlanService(db *gorm.DB) *MealPlanService {
	return &MealPlanService{db: db}
}

// Create persists a meal plan with every weekday slot normalized to a
// complete {meal, ingredients, instructions} structure.
func (s *MealPlanService) Create(ctx context.Context, ownerID uuid.UUID, req *types.CreateMealPlanRequest) (*models.MealPlan, error) {
	if strings.TrimSpace(req.PlanName) == "" || ownerID == uuid.Nil {
		return nil, NewValidationError("plan name and owner are required")
	}

	plan := models.MealPlan{
		PlanName:    req.PlanName,
		Description: req.Description,
		UserID:      ownerID,
	}
	if req.Days != nil {
		plan.Days = *req.Days
	}
	plan.Days.Normalize()

	if err := s.db.WithContext(ctx).Create(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

// GetByID retrieves a meal plan by ID.
func (s *MealPlanService) GetByID(ctx context.Context, id uuid.UUID) (*models.MealPlan, error) {
	var plan models.MealPlan
	if err := s.db.WithContext(ctx).First(&plan, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// ListByOwner returns all of a user's meal plans, newest first.
func (s *MealPlanService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.MealPlan, error) {
	var plans []models.MealPlan
	err := s.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

// Update applies a partial update after verifying ownership.
func (s *MealPlanService) Update(ctx context.Context, id, requesterID uuid.UUID, req *types.UpdateMealPlanRequest) (*models.MealPlan, error) {
	plan, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if plan.UserID != requesterID {
		return nil, ErrForbidden
	}

	if req.PlanName != nil {
		plan.PlanName = *req.PlanName
	}
	if req.Description != nil {
		plan.Description = *req.Description
	}
	if req.Days != nil {
		plan.Days = *req.Days
	}
	plan.Days.Normalize()

	if strings.TrimSpace(plan.PlanName) == "" {
		return nil, NewValidationError("plan name is required")
	}

	if err := s.db.WithContext(ctx).Save(plan).Error; err != nil {
		return nil, err
	}
	return plan, nil
}

// Delete removes a meal plan after verifying ownership.
func (s *MealPlanService) Delete(ctx context.Context, id, requesterID uuid.UUID) error {
	plan, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if plan.UserID != requesterID {
		return ErrForbidden
	}
	return s.db.WithContext(ctx).Delete(&models.MealPlan{}, "id = ?", id).Error
}
