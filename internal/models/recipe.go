package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ingredient is a single free-text ingredient line on a recipe.
type Ingredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Unit   string `json:"unit"`
}

// Step is one numbered instruction on a recipe.
type Step struct {
	Step int    `json:"step"`
	Text string `json:"text"`
}

// IngredientList is a custom type for handling ingredient arrays in JSONB
type IngredientList []Ingredient

// Value implements the driver.Valuer interface
func (l IngredientList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *IngredientList) Scan(value interface{}) error {
	if value == nil {
		*l = IngredientList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, l)
}

// StepList is a custom type for handling instruction arrays in JSONB
type StepList []Step

// Value implements the driver.Valuer interface
func (l StepList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *StepList) Scan(value interface{}) error {
	if value == nil {
		*l = StepList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, l)
}

type Recipe struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Title        string         `gorm:"size:255;not null" json:"title"`
	Description  string         `gorm:"type:text;not null" json:"description"`
	Ingredients  IngredientList `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Instructions StepList       `gorm:"type:jsonb;not null;default:'[]'" json:"instructions"`
	CookingTime  int            `gorm:"not null" json:"cooking_time"`
	Servings     int            `gorm:"not null" json:"servings"`
	Difficulty   string         `gorm:"size:16;not null;default:'medium'" json:"difficulty"`
	Cuisine      string         `gorm:"size:50;not null;default:'other'" json:"cuisine"`
	IsPublic     bool           `gorm:"not null;default:true" json:"is_public"`
	ImageURL     string         `gorm:"size:512" json:"image_url"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
