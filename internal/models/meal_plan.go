package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DaySlot is the meal assigned to a single weekday of a plan.
type DaySlot struct {
	Meal         string   `json:"meal"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
}

// PlanDays holds one slot per weekday. Every slot is always present in the
// stored document; absent input slots are filled with empty defaults.
type PlanDays struct {
	Monday    DaySlot `json:"monday"`
	Tuesday   DaySlot `json:"tuesday"`
	Wednesday DaySlot `json:"wednesday"`
	Thursday  DaySlot `json:"thursday"`
	Friday    DaySlot `json:"friday"`
	Saturday  DaySlot `json:"saturday"`
	Sunday    DaySlot `json:"sunday"`
}

// Normalize fills empty ingredient lists so every slot serializes as a
// complete {meal, ingredients, instructions} structure.
func (d *PlanDays) Normalize() {
	for _, slot := range []*DaySlot{
		&d.Monday, &d.Tuesday, &d.Wednesday, &d.Thursday,
		&d.Friday, &d.Saturday, &d.Sunday,
	} {
		if slot.Ingredients == nil {
			slot.Ingredients = []string{}
		}
	}
}

// Value implements the driver.Valuer interface
func (d PlanDays) Value() (driver.Value, error) {
	d.Normalize()
	return json.Marshal(d)
}

// Scan implements the sql.Scanner interface
func (d *PlanDays) Scan(value interface{}) error {
	if value == nil {
		d.Normalize()
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

	if err := json.Unmarshal(bytes, d); err != nil {
		return err
	}
	d.Normalize()
	return nil
}

type MealPlan struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	PlanName    string         `gorm:"size:255;not null" json:"plan_name"`
	Description string         `gorm:"type:text" json:"description"`
	Days        PlanDays       `gorm:"type:jsonb" json:"days"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
}

func (m *MealPlan) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
