package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Preferences holds a user's cooking preferences, stored as a JSONB document.
type Preferences struct {
	Cuisines    []string `json:"cuisines"`
	Diet        string   `json:"diet"`
	SkillLevel  string   `json:"skill_level"`
	CookingTime string   `json:"cooking_time"`
}

// DefaultPreferences returns the preferences assigned to a freshly registered user.
func DefaultPreferences() Preferences {
	return Preferences{
		Cuisines:    []string{},
		Diet:        "none",
		SkillLevel:  "beginner",
		CookingTime: "any",
	}
}

// Value implements the driver.Valuer interface
func (p Preferences) Value() (driver.Value, error) {
	if p.Cuisines == nil {
		p.Cuisines = []string{}
	}
	return json.Marshal(p)
}

// Scan implements the sql.Scanner interface
func (p *Preferences) Scan(value interface{}) error {
	if value == nil {
		*p = DefaultPreferences()
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

	return json.Unmarshal(bytes, p)
}

type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Name         string         `gorm:"not null" json:"name"`
	Username     string         `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	IsAdmin      bool           `gorm:"not null;default:false" json:"is_admin"`
	Bio          string         `gorm:"type:text" json:"bio"`
	AvatarURL    string         `gorm:"size:512" json:"avatar_url"`
	Preferences  Preferences    `gorm:"type:jsonb" json:"preferences"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
