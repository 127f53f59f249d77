package database

import (
	"gorm.io/gorm"

	"github.com/respicy/backend/internal/models"
)

// AutoMigrate creates or updates the schema for every model. Production
// deployments run the SQL files under migrations/ via cmd/migrate; this
// covers SQLite test databases and local development.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
		&models.MealPlan{},
		&models.RecipeRecord{},
	)
}
