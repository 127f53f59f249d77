package testhelpers

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/respicy/backend/internal/database"
	"github.com/respicy/backend/internal/models"
)

// TestPassword is the plaintext password of every user created by CreateTestUser.
const TestPassword = "password123"

// SetupTestDB creates an isolated in-memory SQLite database with the full
// schema. A single connection is used so concurrent writes serialize instead
// of failing with a lock error.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return db
}

// CreateTestUser inserts a user with a hashed TestPassword and default preferences.
func CreateTestUser(t *testing.T, db *gorm.DB, name, username, email string) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Name:         name,
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
		Preferences:  models.DefaultPreferences(),
	}
	require.NoError(t, db.WithContext(context.Background()).Create(user).Error)
	return user
}
