package services

import (
	"testing"

	"gorm.io/gorm"

	"github.com/chunponglai/tricks-planner/config"
	"github.com/chunponglai/tricks-planner/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.InitDB(config.Config{DatabaseURL: ":memory:"})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{Email: email, PasswordHash: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return user
}
