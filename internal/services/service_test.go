package services

import (
	"testing"

	"github.com/leovoon/notbyai.space/internal/db"
	"github.com/leovoon/notbyai.space/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps the in-memory database alive and shared
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(gdb))
	return gdb
}

func seedUser(t *testing.T, gdb *gorm.DB, email string, role models.UserRole) *models.User {
	t.Helper()

	user := models.User{
		ClerkID: "clerk_" + email,
		Email:   email,
		Role:    role,
	}
	require.NoError(t, gdb.Create(&user).Error)
	return &user
}
