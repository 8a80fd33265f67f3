package db

import (
	"fmt"
	"log"
	"os"

	"github.com/leovoon/notbyai.space/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Init opens the Postgres connection, runs migrations and seeds the first
// moderator. The returned handle is created once at startup and injected
// into handlers; nothing else holds it ambiently.
func Init() (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=notbyai port=5432 sslmode=disable TimeZone=UTC"
	}

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	log.Println("Database connection established")

	if err := Migrate(gdb); err != nil {
		return nil, err
	}
	log.Println("Database migration completed")

	seedModerator(gdb)
	return gdb, nil
}

// Migrate creates the two collections. Split out so tests can run it
// against an in-memory database.
func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(
		&models.User{},
		&models.Post{},
	); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	return nil
}

// seedModerator promotes SEED_MODERATOR_EMAIL to seed_user so a fresh
// deployment has at least one account able to review posts.
func seedModerator(gdb *gorm.DB) {
	email := os.Getenv("SEED_MODERATOR_EMAIL")
	if email == "" {
		return
	}

	result := gdb.Model(&models.User{}).
		Where("email = ? AND role = ?", email, models.RoleNewUser).
		Update("role", models.RoleSeedUser)
	if result.Error != nil {
		log.Printf("Failed to seed moderator %s: %v", email, result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Seeded moderator role for %s", email)
	}
}
