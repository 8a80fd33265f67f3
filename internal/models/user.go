package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleNewUser   UserRole = "new_user"
	RoleModerator UserRole = "moderator"
	RoleSeedUser  UserRole = "seed_user"
)

// CanModerate reports whether the role may review posts and view stats.
func (r UserRole) CanModerate() bool {
	return r == RoleModerator || r == RoleSeedUser
}

type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	ClerkID      string    `gorm:"uniqueIndex;not null" json:"clerk_id"`
	Email        string    `gorm:"index;not null" json:"email"`
	Role         UserRole  `gorm:"size:20;default:'new_user';not null" json:"role"`
	PostsToday   int       `gorm:"default:0" json:"posts_today"`
	LastPostDate string    `gorm:"size:10" json:"last_post_date"` // YYYY-MM-DD, UTC
	CreatedAt    time.Time `json:"created_at"`
}

// BeforeCreate assigns an application-generated id so keys stay stable
// across store migrations.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
