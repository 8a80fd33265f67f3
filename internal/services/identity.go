package services

import (
	"errors"
	"os"

	"github.com/leovoon/notbyai.space/internal/errs"
	"github.com/leovoon/notbyai.space/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// defaultInviteCode is the original launch invite; override with
// MODERATOR_INVITE_CODE in any real deployment.
const defaultInviteCode = "aieventuallylose"

func ModeratorInviteCode() string {
	if code := os.Getenv("MODERATOR_INVITE_CODE"); code != "" {
		return code
	}
	return defaultInviteCode
}

// SyncUser implements sync-on-login: the first request with a given subject
// creates the local record, later ones return it. The created flag tells
// the handler which message to answer with.
func SyncUser(gdb *gorm.DB, clerkID, email string) (*models.User, bool, error) {
	if clerkID == "" || email == "" {
		return nil, false, errs.BadRequest("Invalid token payload")
	}

	var user models.User
	err := gdb.Where("clerk_id = ?", clerkID).First(&user).Error
	if err == nil {
		return &user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, errs.Internal("Failed to load user").Wrap(err)
	}

	user = models.User{
		ClerkID: clerkID,
		Email:   email,
		Role:    models.RoleNewUser,
	}
	if err := gdb.Create(&user).Error; err != nil {
		return nil, false, errs.Internal("Failed to create user").Wrap(err)
	}
	return &user, true, nil
}

// RegisterUser pre-provisions an account by email. A matching invite code
// grants the moderator role; anyone else starts as new_user. The clerk id
// is a placeholder until the owner's first /auth/sync.
func RegisterUser(gdb *gorm.DB, email, inviteCode string) (models.UserRole, bool, error) {
	if email == "" {
		return "", false, errs.BadRequest("Email is required")
	}

	var existing models.User
	err := gdb.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return existing.Role, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, errs.Internal("Failed to load user").Wrap(err)
	}

	role := models.RoleNewUser
	if inviteCode != "" && inviteCode == ModeratorInviteCode() {
		role = models.RoleModerator
	}

	user := models.User{
		ClerkID: uuid.NewString(),
		Email:   email,
		Role:    role,
	}
	if err := gdb.Create(&user).Error; err != nil {
		return "", false, errs.Internal("Failed to create user").Wrap(err)
	}
	return role, true, nil
}
