package services

import (
	"github.com/leovoon/notbyai.space/internal/errs"
	"github.com/leovoon/notbyai.space/internal/models"

	"gorm.io/gorm"
)

// DailyFeedSize bounds how many approved posts the feed surfaces.
const DailyFeedSize = 3

// DailyFeed selects the most recent approved posts, newest first by
// creation time (not review time), annotated with each owner's email.
// Moderator curation beyond "latest approved" never shipped.
func DailyFeed(gdb *gorm.DB) ([]models.Post, error) {
	var posts []models.Post
	if err := gdb.Where("status = ?", models.StatusApproved).
		Order("created_at DESC").
		Limit(DailyFeedSize).
		Find(&posts).Error; err != nil {
		return nil, errs.Internal("Failed to load feed").Wrap(err)
	}
	fillUserEmails(gdb, posts, "Anonymous")
	return posts, nil
}
