package services

import (
	"time"

	"github.com/leovoon/notbyai.space/internal/errs"
	"github.com/leovoon/notbyai.space/internal/models"

	"gorm.io/gorm"
)

// ReviewPost moves a pending post to approved or rejected and records who
// reviewed it and when.
//
// The transition is one conditional update keyed on the current status, so
// two reviewers racing on the same post cannot both win: the second update
// matches zero rows and comes back as a conflict.
func ReviewPost(gdb *gorm.DB, postID string, status models.PostStatus, reviewer *models.User) error {
	if status != models.StatusApproved && status != models.StatusRejected {
		return errs.Validation("Review status must be approved or rejected")
	}

	now := time.Now().UTC()
	result := gdb.Model(&models.Post{}).
		Where("id = ? AND status = ?", postID, models.StatusPending).
		Updates(map[string]interface{}{
			"status":      status,
			"reviewed_at": now,
			"reviewer_id": reviewer.ID,
		})
	if result.Error != nil {
		return errs.Internal("Failed to review post").Wrap(result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	// No row matched: either the post is gone or someone got there first.
	var count int64
	if err := gdb.Model(&models.Post{}).Where("id = ?", postID).Count(&count).Error; err != nil {
		return errs.Internal("Failed to load post").Wrap(err)
	}
	if count == 0 {
		return errs.NotFound("Post not found")
	}
	return errs.Conflict("Post already reviewed")
}

// Stats aggregates the counts shown on the moderation dashboard.
type Stats struct {
	PendingPosts  int64 `json:"pending_posts"`
	ApprovedPosts int64 `json:"approved_posts"`
	TotalUsers    int64 `json:"total_users"`
}

func GetStats(gdb *gorm.DB) (*Stats, error) {
	var s Stats
	if err := gdb.Model(&models.Post{}).Where("status = ?", models.StatusPending).Count(&s.PendingPosts).Error; err != nil {
		return nil, errs.Internal("Failed to count pending posts").Wrap(err)
	}
	if err := gdb.Model(&models.Post{}).Where("status = ?", models.StatusApproved).Count(&s.ApprovedPosts).Error; err != nil {
		return nil, errs.Internal("Failed to count approved posts").Wrap(err)
	}
	if err := gdb.Model(&models.User{}).Count(&s.TotalUsers).Error; err != nil {
		return nil, errs.Internal("Failed to count users").Wrap(err)
	}
	return &s, nil
}
