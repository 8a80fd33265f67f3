package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leovoon/notbyai.space/internal/errs"
	"github.com/leovoon/notbyai.space/internal/models"

	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

// Posts are plain short text; strip any markup outright.
var contentPolicy = bluemonday.StrictPolicy()

// CreatePost validates and stores a new pending post, spending one unit of
// the owner's daily quota in the same transaction.
func CreatePost(gdb *gorm.DB, user *models.User, content string, tag models.ContentTag) (*models.Post, error) {
	content = strings.TrimSpace(contentPolicy.Sanitize(content))
	if content == "" {
		return nil, errs.Validation("Content is required")
	}
	if !tag.Valid() {
		return nil, errs.Validation(fmt.Sprintf("Invalid tag: %s", tag))
	}

	post := models.Post{
		UserID:  user.ID,
		Content: content,
		Tag:     tag,
		Status:  models.StatusPending,
	}

	err := gdb.Transaction(func(tx *gorm.DB) error {
		if err := ConsumeDailyQuota(tx, user.ID); err != nil {
			return err
		}
		if err := tx.Create(&post).Error; err != nil {
			return errs.Internal("Failed to create post").Wrap(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// PendingPosts returns the moderation queue, oldest first, annotated with
// each owner's email.
func PendingPosts(gdb *gorm.DB) ([]models.Post, error) {
	var posts []models.Post
	if err := gdb.Where("status = ?", models.StatusPending).
		Order("created_at ASC").
		Find(&posts).Error; err != nil {
		return nil, errs.Internal("Failed to load pending posts").Wrap(err)
	}
	fillUserEmails(gdb, posts, "Unknown")
	return posts, nil
}

// ApprovedPosts returns every approved post, newest first.
func ApprovedPosts(gdb *gorm.DB) ([]models.Post, error) {
	var posts []models.Post
	if err := gdb.Where("status = ?", models.StatusApproved).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, errs.Internal("Failed to load approved posts").Wrap(err)
	}
	return posts, nil
}

// GetPost fetches one post by id.
func GetPost(gdb *gorm.DB, id string) (*models.Post, error) {
	var post models.Post
	err := gdb.Where("id = ?", id).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NotFound("Post not found")
	}
	if err != nil {
		return nil, errs.Internal("Failed to load post").Wrap(err)
	}
	return &post, nil
}

// fillUserEmails batch-annotates posts with their owners' emails. A missing
// owner degrades that one entry to the placeholder; it never fails the
// listing.
func fillUserEmails(gdb *gorm.DB, posts []models.Post, placeholder string) {
	if len(posts) == 0 {
		return
	}

	userIDs := make([]string, 0, len(posts))
	seen := make(map[string]bool, len(posts))
	for _, p := range posts {
		if !seen[p.UserID] {
			seen[p.UserID] = true
			userIDs = append(userIDs, p.UserID)
		}
	}

	var users []models.User
	gdb.Select("id, email").Where("id IN ?", userIDs).Find(&users)

	emailByID := make(map[string]string, len(users))
	for _, u := range users {
		emailByID[u.ID] = u.Email
	}

	for i := range posts {
		if email, ok := emailByID[posts[i].UserID]; ok {
			posts[i].UserEmail = email
		} else {
			posts[i].UserEmail = placeholder
		}
	}
}
