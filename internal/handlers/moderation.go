package handlers

import (
	"fmt"
	"net/http"

	"github.com/leovoon/notbyai.space/internal/errs"
	"github.com/leovoon/notbyai.space/internal/middleware"
	"github.com/leovoon/notbyai.space/internal/models"
	"github.com/leovoon/notbyai.space/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ModerationHandler serves the role-gated review surface. Role checks live
// in middleware.ModeratorRequired; handlers here can assume a privileged
// caller.
type ModerationHandler struct {
	gdb *gorm.DB
}

func NewModerationHandler(gdb *gorm.DB) *ModerationHandler {
	return &ModerationHandler{gdb: gdb}
}

// Pending lists the moderation queue, oldest first.
func (h *ModerationHandler) Pending(c *gin.Context) {
	posts, err := services.PendingPosts(h.gdb)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// Approved lists approved posts, newest first, for feed curation.
func (h *ModerationHandler) Approved(c *gin.Context) {
	posts, err := services.ApprovedPosts(h.gdb)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

type ReviewRequest struct {
	Status models.PostStatus `json:"status"`
}

// Review approves or rejects a pending post.
func (h *ModerationHandler) Review(c *gin.Context) {
	moderator, ok := middleware.CurrentUser(c)
	if !ok {
		Fail(c, errs.NotFound("User not found"))
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, errs.BadRequest("Invalid request body"))
		return
	}

	if err := services.ReviewPost(h.gdb, c.Param("id"), req.Status, moderator); err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Post %s", req.Status)})
}

// Stats returns the aggregate counts for the moderation dashboard.
func (h *ModerationHandler) Stats(c *gin.Context) {
	stats, err := services.GetStats(h.gdb)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
