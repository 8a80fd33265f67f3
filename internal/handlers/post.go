package handlers

import (
	"net/http"

	"github.com/leovoon/notbyai.space/internal/errs"
	"github.com/leovoon/notbyai.space/internal/middleware"
	"github.com/leovoon/notbyai.space/internal/models"
	"github.com/leovoon/notbyai.space/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostHandler struct {
	gdb *gorm.DB
}

func NewPostHandler(gdb *gorm.DB) *PostHandler {
	return &PostHandler{gdb: gdb}
}

type CreatePostRequest struct {
	Content string            `json:"content"`
	Tag     models.ContentTag `json:"tag"`
}

// Create stores a new pending post, charged against the daily quota.
func (h *PostHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		Fail(c, errs.NotFound("User not found"))
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, errs.BadRequest("Invalid request body"))
		return
	}

	post, err := services.CreatePost(h.gdb, user, req.Content, req.Tag)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post created successfully", "post_id": post.ID})
}

// Feed returns today's bounded set of approved posts.
func (h *PostHandler) Feed(c *gin.Context) {
	posts, err := services.DailyFeed(h.gdb)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// Resonate bumps a post's resonate counter.
func (h *PostHandler) Resonate(c *gin.Context) {
	h.react(c, "resonates", "Resonated with post")
}

// Cherish bumps a post's cherish counter.
func (h *PostHandler) Cherish(c *gin.Context) {
	h.react(c, "cherishes", "Cherished post")
}

// react increments one reaction counter as a single atomic update.
// An unknown post id matches zero rows and still answers 200; reactions
// have always been fire-and-forget.
func (h *PostHandler) react(c *gin.Context, column, message string) {
	postID := c.Param("id")
	if err := h.gdb.Model(&models.Post{}).
		Where("id = ?", postID).
		UpdateColumn(column, gorm.Expr(column+" + ?", 1)).
		Error; err != nil {
		Fail(c, errs.Internal("Failed to update post").Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}
