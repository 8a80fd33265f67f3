package handlers

import (
	"net/http"

	"github.com/leovoon/notbyai.space/internal/errs"
	"github.com/leovoon/notbyai.space/internal/middleware"
	"github.com/leovoon/notbyai.space/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthHandler struct {
	gdb *gorm.DB
}

func NewAuthHandler(gdb *gorm.DB) *AuthHandler {
	return &AuthHandler{gdb: gdb}
}

// Root answers the unauthenticated liveness probe.
func (h *AuthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Not by AI.space API"})
}

type RegisterRequest struct {
	Email      string `json:"email"`
	InviteCode string `json:"invite_code"`
}

// Register pre-provisions an account; a valid invite code grants the
// moderator role.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, errs.BadRequest("Invalid request body"))
		return
	}

	role, created, err := services.RegisterUser(h.gdb, req.Email, req.InviteCode)
	if err != nil {
		Fail(c, err)
		return
	}
	if !created {
		c.JSON(http.StatusOK, gin.H{"message": "User already exists"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User registered successfully", "role": role})
}

// Sync creates or fetches the local user for the decoded credential.
func (h *AuthHandler) Sync(c *gin.Context) {
	claims, ok := middleware.Claims(c)
	if !ok {
		Fail(c, errs.Unauthorized("Invalid token"))
		return
	}
	clerkID, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)

	user, created, err := services.SyncUser(h.gdb, clerkID, email)
	if err != nil {
		Fail(c, err)
		return
	}
	message := "User exists"
	if created {
		message = "User created"
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "user": user})
}

// Me returns the caller's own record. UserRequired has already answered
// 404 for callers that never synced.
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		Fail(c, errs.NotFound("User not found"))
		return
	}
	c.JSON(http.StatusOK, user)
}
