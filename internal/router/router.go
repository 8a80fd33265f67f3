package router

import (
	"github.com/leovoon/notbyai.space/internal/handlers"
	"github.com/leovoon/notbyai.space/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, gdb *gorm.DB) {
	// Handlers
	authHandler := handlers.NewAuthHandler(gdb)
	postHandler := handlers.NewPostHandler(gdb)
	moderationHandler := handlers.NewModerationHandler(gdb)

	api := r.Group("/api")

	// Public Routes
	api.GET("/", authHandler.Root)                   // liveness/info
	api.POST("/auth/register", authHandler.Register) // pre-provision by invite code

	// Bearer Routes: token decoded, local record optional
	authed := api.Group("")
	authed.Use(middleware.Identify(), middleware.LoadUser(gdb))
	authed.POST("/auth/sync", authHandler.Sync) // create-or-fetch local user

	// Synced Routes: local record required
	synced := authed.Group("")
	synced.Use(middleware.UserRequired())
	{
		synced.GET("/me", authHandler.Me)
		synced.POST("/posts", postHandler.Create)
		synced.GET("/feed", postHandler.Feed)
		synced.POST("/posts/:id/resonate", postHandler.Resonate)
		synced.POST("/posts/:id/cherish", postHandler.Cherish)
	}

	// Moderator Routes
	moderation := authed.Group("")
	moderation.Use(middleware.ModeratorRequired())
	{
		moderation.GET("/posts/pending", moderationHandler.Pending)
		moderation.GET("/posts/approved", moderationHandler.Approved)
		moderation.PUT("/posts/:id/review", moderationHandler.Review)
		moderation.GET("/stats", moderationHandler.Stats)
	}
}
