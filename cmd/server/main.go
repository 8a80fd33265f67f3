package main

import (
	"log"
	"os"
	"strings"

	"github.com/leovoon/notbyai.space/internal/db"
	"github.com/leovoon/notbyai.space/internal/router"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	// Initialize Database
	gdb, err := db.Init()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize Gin
	r := gin.Default()
	r.Use(cors.New(corsConfig()))

	router.RegisterRoutes(r, gdb)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Not by AI.space API starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}

	raw := os.Getenv("CORS_ALLOWED_ORIGINS")
	if raw == "" || raw == "*" {
		// Credentials cannot be combined with a wildcard origin
		cfg.AllowAllOrigins = true
		return cfg
	}

	origins := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
