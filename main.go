package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"inkwell/auth"
	"inkwell/comments"
	"inkwell/common"
	"inkwell/database"
	"inkwell/posts"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	db := common.ConnectDb()
	if db == nil {
		log.Fatal("Failed to connect to database")
	}

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}

	cascadeComments := os.Getenv("CASCADE_COMMENTS") == "1"

	router := gin.Default()
	router.Use(common.RequestID())

	authModule := auth.NewAuthModule(db, []byte(jwtSecret))
	authModule.RegisterRoutes(router)

	postModule := posts.NewPostModule(db, cascadeComments)
	postModule.RegisterRoutes(router, authModule.RequireAuth)

	commentModule := comments.NewCommentModule(db)
	commentModule.RegisterRoutes(router, authModule.RequireAuth)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting server on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
