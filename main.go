package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"bistro-api/config"
	"bistro-api/docstore"
	"bistro-api/handlers"
	"bistro-api/middleware"
	"bistro-api/models"
	"bistro-api/orders"
	"bistro-api/repository"
	"bistro-api/routes"
	"bistro-api/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.Load()

	// Set Gin mode
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.OpenDB()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	docs, err := docstore.NewGormStore(db)
	if err != nil {
		log.Fatal("Failed to initialize document store:", err)
	}

	repo := repository.New(docs)
	if err := bootstrap(repo); err != nil {
		log.Fatal("Failed to bootstrap store:", err)
	}

	handlers.Init(repo, orders.NewEngine(repo), storage.NewDisk(config.StorageRoot))

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()
	r.Use(middleware.Metrics())

	// CORS middleware for frontend integration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Uploaded assets
	r.Static("/storage", config.StorageRoot)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Bistro Ordering & Reservation API",
			"version": "1.0.0",
		})
	})

	routes.SetupRoutes(r)

	log.Printf("Server running on http://localhost:%s", config.Port)
	if err := r.Run(":" + config.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// bootstrap seeds the default categories and the initial owner account on
// first start; both are no-ops against a populated store.
func bootstrap(repo *repository.Store) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := repo.SeedCategories(ctx); err != nil {
		return err
	}

	if _, err := repo.UserByEmail(ctx, config.OwnerEmail); err == nil {
		return nil
	} else if err != repository.ErrNotFound {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(config.OwnerPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = repo.CreateUser(ctx, models.User{
		Name:         "Owner",
		Email:        config.OwnerEmail,
		PasswordHash: string(hash),
		Role:         models.RoleOwner,
		Active:       true,
	})
	if err != nil {
		log.Printf("seed owner account: %v", err)
	}
	return nil
}
