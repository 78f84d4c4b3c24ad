package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yamakawa/task-tracker-api/internal/config"
	"github.com/yamakawa/task-tracker-api/internal/database"
	"github.com/yamakawa/task-tracker-api/internal/handlers"
	"github.com/yamakawa/task-tracker-api/internal/middleware"
	"github.com/yamakawa/task-tracker-api/internal/repository"
	"github.com/yamakawa/task-tracker-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db := database.GetDB()
	secret := []byte(cfg.JWTSecret)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, secret, cfg.TokenTTL)
	userService := services.NewUserService(userRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	taskService := services.NewTaskService(taskRepo, userRepo)
	cleanupService := services.NewCleanupService(userRepo, categoryRepo, taskRepo, cfg.Retention)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	taskHandler := handlers.NewTaskHandler(taskService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Task Tracker API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public, except /me)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.RequireAuth(secret), authHandler.GetCurrentUser)
		}

		// User preference routes (protected)
		user := api.Group("/user")
		user.Use(middleware.RequireAuth(secret))
		{
			user.PUT("/theme", userHandler.UpdateTheme)
		}

		// Category routes (protected)
		categories := api.Group("/categories")
		categories.Use(middleware.RequireAuth(secret))
		{
			categories.GET("", categoryHandler.ListCategories)
			categories.POST("", categoryHandler.CreateCategory)
			categories.PUT("/:id", categoryHandler.UpdateCategory)
			categories.DELETE("/:id", categoryHandler.DeleteCategory)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(middleware.RequireAuth(secret))
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}
	}

	// Run the cleanup once on startup, then daily
	scheduler := services.NewSchedulerService()
	if _, err := scheduler.ScheduleInterval(24*time.Hour, cleanupService.Run); err != nil {
		log.Fatalf("Failed to schedule cleanup: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()
	go cleanupService.Run()

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
