package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/exertrack/exercise-tracker-api/internal/config"
	"github.com/exertrack/exercise-tracker-api/internal/database"
	"github.com/exertrack/exercise-tracker-api/internal/handlers"
	"github.com/exertrack/exercise-tracker-api/internal/logger"
	"github.com/exertrack/exercise-tracker-api/internal/repository"
	"github.com/exertrack/exercise-tracker-api/internal/services"
)

func main() {
	logger.Init()

	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Initialize Gin router
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type"},
		MaxAge:          12 * time.Hour,
	}))

	// Static assets and landing page
	r.Static("/public", "./public")
	r.StaticFile("/", "./views/index.html")

	// Initialize repositories and services
	userRepo := repository.NewUserRepository(database.GetDB())
	exerciseRepo := repository.NewExerciseRepository(database.GetDB())

	userService := services.NewUserService(userRepo)
	exerciseService := services.NewExerciseService(userRepo, exerciseRepo)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService)
	exerciseHandler := handlers.NewExerciseHandler(exerciseService)

	// API routes
	api := r.Group("/api")
	{
		users := api.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.POST("/:id/exercises", exerciseHandler.CreateExercise)
			users.GET("/:id/logs", exerciseHandler.ListLogs)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	})

	// Start server
	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
