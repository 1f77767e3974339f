package main

import (
	"log"
	"net/http"

	"gamerater/backend/internal/auth"
	"gamerater/backend/internal/config"
	"gamerater/backend/internal/database"
	"gamerater/backend/internal/handler"
	"gamerater/backend/internal/middleware"
	"gamerater/backend/pkg/logging"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           Board Game Rater API
// @version         1.0
// @description     Rating and review catalog for board games.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	logger, err := logging.Init(config.AppConfig.LogPath, config.AppConfig.Debug)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	database.Connect(config.AppConfig.DatabaseURL)

	if !config.AppConfig.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(logger))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Auth routes (public)
	router.POST("/register", handler.RegisterUser)
	router.POST("/login", handler.LoginUser)

	// Everything else requires a resolved user identity.
	api := router.Group("")
	api.Use(auth.AuthMiddleware())
	{
		gameRoutes := api.Group("/games")
		{
			gameRoutes.POST("", handler.CreateGame)
			gameRoutes.GET("", handler.GetGames)
			gameRoutes.GET("/:id", handler.GetGameByID)
			gameRoutes.PUT("/:id", handler.UpdateGame)
			gameRoutes.DELETE("/:id", handler.DeleteGame)
		}

		categoryRoutes := api.Group("/categories")
		{
			categoryRoutes.GET("", handler.GetCategories)
			categoryRoutes.GET("/:id", handler.GetCategoryByID)
		}

		reviewRoutes := api.Group("/reviews")
		{
			reviewRoutes.POST("", handler.CreateReview)
			reviewRoutes.GET("", handler.GetReviews)
			reviewRoutes.GET("/:id", handler.GetReviewByID)
			reviewRoutes.PUT("/:id", handler.UpdateReview)
			reviewRoutes.DELETE("/:id", handler.DeleteReview)
		}

		ratingRoutes := api.Group("/ratings")
		{
			ratingRoutes.POST("", handler.CreateRating)
			ratingRoutes.GET("", handler.GetRatings)
			ratingRoutes.DELETE("/:id", handler.DeleteRating)
		}

		pictureRoutes := api.Group("/pictures")
		{
			pictureRoutes.POST("", handler.CreatePicture)
			pictureRoutes.GET("", handler.GetPictures)
			pictureRoutes.DELETE("/:id", handler.DeletePicture)
		}
	}

	logger.Info("Server is running", zap.String("port", config.AppConfig.Port))
	log.Fatal(router.Run(":" + config.AppConfig.Port))
}
