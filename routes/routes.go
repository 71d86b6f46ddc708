// File: /routes/routes.go
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"travelmap-api/config"
	"travelmap-api/controllers"
	"travelmap-api/middleware"
	"travelmap-api/repositories"
	"travelmap-api/services"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, emailService *services.EmailService, mediaService *services.MediaService) {
	// Repositories and domain services
	activityRepo := repositories.NewActivityRepository(db)
	suggestionRepo := repositories.NewSuggestionRepository(db)
	accessService := services.NewAccessService(activityRepo)
	suggestionService := services.NewSuggestionService(suggestionRepo)

	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret, emailService)
	userController := controllers.NewUserController(db)
	countryController := controllers.NewCountryController(db)
	placeController := controllers.NewPlaceController(db)
	tripController := controllers.NewTripController(db)
	favoriteController := controllers.NewFavoriteController(db)
	activityController := controllers.NewActivityController(db, accessService, activityRepo)
	ratingController := controllers.NewRatingController(db, accessService)
	suggestionController := controllers.NewSuggestionController(suggestionService)
	searchController := controllers.NewSearchController(db)
	mediaController := controllers.NewMediaController(db, mediaService)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// API version 1
	v1 := r.Group("/api/v1")

	// Auth routes (public)
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/register", authController.Register)
		auth.POST("/logout", authController.Logout)
		auth.POST("/verify-code", authController.VerifyCode)
		auth.POST("/resend-verification", authController.ResendVerificationCode)
	}

	// Public catalog and discovery routes
	v1.GET("/countries", countryController.GetCountries)
	v1.GET("/countries/search", countryController.SearchCountries)
	v1.GET("/countries/:code", countryController.GetCountry)
	v1.GET("/places", placeController.GetPlaces)
	v1.GET("/places/search", placeController.SearchPlaces)
	v1.GET("/places/:id/detail", middleware.OptionalAuthMiddleware(cfg.JWTSecret), placeController.GetPlaceDetail)
	v1.GET("/places/:id/trips", placeController.GetPlaceTrips)
	v1.GET("/search", searchController.Search)
	v1.GET("/trips/:id/public", tripController.GetPublicTrip)
	v1.GET("/activities", activityController.GetActivities)
	v1.GET("/activities/:id", middleware.OptionalAuthMiddleware(cfg.JWTSecret), activityController.GetActivity)
	v1.GET("/users/:id/profile", userController.GetPublicProfile)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		// Profile routes
		users := protected.Group("/users")
		{
			users.GET("/profile", userController.GetProfile)
			users.PUT("/profile", userController.UpdateProfile)
		}

		// Place registration
		protected.POST("/places", placeController.CreatePlace)

		// Trip routes
		trips := protected.Group("/trips")
		{
			trips.GET("/", tripController.GetTrips)
			trips.POST("/", tripController.CreateTrip)
			trips.GET("/:id", tripController.GetTrip)
			trips.PUT("/:id", tripController.UpdateTrip)
			trips.DELETE("/:id", tripController.DeleteTrip)
		}

		// Favorite routes
		favorites := protected.Group("/favorites")
		{
			favorites.GET("/", favoriteController.GetFavorites)
			favorites.POST("/", favoriteController.AddFavorite)
			favorites.DELETE("/:placeId", favoriteController.RemoveFavorite)
		}

		// Activity routes
		activities := protected.Group("/activities")
		{
			activities.POST("/", activityController.CreateActivity)
			activities.PUT("/:id", activityController.UpdateActivity)
			activities.DELETE("/:id", activityController.DeleteActivity)
		}

		// Activity rating routes
		ratings := protected.Group("/ratings")
		{
			ratings.POST("/", ratingController.CreateRating)
			ratings.PUT("/:id", ratingController.UpdateRating)
			ratings.DELETE("/:id", ratingController.DeleteRating)
		}

		// Suggestion routes
		protected.GET("/suggestions", suggestionController.GetSuggestions)

		// Media routes
		media := protected.Group("/media")
		{
			media.POST("/upload-url", mediaController.GetUploadURL)
			media.POST("/confirm", mediaController.ConfirmUpload)
			media.DELETE("/:id", mediaController.DeleteMedia)
		}
	}
}

// SetupCORS allows browser clients to call the API from other origins.
func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
