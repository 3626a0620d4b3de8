package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/playpals/playpals-backend/internal/database"
	"github.com/playpals/playpals-backend/internal/handlers"
	"github.com/playpals/playpals-backend/internal/middleware"
	"github.com/playpals/playpals-backend/internal/services"
	log "github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, relying on environment")
	}

	log.SetFormatter(&log.JSONFormatter{})

	db, err := database.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	// Configure connection pool
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := services.InitRedis(); err != nil {
		log.Fatalf("Failed to initialize Redis: %v", err)
	}

	if err := services.InitStorage(); err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	gateway, err := services.NewPaymentGateway()
	if err != nil {
		log.Fatalf("Failed to initialize payment gateway: %v", err)
	}

	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"*"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(config))

	// Locally stored uploads (S3 deployments serve straight from the bucket)
	r.Static("/uploads", "/app/uploads")

	api := r.Group("/api")
	{
		// Public routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register(db))
			auth.POST("/login", handlers.Login(db))
			auth.POST("/forgot-password", handlers.RequestPasswordReset(db))
			auth.POST("/verify-otp", handlers.VerifyOTP(db))
			auth.POST("/reset-password", handlers.ResetPassword(db))
		}

		owners := api.Group("/owners")
		{
			owners.POST("/signup", handlers.SignupTurfOwner(db))
			owners.POST("/login", handlers.LoginTurfOwner(db))
		}

		api.GET("/turfs", handlers.GetTurfs(db))
		api.GET("/turfs/:id", handlers.GetTurf(db))
		api.GET("/rentals", handlers.GetRentals(db))
		api.GET("/rentals/:id", handlers.GetRental(db))
		api.GET("/reviews/turf/:turfId", handlers.GetTurfReviews(db))

		search := api.Group("/search")
		{
			search.GET("/turfs", handlers.SearchTurfs(db))
			search.GET("/rentals", handlers.SearchRentals(db))
		}

		// Protected routes
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("/auth/logout", handlers.Logout())
			protected.POST("/auth/change-password", middleware.RequireUser(), handlers.ChangePassword(db))

			users := protected.Group("/users")
			{
				users.GET("", handlers.GetUsers(db))
				users.GET("/profile", middleware.RequireUser(), handlers.GetProfile(db))
				users.PUT("/profile", middleware.RequireUser(), handlers.UpdateProfile(db))
				users.GET("/:id", handlers.GetUser(db))
			}

			protected.PUT("/owners/details", middleware.RequireTurfOwner(), handlers.UpdateTurfDetails(db))

			bookings := protected.Group("/bookings")
			bookings.Use(middleware.RequireUser())
			{
				bookings.POST("/turf", handlers.BookTurf(db))
				bookings.GET("", handlers.GetBookings(db))
				bookings.GET("/rentals", handlers.GetRentalBookings(db))
			}

			rentals := protected.Group("/rentals")
			{
				rentals.POST("", handlers.CreateRental(db))
				rentals.PUT("/:id", handlers.UpdateRental(db))
				rentals.DELETE("/:id", handlers.DeleteRental(db))
				rentals.POST("/:id/book", middleware.RequireUser(), handlers.BookRental(db))
			}

			payments := protected.Group("/payments")
			payments.Use(middleware.RequireUser())
			{
				payments.POST("/create-order", handlers.CreateOrder(db, gateway))
				payments.POST("/verify", handlers.VerifyPayment(db))
			}

			reviews := protected.Group("/reviews")
			reviews.Use(middleware.RequireUser())
			{
				reviews.POST("", handlers.CreateReview(db))
				reviews.GET("/user", handlers.GetUserReviews(db))
				reviews.PUT("/:id", handlers.UpdateReview(db))
				reviews.DELETE("/:id", handlers.DeleteReview(db))
			}
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
