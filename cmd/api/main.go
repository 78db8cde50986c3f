package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/itu-itis21-taflan21/RentalApp/internal/booking"
	"github.com/itu-itis21-taflan21/RentalApp/internal/database"
	"github.com/itu-itis21-taflan21/RentalApp/internal/handlers"
	"github.com/itu-itis21-taflan21/RentalApp/internal/middleware"
	"github.com/itu-itis21-taflan21/RentalApp/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize database with better error handling
	db, err := database.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Get underlying SQL DB instance
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	// Configure connection pool
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Initialize Redis
	if err := services.InitRedis(); err != nil {
		log.Fatalf("Failed to initialize Redis: %v", err)
	}

	// Initialize Storage (S3 or local fallback)
	if err := services.InitStorage(); err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// Booking lifecycle manager and its collaborators
	bookingManager := booking.NewManager(
		booking.NewGormStore(db),
		booking.NewGormCatalog(db),
		services.NewPaymentService(),
		services.NewMediaStorage(),
	)

	// Initialize router
	r := gin.Default()

	// Configure CORS
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"*"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(config))

	// Serve locally stored uploads
	if !services.IsUsingS3() {
		r.Static("/uploads", services.UploadDir())
	}

	// Routes
	api := r.Group("/api")
	{
		// Public routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register(db))
			auth.POST("/login", handlers.Login(db))
			auth.GET("/me", middleware.AuthMiddleware(), handlers.Me(db))
		}

		// Item browsing is public
		api.GET("/items", handlers.GetItems(db))
		api.GET("/items/:id", handlers.GetItem(db))
		api.GET("/search/popular", handlers.GetPopularItems(db))
		api.GET("/categories", handlers.GetCategories())
		api.GET("/reviews/:reviewedId", handlers.GetReviews(db))

		// Protected routes
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// User routes
			users := protected.Group("/users")
			{
				users.GET("/profile", handlers.GetProfile(db))
				users.PUT("/profile", handlers.UpdateProfile(db))
				users.POST("/verify", handlers.SubmitVerification(db))
			}

			// Listing management
			items := protected.Group("/items")
			{
				items.POST("", handlers.CreateItem(db))
				items.GET("/user/my-items", handlers.GetMyItems(db))
				items.PATCH("/:id/availability", handlers.UpdateItemAvailability(db))
			}

			// Booking lifecycle routes
			bookings := protected.Group("/bookings")
			{
				bookings.POST("", handlers.CreateBooking(bookingManager))
				bookings.GET("/my-bookings", handlers.GetMyBookings(bookingManager))
				bookings.GET("/:id", handlers.GetBooking(bookingManager))
				bookings.PUT("/:id/status", handlers.UpdateBookingStatus(bookingManager))
				bookings.POST("/:id/damage-photos", handlers.UploadDamagePhotos(bookingManager))
			}

			// Reviews
			reviews := protected.Group("/reviews")
			{
				reviews.POST("", handlers.CreateReview(db))
			}

			// Mock payment processing
			payments := protected.Group("/payments")
			{
				payments.POST("/process", handlers.ProcessPayment())
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
