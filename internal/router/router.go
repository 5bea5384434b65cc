package router

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/linkfield/backend/internal/handlers"
	appmw "github.com/linkfield/backend/internal/middleware"
	"github.com/linkfield/backend/internal/models"
	"github.com/linkfield/backend/internal/repositories"
	"github.com/linkfield/backend/internal/services"
	"github.com/linkfield/backend/pkg/config"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(eMiddleware.Logger())
	e.Use(appmw.RequestMetrics())
	e.Use(eMiddleware.RateLimiterWithConfig(eMiddleware.RateLimiterConfig{
		Store: eMiddleware.NewRateLimiterMemoryStoreWithConfig(eMiddleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(20),
			Burst:     60,
			ExpiresIn: 3 * time.Minute,
		}),
	}))
	log.Println("Global middleware configured.")
}

// SetupRoutes migrates the schema, wires dependencies and registers all
// application routes
func SetupRoutes(e *echo.Echo, db *gorm.DB, cfg *config.Config) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Like{},
		&models.Comment{},
		&models.Connection{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("Auto-migrations completed for all models.")

	// Health check and metrics - always accessible
	e.GET("/health", handlers.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// --- Repositories ---
	userRepo := repositories.NewGormUserRepository(db)
	postRepo := repositories.NewGormPostRepository(db)
	likeRepo := repositories.NewGormLikeRepository(db)
	commentRepo := repositories.NewGormCommentRepository(db)
	connectionRepo := repositories.NewGormConnectionRepository(db)

	// --- Services ---
	connectionService := services.NewConnectionService(connectionRepo, userRepo)
	engagementService := services.NewEngagementService(likeRepo, commentRepo, postRepo, userRepo)
	feedService := services.NewFeedService(postRepo, userRepo, likeRepo)
	profileService := services.NewProfileService(userRepo, connectionService)

	// --- Route groups ---
	// public: no token handling at all
	// viewer: identity attached when a valid token is present, anonymous otherwise
	// protected: valid token required
	public := e.Group("/api/auth")
	viewer := e.Group("/api", appmw.OptionalJWTAuth(cfg.JWTSecret))
	protected := e.Group("/api", appmw.JWTAuth(cfg.JWTSecret))

	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret)
	authHandler.RegisterAuthRoutes(public, e.Group("/api/auth", appmw.JWTAuth(cfg.JWTSecret)))
	log.Println("Auth routes configured.")

	postHandler := handlers.NewPostHandler(feedService)
	postHandler.RegisterPostRoutes(viewer, protected)

	likeHandler := handlers.NewLikeHandler(engagementService)
	likeHandler.RegisterLikeRoutes(viewer, protected)

	commentHandler := handlers.NewCommentHandler(engagementService)
	commentHandler.RegisterCommentRoutes(viewer, protected)

	connectionHandler := handlers.NewConnectionHandler(connectionService)
	connectionHandler.RegisterConnectionRoutes(protected)

	userHandler := handlers.NewUserHandler(profileService, feedService)
	userHandler.RegisterUserRoutes(viewer, protected)

	log.Println("All routes configured.")
}
