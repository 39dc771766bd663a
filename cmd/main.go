package main

import (
	"adboard-service/internal/handler"
	"adboard-service/internal/middleware"
	"adboard-service/internal/repository"
	"adboard-service/internal/service"
	"adboard-service/pkg/config"
	"adboard-service/pkg/database"
	"adboard-service/pkg/jwtutil"
	"adboard-service/pkg/logger"
	"adboard-service/prometheus"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger with config
	logger.InitLogger(cfg)
	log := logger.GetLogger()
	log.Info("Starting adboard service...", zap.String("environment", cfg.Server.Env))

	// Initialize database
	db, err := database.Init(cfg)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	// Initialize JWT utility
	jwtutil.Initialize(&cfg.JWT)
	log.Info("JWT utility initialized")

	// Wire repositories, services and handlers
	store := repository.NewStore(db)
	authSvc := service.NewAuthService(store)
	listingSvc := service.NewListingService(store)
	commentSvc := service.NewCommentService(store)
	userSvc := service.NewUserService(store)
	imageSvc := service.NewImageService(store)
	avatarSvc := service.NewAvatarService(store)

	authHandler := handler.NewAuthHandler(authSvc)
	listingHandler := handler.NewListingHandler(listingSvc, imageSvc)
	commentHandler := handler.NewCommentHandler(commentSvc)
	userHandler := handler.NewUserHandler(userSvc, avatarSvc)

	// Initialize Echo framework
	e := echo.New()

	// Apply global middleware - order matters
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestIDMiddleware)
	e.Use(logger.Middleware(log))
	e.Use(prometheus.MetricsMiddleware())

	// Public routes - no authentication required
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", handler.Metrics)
	e.POST("/login", authHandler.Login)
	e.POST("/register", authHandler.Register)
	e.GET("/ads", listingHandler.GetAll)
	e.GET("/ads/:id", listingHandler.Get)
	e.GET("/ads/image/:id", listingHandler.GetImage)
	e.GET("/ads/:id/comments", commentHandler.List)
	e.GET("/users/image/:id", userHandler.GetAvatar)

	// Authenticated routes
	ads := e.Group("/ads", middleware.AuthMiddleware)
	ads.POST("", listingHandler.Add)
	ads.GET("/me", listingHandler.Mine)
	ads.DELETE("/:id", listingHandler.Delete)
	ads.PATCH("/:id", listingHandler.Update)
	ads.PATCH("/:id/image", listingHandler.UpdateImage)
	ads.POST("/:id/comments", commentHandler.Add)
	ads.DELETE("/:adId/comments/:commentId", commentHandler.Delete)
	ads.PATCH("/:adId/comments/:commentId", commentHandler.Update)

	users := e.Group("/users", middleware.AuthMiddleware)
	users.POST("/set_password", userHandler.SetPassword)
	users.GET("/me", userHandler.Me)
	users.PATCH("/me", userHandler.UpdateMe)
	users.PATCH("/me/image", userHandler.UpdateAvatar)

	// Start server
	port := cfg.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
