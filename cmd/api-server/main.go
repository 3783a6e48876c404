package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"bloghub/database"
	"bloghub/internal/cache"
	"bloghub/internal/config"
	"bloghub/internal/http-api/handler"
	"bloghub/internal/http-api/middleware"
	"bloghub/internal/http-api/repository"
	"bloghub/internal/http-api/service"
)

func main() {
	// 1. Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("could not load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	// 2. Connect to the database
	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("could not connect to database", "error", err)
		os.Exit(1)
	}

	// 3. Redis-backed view counter (nil-safe, the API works without it)
	viewCounter, err := cache.NewViewCounter(cfg.RedisURL, cfg.RedisPassword, cfg.ViewDedupTTL)
	if err != nil {
		logger.Warn("redis unavailable, view counting disabled", "error", err)
	}

	// 4. Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	articleRepo := repository.NewArticleRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	tagRepo := repository.NewTagRepo(db)
	commentRepo := repository.NewCommentRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	bookmarkRepo := repository.NewBookmarkRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)

	// 5. Services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	articleService := service.NewArticleService(articleRepo, categoryRepo, tagRepo, commentRepo, ratingRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	commentService := service.NewCommentService(commentRepo, articleRepo, notificationRepo)
	ratingService := service.NewRatingService(ratingRepo, articleRepo)
	notificationService := service.NewNotificationService(notificationRepo)
	bookmarkService := service.NewBookmarkService(bookmarkRepo, articleRepo, ratingRepo)
	feedbackService := service.NewFeedbackService(feedbackRepo)

	// 6. Middleware
	requireAuth := middleware.AuthMiddleware(authService)
	optionalAuth := middleware.OptionalAuthMiddleware(authService)
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	rateLimit := rateLimiter.Middleware()

	// 7. Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	handler.NewAuthHandler(authService, int64(cfg.AccessTokenTTL.Seconds())).RegisterRoutes(api)
	handler.NewArticleHandler(articleService, viewCounter).RegisterRoutes(api, requireAuth)
	handler.NewCategoryHandler(categoryService, articleService).RegisterRoutes(api)
	handler.NewTagHandler(articleService).RegisterRoutes(api)
	handler.NewCommentHandler(commentService).RegisterRoutes(api, optionalAuth, rateLimit)
	handler.NewRatingHandler(ratingService).RegisterRoutes(api, optionalAuth, rateLimit)
	handler.NewNotificationHandler(notificationService).RegisterRoutes(api, requireAuth)
	handler.NewBookmarkHandler(bookmarkService).RegisterRoutes(api, requireAuth)
	handler.NewFeedbackHandler(feedbackService).RegisterRoutes(api, optionalAuth, rateLimit)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("server starting", "addr", addr, "env", cfg.GoEnv)
	if err := r.Run(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
