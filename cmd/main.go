package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"mealmentor/database"
	"mealmentor/docs"
	"mealmentor/internal/cache"
	"mealmentor/internal/config"
	"mealmentor/internal/controllers"
	"mealmentor/internal/fixtures"
	"mealmentor/internal/logger"
	"mealmentor/internal/models"
	"mealmentor/internal/nutrition"
	"mealmentor/internal/repository"
	"mealmentor/internal/session"
	"mealmentor/internal/utils"
	"mealmentor/routes"
)

func main() {
	cfg := config.Load(".env", "../.env")

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()
	cfg.LogWarnings(zlog)

	// Swagger Documentation
	docs.SwaggerInfo.Title = "MealMentor API"
	docs.SwaggerInfo.Description = "Profile wizard, food log and nutrition content for MealMentor."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	db, err := database.ConnectDatabase(cfg)
	if err != nil {
		zlog.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := database.MigrateDatabase(db); err != nil {
		zlog.Fatal("Failed to run database migrations", zap.Error(err))
	}

	set, err := fixtures.Load(cfg.FixturesPath)
	if err != nil {
		zlog.Fatal("Failed to load fixtures", zap.Error(err))
	}
	if err := seedIfEmpty(db, set); err != nil {
		zlog.Fatal("Failed to seed fixtures", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var redisClient *cache.RedisClient
	if cfg.RedisURL != "" {
		redisClient, err = cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			zlog.Warn("Redis unavailable, articles will not be cached", zap.Error(err))
			redisClient = nil
		} else {
			defer redisClient.Close()
			zlog.Info("Connected to Redis")
		}
	}

	// Initialize repositories
	foodRepo := repository.NewFoodRepository(db)
	mealPlanRepo := repository.NewMealPlanRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	profileRepo := repository.NewUserProfileRepository(db)
	var articleRepo repository.ArticleRepository
	if redisClient != nil {
		articleRepo = repository.NewCachedArticleRepository(db, redisClient.Client())
		if err := articleRepo.InvalidateAllCache(); err != nil {
			zlog.Warn("Failed to invalidate article cache", zap.Error(err))
		}
	} else {
		articleRepo = repository.NewArticleRepository(db)
	}

	store := session.NewStore(session.Options{
		Catalog:    foodRepo,
		InitialLog: set.LogEntries(),
		OnComplete: func(sessionID string, p nutrition.Profile) error {
			return profileRepo.Save(models.NewUserProfile(sessionID, p))
		},
	})
	targets := cfg.DailyTargets(set.TargetMacros())
	zlog.Info("Daily targets",
		zap.Float64("calories", targets.Calories),
		zap.Float64("protein", targets.Protein),
		zap.Float64("carbs", targets.Carbs),
		zap.Float64("fat", targets.Fat),
	)

	// Initialize controllers
	sessionController := controllers.NewSessionController(store, profileRepo)
	wizardController := controllers.NewWizardController()
	trackerController := controllers.NewTrackerController(targets)
	articleController := controllers.NewArticleController(articleRepo)
	mealPlanController := controllers.NewMealPlanController(mealPlanRepo)
	profileController := controllers.NewUserProfileController(profileRepo, progressRepo, set.DemoUser)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), logger.GinMiddleware(zlog))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":         "MealMentor API is running",
			"version":         "1.0.0",
			"status":          "healthy",
			"database":        db.Dialector.Name(),
			"cache":           redisClient != nil,
			"active_sessions": store.Len(),
		})
	})

	routes.RegisterSessionRoutes(router, sessionController)
	routes.RegisterWizardRoutes(router, store, wizardController)
	routes.RegisterTrackerRoutes(router, store, trackerController)
	routes.RegisterArticleRoutes(router, articleController)
	routes.RegisterMealPlanRoutes(router, mealPlanController)
	routes.RegisterUserProfileRoutes(router, store, profileController)
	routes.RegisterSwaggerRoutes(router)

	// Debug endpoints
	router.GET("/debug/database", func(c *gin.Context) {
		if err := database.Health(db); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"database_health": false,
				"driver":          db.Dialector.Name(),
				"error":           err.Error(),
			})
			return
		}
		counts, _ := utils.CountFixtures(db)
		c.JSON(http.StatusOK, gin.H{
			"database_health": true,
			"driver":          db.Dialector.Name(),
			"rows":            counts,
		})
	})

	router.GET("/debug/cache", func(c *gin.Context) {
		if redisClient == nil {
			c.JSON(http.StatusOK, gin.H{"connected": false, "reason": "REDIS_URL not set or unreachable"})
			return
		}
		c.JSON(http.StatusOK, redisClient.GetStatus(c.Request.Context()))
	})

	handler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Session-ID"},
		ExposedHeaders: []string{"X-Session-ID"},
	}).Handler(router)

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        handler,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		zlog.Info("MealMentor API server starting",
			zap.String("port", cfg.Port),
			zap.Int("cpus", runtime.NumCPU()),
			zap.String("docs", "http://localhost:"+cfg.Port+"/swagger/index.html"),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zlog.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zlog.Error("Server forced to shutdown", zap.Error(err))
	}
}

func seedIfEmpty(db *gorm.DB, set *fixtures.Set) error {
	seeded, err := utils.IsSeeded(db)
	if err != nil {
		return err
	}
	if seeded {
		zap.L().Info("Fixture data already present, skipping seed")
		return nil
	}
	return utils.SeedFixtures(db, set)
}
