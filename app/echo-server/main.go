package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"careerPlatform/app/echo-server/router"
	"careerPlatform/business/assessment"
	"careerPlatform/business/career"
	"careerPlatform/business/recommender"
	"careerPlatform/business/roadmap"
	"careerPlatform/domain"
	"careerPlatform/internal/middleware"
	fileRepo "careerPlatform/internal/repository/file"
	psqlRepo "careerPlatform/internal/repository/postgres"
	redisRepo "careerPlatform/internal/repository/redis"
	"careerPlatform/internal/rest"
	"careerPlatform/pkg/config"
	"careerPlatform/pkg/database"
	redisdb "careerPlatform/pkg/database/redis"
	"careerPlatform/pkg/logger"
	"careerPlatform/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Career Platform API", "version", cfg.App.Version, "corpus_driver", cfg.Corpus.Driver)

	metrics.Init()

	loadCtx, loadCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer loadCancel()

	var (
		courses      []domain.Course
		careerRows   []domain.CareerQA
		interactions []domain.Interaction
		eventRepo    recommender.EventRepository
	)

	switch cfg.Corpus.Driver {
	case "postgres":
		db, err := database.InitPostgres(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to database", "error", err)
		}
		logger.Info("Database connected successfully")

		interactionRepo := psqlRepo.NewInteractionRepository(db)
		eventRepo = interactionRepo

		if courses, err = psqlRepo.NewCourseRepository(db).LoadCourses(loadCtx); err != nil {
			logger.Fatal("Failed to load course catalog", "error", err)
		}
		if careerRows, err = psqlRepo.NewCareerRepository(db).LoadCareers(loadCtx); err != nil {
			logger.Fatal("Failed to load career dataset", "error", err)
		}
		if interactions, err = interactionRepo.LoadInteractions(loadCtx); err != nil {
			logger.Fatal("Failed to load interaction matrix", "error", err)
		}
	default:
		if courses, err = fileRepo.NewCourseRepository(cfg.Corpus.CoursesPath).LoadCourses(loadCtx); err != nil {
			logger.Fatal("Failed to load course catalog", "error", err)
		}
		if careerRows, err = fileRepo.NewCareerRepository(cfg.Corpus.CareersPath).LoadCareers(loadCtx); err != nil {
			logger.Fatal("Failed to load career dataset", "error", err)
		}
		if interactions, err = fileRepo.NewInteractionRepository(cfg.Corpus.InteractionsPath).LoadInteractions(loadCtx); err != nil {
			logger.Fatal("Failed to load interaction matrix", "error", err)
		}
	}

	// Init services
	recoCfg := recommender.DefaultConfig()
	recoCfg.LimitDefault = cfg.Engine.LimitDefault
	recoCfg.LimitMax = cfg.Engine.LimitMax

	recoService, err := recommender.NewService(courses, interactions, eventRepo, recoCfg)
	if err != nil {
		logger.Fatal("Failed to build recommendation engine", "error", err)
	}

	careerService, err := career.NewService(careerRows)
	if err != nil {
		logger.Fatal("Failed to build career matcher", "error", err)
	}

	questionRepo := fileRepo.NewQuestionRepository(cfg.Corpus.QuestionsPath)
	assessmentService, err := assessment.NewService(loadCtx, questionRepo, careerService, recoService)
	if err != nil {
		logger.Fatal("Failed to build assessment service", "error", err)
	}

	var roadmapCache roadmap.Cache
	var redisClient *goredis.Client
	if cfg.Redis.Enabled {
		client, err := redisdb.NewRedisClient(cfg)
		if err != nil {
			logger.Warn("Redis unavailable, roadmap caching disabled", "error", err.Error())
		} else {
			redisClient = client
			roadmapCache = redisRepo.NewRoadmapCache(client, 0)
			logger.Info("Redis connected successfully")
		}
	}
	roadmapService := roadmap.NewService(careerService, recoService, roadmapCache)

	// Init handlers
	careerHandler := rest.NewCareerHandler(careerService, roadmapService)
	assessmentHandler := rest.NewAssessmentHandler(assessmentService)
	courseHandler := rest.NewCourseHandler(recoService, careerService)
	recommendHandler := rest.NewRecommendHandler(recoService)
	adminHandler := rest.NewAdminHandler(recoService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = middleware.ErrorHandler

	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceMiddleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	authRequired := middleware.AuthMiddleware(cfg.JWT.SecretKey)

	api := e.Group("/api/v1")
	router.SetupCareerRoutes(api, careerHandler)
	router.SetupAssessmentRoutes(api, assessmentHandler)
	router.SetupCourseRoutes(api, courseHandler, recommendHandler)
	router.SetupAdminRoutes(api, adminHandler, authRequired)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	if err := redisdb.CloseRedisClient(redisClient); err != nil {
		logger.Error("Redis shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
