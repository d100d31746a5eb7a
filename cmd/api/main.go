package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/aurora-assist/backend/internal/api/handlers"
	"github.com/aurora-assist/backend/internal/cache/redis"
	"github.com/aurora-assist/backend/internal/classifier"
	"github.com/aurora-assist/backend/internal/feedback"
	"github.com/aurora-assist/backend/internal/generator"
	"github.com/aurora-assist/backend/internal/knowledge"
	"github.com/aurora-assist/backend/internal/llm"
	"github.com/aurora-assist/backend/internal/metrics"
	"github.com/aurora-assist/backend/internal/middleware/ratelimit"
	"github.com/aurora-assist/backend/internal/middleware/security"
	"github.com/aurora-assist/backend/internal/middleware/validation"
	"github.com/aurora-assist/backend/internal/pipeline"
	"github.com/aurora-assist/backend/internal/references"
	"github.com/aurora-assist/backend/internal/storage/sqlite"
	"github.com/aurora-assist/backend/pkg/config"
	appLogger "github.com/aurora-assist/backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	err = appLogger.Init(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.OutputPath)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer appLogger.Sync()

	appLogger.Info("Starting Aurora Autism Assistant")

	metrics.Init()

	kb := knowledge.NewBase()
	catalog := references.NewCatalog()
	aggregator := feedback.NewAggregator(feedback.Config{
		MinPatternTotal:  cfg.Feedback.MinPatternTotal,
		LowPositiveRate:  cfg.Feedback.LowPositiveRate,
		TopPatternsLimit: cfg.Feedback.TopPatternsLimit,
	})

	// Strategy selection happens once at startup: with an API key the
	// gatekeeper and expert layers delegate to the model, without one the
	// assistant runs on the knowledge base alone.
	llmConfigured := cfg.LLM.APIKey != ""

	var intentStrategy classifier.Strategy
	var guidanceSvc generator.GuidanceService
	if llmConfigured {
		llmClient := llm.NewClient(cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.Temperature, cfg.LLM.MaxTokens, cfg.LLM.TimeoutSec)
		intentStrategy = classifier.NewDelegated(llmClient)
		guidanceSvc = llmClient
	} else {
		appLogger.Warn("No LLM API key configured, running with knowledge base only")
		intentStrategy = classifier.NewDeterministic(kb, cfg.Classifier.ConfidencePerMatch, cfg.Classifier.ConfidenceCap)
	}

	gen := generator.New(kb, guidanceSvc)

	var db *sqlite.Client
	if cfg.SQLite.Path != "" {
		db, err = sqlite.NewClient(cfg.SQLite.Path)
		if err != nil {
			appLogger.Warn("History database unavailable, continuing without it", zap.Error(err))
			db = nil
		} else {
			defer db.Close()
			if err := db.InitSchema(); err != nil {
				appLogger.Warn("Failed to initialize history schema", zap.Error(err))
				db = nil
			}
		}
	}

	var cache *redis.Client
	if cfg.Redis.Enabled {
		cache, err = redis.NewClient(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB,
			time.Duration(cfg.Redis.TTLSec)*time.Second)
		if err != nil {
			appLogger.Warn("Answer cache unavailable, continuing without it", zap.Error(err))
			cache = nil
		} else {
			defer cache.Close()
		}
	}

	engine := pipeline.NewEngine(pipeline.Options{
		Classifier:    intentStrategy,
		Generator:     gen,
		References:    catalog,
		Feedback:      aggregator,
		DB:            db,
		Cache:         cache,
		MaxReferences: cfg.References.MaxResults,
	})

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		BodyLimit:    cfg.Server.BodyLimit,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(security.HeadersMiddleware(security.HeadersConfig{}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	limiter := ratelimit.New(ratelimit.Config{
		MaxRequestsPerMinute: cfg.Server.RequestsPerMinute,
		Logger:               appLogger.GetLogger(),
	})
	defer limiter.Stop()

	askHandler := handlers.NewAskHandler(engine)
	feedbackHandler := handlers.NewFeedbackHandler(engine)
	metaHandler := handlers.NewMetaHandler(llmConfigured)

	api := app.Group("/api", limiter.Middleware())
	api.Use(validation.Middleware(validation.Config{
		MaxQuestionLength: cfg.Server.MaxQuestionLength,
		Logger:            appLogger.GetLogger(),
	}))

	api.Post("/ask", askHandler.HandleAsk)
	api.Post("/feedback", feedbackHandler.HandleFeedback)
	api.Get("/analytics", feedbackHandler.HandleAnalytics)
	api.Get("/topics", metaHandler.HandleTopics)
	api.Get("/status", metaHandler.HandleStatus)
	api.Get("/aurora", metaHandler.HandleAbout)

	app.Get("/metrics", metrics.MetricsHandler())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "Aurora Autism Assistant",
			"time":    time.Now().Unix(),
		})
	})

	app.Static("/", "./public")

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	appLogger.Info("Server starting", zap.String("address", addr))

	go func() {
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Server shutting down gracefully...")
	app.Shutdown()
	appLogger.Info("Server stopped")
}
