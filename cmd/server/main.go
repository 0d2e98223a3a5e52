package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"insure-dw.backend/internal/config"
	"insure-dw.backend/internal/infrastructure/datasources"
	"insure-dw.backend/internal/infrastructure/openai"
	"insure-dw.backend/internal/infrastructure/repositories"
	"insure-dw.backend/internal/interfaces/http/handlers"
	"insure-dw.backend/internal/usecases"
	"insure-dw.backend/pkg/logger"
	"insure-dw.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = datasources.Open
	migrateDB  = datasources.Migrate
	runServer  = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := migrateDB(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	logger.Info(context.Background(), "Database ready", zap.String("driver", cfg.Database.Driver))

	// Redis is optional; without it the OpenAI key lives in process memory
	keyStore := buildKeyStore(cfg)

	deps, err := buildRouteDeps(db, keyStore, cfg)
	if err != nil {
		return err
	}

	r := gin.New()
	registerMiddleware(r)
	registerAPIV1Routes(r, deps)
	registerHealthRoute(r)
	registerMetricsRoute(r)

	logger.Info(context.Background(), "Server starting", zap.String("port", cfg.Server.Port))
	return runServer(r, cfg.Server.Port)
}

// buildKeyStore prefers the encrypted redis store and falls back to an
// in-memory one when redis is not reachable
func buildKeyStore(cfg *config.Config) usecases.APIKeyStore {
	ctx := context.Background()

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Warn(ctx, "Redis unavailable, using in-memory key store", zap.Error(err))
		return usecases.NewInMemoryKeyStore()
	}

	store, err := redis.NewKeyStore(cfg.Redis.KeyEncryptionKey)
	if err != nil {
		logger.Warn(ctx, "Key store init failed, using in-memory key store", zap.Error(err))
		return usecases.NewInMemoryKeyStore()
	}
	logger.Info(ctx, "Redis key store initialized")
	return store
}

// buildRouteDeps wires repositories, usecases and handlers
func buildRouteDeps(db *gorm.DB, keyStore usecases.APIKeyStore, cfg *config.Config) (routeDeps, error) {
	ctx := context.Background()

	userRepo := repositories.NewUserRepository(db)
	quoteRepo := repositories.NewQuoteRepository(db)
	policyRepo := repositories.NewPolicyRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	featureRepo := repositories.NewFeatureRepository(db)
	statsRepo := repositories.NewStatsRepository(db)
	queryRepo := repositories.NewQueryRepository(db)

	userUsecase := usecases.NewUserUsecase(userRepo, quoteRepo, policyRepo)
	quoteUsecase := usecases.NewQuoteUsecase(quoteRepo, userRepo)
	policyUsecase := usecases.NewPolicyUsecase(policyRepo, quoteRepo, userRepo)
	paymentUsecase := usecases.NewPaymentUsecase(paymentRepo, policyRepo, usecases.NewRandomAuthorizer())
	analyticsUsecase := usecases.NewAnalyticsUsecase(statsRepo)

	featureUsecase := usecases.NewFeatureStoreUsecase(featureRepo, userRepo, quoteRepo, paymentRepo)
	if err := featureUsecase.EnsureMetadata(ctx); err != nil {
		return routeDeps{}, fmt.Errorf("failed to seed feature metadata: %w", err)
	}

	nlQueryUsecase := usecases.NewNLQueryUsecase(queryRepo, keyStore,
		func(apiKey string) usecases.ChatClient { return openai.NewClient(apiKey) },
		usecases.QueryLimits{
			DefaultRowLimit: cfg.Query.DefaultRowLimit,
			MaxRowLimit:     cfg.Query.MaxRowLimit,
		})

	// a key provided via environment is stored without a live validation
	// round trip; bad keys surface on first use
	if cfg.OpenAI.APIKey != "" {
		if err := keyStore.Set(ctx, cfg.OpenAI.APIKey); err != nil {
			logger.Warn(ctx, "Failed to seed OpenAI API key", zap.Error(err))
		}
	}

	return routeDeps{
		userHandler:      handlers.NewUserHandler(userUsecase),
		quoteHandler:     handlers.NewQuoteHandler(quoteUsecase),
		policyHandler:    handlers.NewPolicyHandler(policyUsecase, paymentUsecase),
		paymentHandler:   handlers.NewPaymentHandler(paymentUsecase),
		analyticsHandler: handlers.NewAnalyticsHandler(analyticsUsecase),
		featureHandler:   handlers.NewFeatureStoreHandler(featureUsecase),
		openaiHandler:    handlers.NewOpenAIHandler(nlQueryUsecase),
	}, nil
}
