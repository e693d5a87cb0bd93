package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/joho/godotenv"
	"github.com/mikiasgoitom/folio/internal/domain/contract"
	handlerHttp "github.com/mikiasgoitom/folio/internal/handler/http"
	redisclient "github.com/mikiasgoitom/folio/internal/infrastructure/cache"
	"github.com/mikiasgoitom/folio/internal/infrastructure/config"
	"github.com/mikiasgoitom/folio/internal/infrastructure/kvstore"
	"github.com/mikiasgoitom/folio/internal/infrastructure/logger"
	randomgenerator "github.com/mikiasgoitom/folio/internal/infrastructure/random_generator"
	"github.com/mikiasgoitom/folio/internal/infrastructure/repository/kv"
	"github.com/mikiasgoitom/folio/internal/infrastructure/revalidate"
	"github.com/mikiasgoitom/folio/internal/infrastructure/store"
	"github.com/mikiasgoitom/folio/internal/infrastructure/uuidgen"
	"github.com/mikiasgoitom/folio/internal/infrastructure/validator"
	"github.com/mikiasgoitom/folio/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig := config.NewConfig()
	appLogger := logger.NewLogger(appConfig.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Register custom validators
	validator.RegisterCustomValidators()

	// Engagement store: opened on first use so credentials may arrive late
	kvStore := kvstore.NewLazy(func(ctx context.Context) (contract.IKVStore, error) {
		return kvstore.Open(ctx, appConfig.StoreSettings())
	})
	defer func() {
		if err := kvStore.Close(); err != nil {
			appLogger.Warnf("failed to close engagement store: %v", err)
		}
	}()
	if appConfig.StoreEagerInit {
		if err := kvStore.Init(ctx); err != nil {
			appLogger.Fatalf("Failed to open engagement store: %v", err)
		}
		appLogger.Infof("engagement store ready")
	}

	// Page cache: shared through Redis when REDIS_URL is set, per process otherwise
	var pageCache contract.IPageCache
	if appConfig.RedisURL != "" {
		rdb, err := redisclient.NewRedisFromURL(ctx, appConfig.RedisURL)
		if err != nil {
			appLogger.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisclient.Close(rdb)
		pageCache = store.NewPageCacheStore(rdb, appConfig.GetPageCacheTTL())
	} else {
		pageCache = store.NewMemoryPageCache(appConfig.GetPageCacheTTL(), appConfig.PageCacheMaxKeys)
	}
	dispatcher := revalidate.NewDispatcher(pageCache, appLogger, appConfig.RevalidateQueueSize)
	defer dispatcher.Close()

	// Dependency Injection: Repositories and services
	engagementRepo := kv.NewEngagementRepository(kvStore)
	randomGenerator := randomgenerator.NewRandomGenerator()
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()

	// Dependency Injection: Usecases
	engagementUsecase := usecase.NewEngagementUsecase(
		engagementRepo, dispatcher, randomGenerator, appValidator, clockwork.NewRealClock(), appLogger,
	)

	// Setup API routes
	router := gin.New()
	router.Use(gin.Recovery())
	appRouter := handlerHttp.NewRouter(engagementUsecase, pageCache, kvStore, appLogger, appConfig, uuidGenerator)
	appRouter.SetupRoutes(router)

	srv := &http.Server{
		Addr:    ":" + appConfig.GetPort(),
		Handler: router,
	}
	go func() {
		appLogger.Infof("Server running on port %s", appConfig.GetPort())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Errorf("Failed to start server: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	appLogger.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), appConfig.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorf("graceful shutdown failed: %v", err)
	}
}
