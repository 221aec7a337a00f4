package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scamsignals/internal/api"
	"scamsignals/internal/api/handlers"
	"scamsignals/internal/config"
	"scamsignals/internal/domain/services"
	"scamsignals/internal/infrastructure/cache"
	"scamsignals/internal/infrastructure/database"
	"scamsignals/internal/infrastructure/database/repository"
	"scamsignals/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadDefault()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	var log *logger.Logger
	if cfg.App.Environment == "production" {
		log = logger.NewProduction()
	} else {
		log = logger.NewDevelopment()
	}
	logger.SetGlobal(log)

	log.Info().
		Str("app", cfg.App.Name).
		Str("env", cfg.App.Environment).
		Str("version", cfg.App.Version).
		Msg("starting scamsignals")

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize infrastructure
	db, redisCache := initInfrastructure(ctx, cfg, log)
	defer func() {
		if db != nil {
			db.Close()
		}
		if redisCache != nil {
			redisCache.Close()
		}
	}()

	// Initialize repositories
	var repos *repository.Repositories
	if db != nil {
		repos = repository.NewRepositories(db, log)
		if err := repos.Analyses.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to prepare database schema")
		}
		log.Info().Msg("repositories initialized with database")
	} else {
		log.Warn().Msg("running without database, analyses will not be persisted")
	}

	// Initialize services
	extractor := services.NewSignalExtractor(cfg.Extraction, log)
	deduplicator := services.NewDeduplicator(redisCache, log)

	// Seed the dedup set from previously stored analyses
	if repos != nil {
		if hashes, err := repos.Analyses.KnownHashes(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to load known hashes")
		} else {
			deduplicator.LoadExistingHashes(hashes)
		}
	}

	// Phishing blocklist feed
	var (
		phishList *services.PhishListCache
		checker   *services.ArtifactChecker
	)
	if cfg.Checker.Enabled {
		phishList = services.NewPhishListCache(cfg.Checker, log)
		checker = services.NewArtifactChecker(phishList, log)
		go func() {
			if err := phishList.Load(ctx); err != nil {
				log.Warn().Err(err).Msg("initial phishing feed load failed")
			}
			ticker := time.NewTicker(cfg.Checker.RefreshInterval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					if err := phishList.RefreshIfStale(ctx); err != nil {
						log.Warn().Err(err).Msg("phishing feed refresh failed")
					}
				}
			}
		}()
	}

	var analysisRepo *repository.AnalysisRepository
	if repos != nil {
		analysisRepo = repos.Analyses
	}
	analysis := services.NewAnalysisService(extractor, checker, deduplicator, analysisRepo, redisCache, log)

	// Initialize handlers
	deps := handlers.Dependencies{
		Analysis:  analysis,
		PhishList: phishList,
		Cache:     redisCache,
		Repos:     repos,
		Logger:    log,
	}
	h := handlers.NewHandlers(deps)

	// Create router
	router := api.NewRouter(*cfg, h, redisCache, log)
	httpHandler := router.Setup()

	// Start HTTP server
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.HTTPPort),
		Handler:      httpHandler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info().
			Str("addr", httpServer.Addr).
			Msg("starting HTTP server")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down...")

	// Cancel context to stop background services
	cancel()

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("shutdown complete")
}

// initInfrastructure initializes database and cache connections. Both
// are optional; the API degrades to in-memory operation without them.
func initInfrastructure(ctx context.Context, cfg *config.Config, log *logger.Logger) (*database.PostgresDB, *cache.RedisCache) {
	var db *database.PostgresDB
	if cfg.Database.Enabled {
		var err error
		db, err = database.NewPostgres(ctx, cfg.Database, log)
		if err != nil {
			log.Warn().Err(err).Msg("failed to connect to PostgreSQL, continuing without database")
			db = nil
		}
	}

	var redisCache *cache.RedisCache
	if cfg.Redis.Enabled {
		var err error
		redisCache, err = cache.NewRedis(ctx, cfg.Redis, log)
		if err != nil {
			log.Warn().Err(err).Msg("failed to connect to Redis, continuing without cache")
			redisCache = nil
		}
	}

	return db, redisCache
}
