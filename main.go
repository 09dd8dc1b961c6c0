package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"equity-calculator/config"
	httpLayer "equity-calculator/http"
	"equity-calculator/pkg/logger"
	"equity-calculator/repository"
	"equity-calculator/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallbackLog := logger.New(logger.Config{Level: "info", Pretty: true})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	logger.SetGlobalLogger(log)

	calculationRepo := repository.NewCalculationRepositoryMemory(cfg.HistorySize)
	cache, closeCache := newCache(cfg, log)
	defer closeCache()

	equityService := service.NewEquityService(calculationRepo, cache, log)
	sweepService := service.NewSweepService(log)
	equityHandler := httpLayer.NewEquityHandler(equityService, sweepService, log)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitCapacity, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	router := httpLayer.NewRouter(httpLayer.RouterConfig{
		Log:         log,
		RateLimiter: rateLimiter,
		Equity:      equityHandler,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.Port).Msg("Equity calculator API listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Error().Err(err).Msg("Error starting server")
		return
	case <-quit:
		log.Info().Msg("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server exited")
}

// newCache connects to Redis when configured and falls back to a bounded
// in-memory cache when it is unset or unreachable.
func newCache(cfg *config.Config, log zerolog.Logger) (repository.CacheRepository, func()) {
	if cfg.RedisAddr == "" {
		return repository.NewMemoryCache(cfg.CacheSize, cfg.CacheTTL), func() {}
	}

	redisCache := repository.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := redisCache.Ping(ctx); err != nil {
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("Redis unavailable, using in-memory cache")
		_ = redisCache.Close()
		return repository.NewMemoryCache(cfg.CacheSize, cfg.CacheTTL), func() {}
	}

	log.Info().Str("addr", cfg.RedisAddr).Msg("Using Redis calculation cache")
	return redisCache, func() { _ = redisCache.Close() }
}
