package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zizouhuweidi/trivia/internal/config"
	"github.com/zizouhuweidi/trivia/internal/database"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/handler"
	"github.com/zizouhuweidi/trivia/internal/logging"
	"github.com/zizouhuweidi/trivia/internal/ratelimit"
	"github.com/zizouhuweidi/trivia/internal/repository/memory"
	"github.com/zizouhuweidi/trivia/internal/repository/postgres"
	"github.com/zizouhuweidi/trivia/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, cfg.LogLevel)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx := context.Background()

	// Initialize repositories
	var (
		questionRepo domain.QuestionRepository
		categoryRepo domain.CategoryRepository
		ping         func(context.Context) error
	)
	switch cfg.StoreDriver {
	case config.DriverMemory:
		store := memory.NewSeededStore()
		questionRepo = store.Questions()
		categoryRepo = store.Categories()
		logger.Warn("using in-memory store, data is lost on restart")
	default:
		pool, err := database.ConnectPostgres(ctx, cfg.Postgres)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := database.Migrate(ctx, pool, cfg.Seed, logger); err != nil {
			return err
		}
		questionRepo = postgres.NewQuestionRepository(pool)
		categoryRepo = postgres.NewCategoryRepository(pool)
		ping = pool.Ping
	}

	// Optional Redis backed rate limiting
	var limiter *ratelimit.Limiter
	if cfg.RateLimitPerMinute > 0 {
		redisClient, err := database.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer redisClient.Close()
		limiter = ratelimit.New(ratelimit.NewRedisCounter(redisClient), cfg.RateLimitPerMinute, time.Minute, logger)
	}

	// Initialize services and handlers
	triviaService := service.NewTriviaService(questionRepo, categoryRepo, service.NewQuizSelector(cfg.QuizSeed), logger)
	e := handler.NewServer(
		handler.NewTriviaHandler(triviaService),
		handler.NewHealthHandler(ping),
		handler.ServerConfig{
			AllowOrigins: cfg.CORSAllowOrigins,
			Limiter:      limiter,
			Logger:       logger,
		},
	)

	// Start server
	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.ServerAddr, "store", cfg.StoreDriver)
		if err := e.Start(cfg.ServerAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	return e.Shutdown(shutdownCtx)
}
