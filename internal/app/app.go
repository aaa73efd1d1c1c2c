package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/nafes-platform/question-service/internal/auth/jwt"
	"github.com/nafes-platform/question-service/internal/config"
	"github.com/nafes-platform/question-service/internal/db/repository"
	sqlcgen "github.com/nafes-platform/question-service/internal/db/sqlc"
	"github.com/nafes-platform/question-service/internal/logging"
	"github.com/nafes-platform/question-service/internal/question"
	"github.com/nafes-platform/question-service/internal/question/parser"
	"github.com/nafes-platform/question-service/internal/server"
	ws "github.com/nafes-platform/question-service/pkg/http/ws"
)

// Application aggregates shared infrastructure (DB, cache, HTTP server).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	pool  *pgxpool.Pool
	redis *redis.Client
	http  *http.Server

	importWorker *question.ImportWorker
	previewHub   *ws.Hub
	bgCancels    []context.CancelFunc
}

// New bootstraps logger, Postgres, Redis, the question service and HTTP server.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env, cfg.LogLevel)
	logger.Info().Msg("starting application bootstrap")

	vocab := parser.Vocabulary{}
	if path := cfg.Parser.VocabularyPath; path != "" {
		loaded, err := parser.LoadVocabulary(path)
		if err != nil {
			return nil, fmt.Errorf("load parser vocabulary: %w", err)
		}
		vocab = loaded
		logger.Info().Str("path", path).Msg("parser vocabulary loaded")
	}
	questionParser := parser.New(vocab)

	pool, err := pgxpool.New(ctx, cfg.Postgres.ConnString())
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})

	queries := sqlcgen.New(pool)
	questionRepo := repository.NewQuestionRepository(queries)
	questionCache := question.NewCache(redisClient, cfg.Redis.CacheTTL, cfg.Redis.JobTTL)

	questionSvc, err := question.NewService(questionParser, questionRepo, questionCache, question.ServiceOptions{
		MemoSize:      cfg.Parser.MemoSize,
		MaxInputBytes: cfg.Parser.MaxInputBytes,
		MaxBatch:      cfg.Import.MaxBatch,
	}, logger)
	if err != nil {
		pool.Close()
		return nil, err
	}

	importWorker := question.NewImportWorker(questionSvc, questionCache, logger, question.WorkerOptions{
		Workers:   cfg.Import.Workers,
		QueueSize: cfg.Import.QueueSize,
		Timeout:   cfg.Import.Timeout,
	})

	tokens := jwt.NewManager(jwt.TokenConfig{
		AccessSecret: []byte(cfg.Security.JWTSecret),
		Issuer:       cfg.Security.JWTIssuer,
	})

	previewHub := ws.NewHub(logger)
	questionHTTP := question.NewHTTPHandler(questionSvc, importWorker, logger)
	previewWS := question.NewPreviewHandler(questionSvc, previewHub, server.NewUpgrader(cfg.CORS.AllowedOrigins), logger)

	apiServer := server.NewHTTPServer(cfg, logger, pool, redisClient, tokens, questionHTTP.Routes, previewWS.Routes)

	return &Application{
		cfg:          cfg,
		logger:       logger,
		pool:         pool,
		redis:        redisClient,
		http:         apiServer,
		importWorker: importWorker,
		previewHub:   previewHub,
		bgCancels:    make([]context.CancelFunc, 0, 1),
	}, nil
}

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	workersDone := a.startBackgroundWorkers(ctx)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		runErr = fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	// Hijacked WebSocket connections are not tracked by Shutdown.
	a.previewHub.CloseAll()
	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}

	a.importWorker.Stop()
	select {
	case <-workersDone:
	case <-shutdownCtx.Done():
		a.logger.Warn().Msg("import worker did not drain before timeout")
	}
	for _, cancel := range a.bgCancels {
		cancel()
	}

	a.pool.Close()
	if err := a.redis.Close(); err != nil {
		a.logger.Error().Err(err).Msg("redis shutdown error")
	}

	a.logger.Info().Msg("shutdown complete")
	return runErr
}

func (a *Application) startBackgroundWorkers(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	bgCtx, cancel := context.WithCancel(ctx)
	a.bgCancels = append(a.bgCancels, cancel)
	go func() {
		defer close(done)
		if err := a.importWorker.Run(bgCtx); err != nil && err != context.Canceled {
			a.logger.Warn().Err(err).Msg("import worker stopped")
		}
	}()
	return done
}
