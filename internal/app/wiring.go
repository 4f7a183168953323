package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/shareregistry/backoffice/internal/auth"
	"github.com/shareregistry/backoffice/internal/documents"
	"github.com/shareregistry/backoffice/internal/observability"
	"github.com/shareregistry/backoffice/internal/platform/cache"
	"github.com/shareregistry/backoffice/internal/platform/crud"
	"github.com/shareregistry/backoffice/internal/platform/db"
	"github.com/shareregistry/backoffice/internal/platform/pdf"
	"github.com/shareregistry/backoffice/internal/platform/sheet"
	"github.com/shareregistry/backoffice/internal/platform/storage"
	"github.com/shareregistry/backoffice/internal/registry"
	"github.com/shareregistry/backoffice/jobs"
)

// Data is the database-backed part of the application: enough for the CLI.
type Data struct {
	Pool     *pgxpool.Pool
	Files    *storage.Local
	Metrics  *observability.Metrics
	Registry *registry.Registry
	Users    *auth.PGRepository
}

// OpenData connects PostgreSQL and wires every module.
func OpenData(ctx context.Context, cfg *Config, logger *slog.Logger) (*Data, error) {
	pool, err := db.New(ctx, cfg.PGDSN, cfg.PGMaxConns)
	if err != nil {
		return nil, err
	}
	files, err := storage.NewLocal(cfg.StorageDir)
	if err != nil {
		pool.Close()
		return nil, err
	}
	metrics := observability.NewMetrics()
	reg := registry.New(registry.PostgresStores(pool), crud.HandlerDeps{
		Logger:         logger,
		Sheets:         sheet.NewExcel(""),
		Files:          files,
		Observer:       metrics,
		MaxUploadBytes: cfg.ImportMaxBytes,
	}, registry.Options{HoldingConcurrency: cfg.HoldingConcurrency})
	return &Data{
		Pool:     pool,
		Files:    files,
		Metrics:  metrics,
		Registry: reg,
		Users:    auth.NewRepository(pool),
	}, nil
}

// Close releases the pool.
func (d *Data) Close() {
	d.Pool.Close()
}

// Services is everything the API server and the worker need.
type Services struct {
	*Data
	Config    *Config
	Logger    *slog.Logger
	Redis     *redis.Client
	Auth      *auth.Service
	Documents *documents.Service
	Jobs      *jobs.Client
	Inspector *asynq.Inspector
}

// Bootstrap opens every backing service.
func Bootstrap(ctx context.Context, cfg *Config, logger *slog.Logger) (*Services, error) {
	data, err := OpenData(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	redisOpts := cache.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB}
	redisClient, err := cache.New(ctx, redisOpts)
	if err != nil {
		data.Close()
		return nil, err
	}

	pdfClient := pdf.NewClient(cfg.GotenbergURL, cfg.GotenbergTimeout)
	renderer, err := documents.NewRenderer(pdfClient)
	if err != nil {
		data.Close()
		_ = redisClient.Close()
		return nil, fmt.Errorf("init document renderer: %w", err)
	}
	docs := documents.NewService(documents.Config{
		Sources:  data.Registry.DocumentSources(),
		Renderer: renderer,
		Files:    data.Files,
		Observer: data.Metrics,
		Logger:   logger,
	})

	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	return &Services{
		Data:      data,
		Config:    cfg,
		Logger:    logger,
		Redis:     redisClient,
		Auth:      auth.NewService(data.Users, tokens, auth.NewRedisRevocations(redisClient)),
		Documents: docs,
		Jobs:      jobs.NewClient(redisOpts.AsynqOpt()),
		Inspector: asynq.NewInspector(redisOpts.AsynqOpt()),
	}, nil
}

// Router builds the HTTP handler of the API server.
func (s *Services) Router() http.Handler {
	return NewRouter(RouterParams{
		Logger:          s.Logger,
		Config:          s.Config,
		AuthService:     s.Auth,
		AuthHandler:     auth.NewHandler(s.Logger, s.Auth),
		Modules:         s.Registry.Routes(),
		DocumentHandler: documents.NewHandler(s.Documents, s.Jobs, s.Logger),
		JobHandler:      jobs.NewHandler(s.Inspector, s.Logger),
		Files:           s.Files,
		Metrics:         s.Metrics,
		Ready:           s.ready,
	})
}

func (s *Services) ready(r *http.Request) error {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := s.Pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	if err := s.Redis.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	return nil
}

// Close releases every backing service.
func (s *Services) Close() {
	if err := s.Jobs.Close(); err != nil {
		s.Logger.Warn("jobs client close", slog.Any("error", err))
	}
	if err := s.Inspector.Close(); err != nil {
		s.Logger.Warn("inspector close", slog.Any("error", err))
	}
	if err := s.Redis.Close(); err != nil {
		s.Logger.Warn("redis close", slog.Any("error", err))
	}
	s.Data.Close()
}
