package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/shareregistry/backoffice/internal/auth"
	"github.com/shareregistry/backoffice/internal/documents"
	"github.com/shareregistry/backoffice/internal/observability"
	"github.com/shareregistry/backoffice/internal/platform/crud"
	"github.com/shareregistry/backoffice/internal/platform/httpx"
	"github.com/shareregistry/backoffice/internal/platform/sheet"
	"github.com/shareregistry/backoffice/internal/platform/storage"
	"github.com/shareregistry/backoffice/jobs"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger          *slog.Logger
	Config          *Config
	AuthService     *auth.Service
	AuthHandler     *auth.Handler
	Modules         []crud.Routes
	DocumentHandler *documents.Handler
	JobHandler      *jobs.Handler
	Files           storage.Store
	Metrics         *observability.Metrics
	Ready           func(r *http.Request) error
}

// NewRouter constructs the chi.Router with the API defaults.
func NewRouter(params RouterParams) http.Handler {
	if params.Logger == nil {
		params.Logger = slog.Default()
	}
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if params.Ready != nil {
			if err := params.Ready(r); err != nil {
				params.Logger.Warn("health check", slog.Any("error", err))
				httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		if params.AuthHandler != nil {
			r.Route("/auth", params.AuthHandler.MountRoutes)
		}
		r.Group(func(r chi.Router) {
			if params.AuthService != nil {
				r.Use(auth.RequireAuth(params.AuthService, params.Logger))
			}
			for _, m := range params.Modules {
				r.Route(m.Prefix(), m.MountRoutes)
			}
			if params.DocumentHandler != nil {
				r.Route("/documents", params.DocumentHandler.MountRoutes)
			}
			if params.JobHandler != nil {
				r.Route("/jobs", params.JobHandler.MountRoutes)
			}
			if params.Files != nil {
				r.Get("/files/{name}", fileDownload(params.Files, params.Logger))
			}
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.RespondError(w, httpx.ErrNotFound)
	})
	return r
}

func fileDownload(files storage.Store, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		rc, err := files.Open(name)
		if errors.Is(err, storage.ErrInvalidName) {
			httpx.RespondError(w, httpx.NewValidationError("name", "is not a valid file name"))
			return
		}
		if errors.Is(err, os.ErrNotExist) {
			httpx.RespondError(w, fmt.Errorf("file %s: %w", name, httpx.ErrNotFound))
			return
		}
		if err != nil {
			logger.Error("file download", slog.String("name", name), slog.Any("error", err))
			httpx.RespondError(w, err)
			return
		}
		defer rc.Close()
		httpx.Attachment(w, contentType(name), name)
		w.WriteHeader(http.StatusOK)
		if _, err := io.Copy(w, rc); err != nil {
			logger.Warn("file download", slog.String("name", name), slog.Any("error", err))
		}
	}
}

func contentType(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx":
		return sheet.ContentType
	case ".pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}
