package crud

import (
	"context"
	"errors"
	"io"

	"github.com/go-chi/chi/v5"
)

// ErrImportDisabled is returned by Transfer.Import for modules without import.
var ErrImportDisabled = errors.New("import is not enabled for this module")

// Routes is implemented by every module handler.
type Routes interface {
	Slug() string
	Prefix() string
	MountRoutes(r chi.Router)
}

// Transfer runs spreadsheet import and export outside of HTTP.
type Transfer interface {
	Slug() string
	Scoped() bool
	Import(ctx context.Context, r io.Reader) (ImportResult, error)
	Export(ctx context.Context, w io.Writer, filter Filter) (int, error)
}

// Module bundles the wired store, service and handler of one entity.
type Module[T Record, P any] struct {
	Store   Store[T]
	Service *Service[T, P]
	Handler *Handler[T, P]
}

// NewModule instantiates the crud stack for one entity.
func NewModule[T Record, P any](store Store[T], def Definition[T, P], cfg HandlerConfig, deps HandlerDeps) *Module[T, P] {
	svc := NewService(store, def)
	return &Module[T, P]{Store: store, Service: svc, Handler: NewHandler(svc, cfg, deps)}
}

// Slug is the module route prefix without the leading slash.
func (h *Handler[T, P]) Slug() string {
	return h.cfg.Slug
}

// Scoped reports whether listings need a parent id.
func (h *Handler[T, P]) Scoped() bool {
	return h.service.Definition().Scoped()
}

// Import runs the spreadsheet importer.
func (h *Handler[T, P]) Import(ctx context.Context, r io.Reader) (ImportResult, error) {
	if h.importer == nil {
		return ImportResult{}, ErrImportDisabled
	}
	return h.importer.Import(ctx, r)
}

// Export writes every record matching filter and returns how many were written.
func (h *Handler[T, P]) Export(ctx context.Context, w io.Writer, filter Filter) (int, error) {
	items, err := h.service.All(ctx, filter)
	if err != nil {
		return 0, err
	}
	if err := h.exporter.Write(w, items); err != nil {
		return 0, err
	}
	return len(items), nil
}

