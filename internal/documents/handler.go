package documents

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shareregistry/backoffice/internal/platform/httpx"
)

// Enqueuer schedules a background render.
type Enqueuer interface {
	EnqueueRender(ctx context.Context, kind string, id int64) (string, error)
}

// Handler serves document downloads and render requests.
type Handler struct {
	service *Service
	queue   Enqueuer
	logger  *slog.Logger
}

// NewHandler constructs a Handler. queue may be nil, which disables the
// queue route.
func NewHandler(service *Service, queue Enqueuer, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{service: service, queue: queue, logger: logger}
}

// MountRoutes attaches document routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/{kind}/{id}", h.download)
	if h.queue != nil {
		r.Post("/{kind}/{id}/queue", h.enqueue)
	}
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	kind, id, err := params(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	doc, err := h.service.Render(r.Context(), kind, id)
	if err != nil {
		h.fail(w, "render document", err, kind, id)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "inline; filename=\""+doc.FileName+"\"")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc.PDF)
}

type queued struct {
	TaskID string `json:"taskID"`
	Kind   Kind   `json:"kind"`
	ID     int64  `json:"id"`
}

func (h *Handler) enqueue(w http.ResponseWriter, r *http.Request) {
	kind, id, err := params(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	// Fail fast on missing records rather than in the worker.
	if _, err := h.service.View(r.Context(), kind, id); err != nil {
		h.fail(w, "queue document", err, kind, id)
		return
	}
	taskID, err := h.queue.EnqueueRender(r.Context(), string(kind), id)
	if err != nil {
		h.fail(w, "queue document", err, kind, id)
		return
	}
	httpx.Success(w, http.StatusAccepted, "Document queued for rendering", queued{TaskID: taskID, Kind: kind, ID: id})
}

func (h *Handler) fail(w http.ResponseWriter, msg string, err error, kind Kind, id int64) {
	attrs := []any{slog.String("kind", string(kind)), slog.Int64("id", id), slog.Any("error", err)}
	if httpx.StatusFor(err) >= http.StatusInternalServerError {
		h.logger.Error(msg, attrs...)
	} else {
		h.logger.Warn(msg, attrs...)
	}
	httpx.RespondError(w, err)
}

func params(r *http.Request) (Kind, int64, error) {
	kind, err := ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		return "", 0, err
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return "", 0, httpx.NewValidationError("id", "must be a positive integer")
	}
	return kind, id, nil
}
