package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/shareregistry/backoffice/internal/documents"
	jobmetrics "github.com/shareregistry/backoffice/internal/jobs"
	"github.com/shareregistry/backoffice/internal/platform/httpx"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskRenderDocument renders a document to PDF and stores it.
	TaskRenderDocument = "document:render"
)

// RenderDocumentPayload identifies the document to render.
type RenderDocumentPayload struct {
	Kind string `json:"kind"`
	ID   int64  `json:"id"`
}

// NewRenderDocumentTask constructs an Asynq task.
func NewRenderDocumentTask(payload RenderDocumentPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskRenderDocument, data, asynq.MaxRetry(5)), nil
}

// DocumentRenderer is the subset of documents.Service the job needs.
type DocumentRenderer interface {
	RenderAndStore(ctx context.Context, kind documents.Kind, id int64) (string, error)
}

// RenderDocumentJob processes TaskRenderDocument tasks.
type RenderDocumentJob struct {
	renderer DocumentRenderer
	logger   *slog.Logger
	metrics  *jobmetrics.Metrics
}

// NewRenderDocumentJob constructs the job handler.
func NewRenderDocumentJob(renderer DocumentRenderer, logger *slog.Logger, metrics *jobmetrics.Metrics) *RenderDocumentJob {
	if logger == nil {
		logger = slog.Default()
	}
	return &RenderDocumentJob{renderer: renderer, logger: logger, metrics: metrics}
}

// Handle renders and stores the document. Bad payloads and missing records
// are not retried.
func (j *RenderDocumentJob) Handle(ctx context.Context, t *asynq.Task) error {
	tracker := j.metrics.Track(TaskRenderDocument)
	var payload RenderDocumentPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return tracker.End(fmt.Errorf("decode payload: %v: %w", err, asynq.SkipRetry))
	}
	kind, err := documents.ParseKind(payload.Kind)
	if err != nil || payload.ID <= 0 {
		return tracker.End(fmt.Errorf("invalid document %q/%d: %w", payload.Kind, payload.ID, asynq.SkipRetry))
	}
	name, err := j.renderer.RenderAndStore(ctx, kind, payload.ID)
	if err != nil {
		j.logger.Error("render document job", slog.String("kind", payload.Kind), slog.Int64("id", payload.ID), slog.Any("error", err))
		if errors.Is(err, httpx.ErrNotFound) {
			return tracker.End(fmt.Errorf("%v: %w", err, asynq.SkipRetry))
		}
		return tracker.End(err)
	}
	j.logger.Info("render document job", slog.String("kind", payload.Kind), slog.Int64("id", payload.ID), slog.String("file", name))
	return tracker.End(nil)
}
