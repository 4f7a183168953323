package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hibiken/asynq"

	"github.com/shareregistry/backoffice/internal/documents"
	"github.com/shareregistry/backoffice/jobs"
)

// JobsCLI wraps manual management helpers for Asynq jobs.
type JobsCLI struct {
	client    *jobs.Client
	inspector *asynq.Inspector
}

// NewJobsCLI initialises the CLI helpers on the given Redis connection.
func NewJobsCLI(opt asynq.RedisClientOpt) *JobsCLI {
	return &JobsCLI{client: jobs.NewClient(opt), inspector: asynq.NewInspector(opt)}
}

// Close releases underlying resources.
func (c *JobsCLI) Close() error {
	return errors.Join(c.inspector.Close(), c.client.Close())
}

// Render enqueues a document render.
func (c *JobsCLI) Render(ctx context.Context, kind string, id int64, out io.Writer) error {
	if _, err := documents.ParseKind(kind); err != nil {
		return err
	}
	taskID, err := c.client.EnqueueRender(ctx, kind, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "queued %s %d as task %s\n", kind, id, taskID)
	return nil
}

// Stats prints the default queue counters.
func (c *JobsCLI) Stats(out io.Writer) error {
	info, err := c.inspector.GetQueueInfo(jobs.QueueDefault)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "queue=%s pending=%d active=%d scheduled=%d retry=%d archived=%d\n",
		info.Queue, info.Pending, info.Active, info.Scheduled, info.Retry, info.Archived)
	return nil
}
