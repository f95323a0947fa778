package async

import (
	"context"
	"time"

	processor "github.com/tkarvonen/huoltokirja/internal/pipeline"
)

// Job is one document to push through the pipeline.
type Job struct {
	Path        string
	Opts        processor.RunOptions
	SubmittedAt time.Time
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
