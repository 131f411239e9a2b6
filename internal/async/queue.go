package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job is one background extraction request.
type Job struct {
	DocumentID  uuid.UUID
	Reprocess   bool
	SubmittedAt time.Time
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
