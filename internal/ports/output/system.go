package output

import (
	"context"
	"time"

	"countdown/internal/domain/entities"
)

// Clock reports wall-clock time.
type Clock interface {
	Now() time.Time
}

// Sleeper suspends the caller for one countdown tick.
type Sleeper interface {
	// Sleep blocks for one tick or until ctx is done, returning ctx.Err() in
	// the latter case.
	Sleep(ctx context.Context) error
}

// ProcessInspector identifies the running process and calling thread.
type ProcessInspector interface {
	Identify(ctx context.Context) (entities.Identity, error)
}
