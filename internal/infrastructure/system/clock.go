package system

import (
	"context"
	"time"

	"countdown/internal/ports/output"
)

var (
	_ output.Clock   = Clock{}
	_ output.Sleeper = (*Sleeper)(nil)
)

// Clock is the wall clock.
type Clock struct{}

func (Clock) Now() time.Time { return time.Now() }

// Sleeper blocks for a fixed tick. Unlike time.Sleep it returns early when
// the context is cancelled.
type Sleeper struct {
	tick time.Duration
}

func NewSleeper(tick time.Duration) *Sleeper {
	if tick <= 0 {
		tick = time.Second
	}
	return &Sleeper{tick: tick}
}

func (s *Sleeper) Tick() time.Duration { return s.tick }

func (s *Sleeper) Sleep(ctx context.Context) error {
	timer := time.NewTimer(s.tick)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
