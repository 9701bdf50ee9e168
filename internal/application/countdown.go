package application

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"countdown/internal/domain"
	"countdown/internal/logging"
	"countdown/internal/ports/input"
	"countdown/internal/ports/output"
)

var _ input.CountdownUseCase = (*CountdownService)(nil)

// TimestampLayout is how start and end times are printed.
const TimestampLayout = time.DateTime

type CountdownService struct {
	translator output.T
	clock      output.Clock
	sleeper    output.Sleeper
	inspector  output.ProcessInspector
	location   *time.Location
}

func NewCountdownService(
	translator output.T,
	clock output.Clock,
	sleeper output.Sleeper,
	inspector output.ProcessInspector,
	location *time.Location,
) *CountdownService {
	if location == nil {
		location = time.Local
	}
	return &CountdownService{
		translator: translator,
		clock:      clock,
		sleeper:    sleeper,
		inspector:  inspector,
		location:   location,
	}
}

// Run validates args and counts down.
//
// args must be the filtered vector: program name plus exactly one positive
// integer. Usage errors return domain.ErrUsage and value errors
// domain.ErrNotPositive, after the localized message has been written. A
// cancelled ctx stops the countdown between ticks and returns ctx.Err().
func (s *CountdownService) Run(ctx context.Context, w io.Writer, lang domain.Language, args []string) error {
	log := logging.FromContext(ctx)
	out := &lineWriter{w: bufio.NewWriter(w), t: s.translator, lang: lang}

	if len(args) != 2 {
		prog := s.programName(ctx, args)
		out.println(domain.MsgUsage, prog)
		out.println(domain.MsgExample, prog)
		log.Debug("usage error", "args", len(args))
		return out.finish(fmt.Errorf("%w: got %d", domain.ErrUsage, len(args)))
	}

	seconds, err := strconv.Atoi(args[1])
	if err != nil || seconds <= 0 {
		out.println(domain.MsgErrorPositive)
		log.Debug("value error", "arg", args[1])
		return out.finish(fmt.Errorf("%w: %q", domain.ErrNotPositive, args[1]))
	}

	id, err := s.inspector.Identify(ctx)
	if err != nil {
		return fmt.Errorf("identify process: %w", err)
	}

	out.println(domain.MsgHeader, id.Platform)
	out.println(domain.MsgStartTime, s.timestamp())
	out.println(domain.MsgProcessID, id.PID)
	out.println(domain.MsgThreadID, id.ThreadID)
	out.println(domain.MsgCountdownStart, seconds)
	out.println(domain.MsgSeparator)
	if out.err != nil {
		return out.err
	}

	log.Info("countdown started", "seconds", seconds, "pid", id.PID, "lang", lang.String())
	for left := seconds; left > 0; left-- {
		out.println(domain.MsgRemainingTime, left, id.PID)
		if out.err != nil {
			return out.err
		}
		if err := s.sleeper.Sleep(ctx); err != nil {
			log.Warn("countdown interrupted", "remaining", left, "err", err)
			return err
		}
	}

	out.println(domain.MsgSeparator)
	out.println(domain.MsgEndTime, s.timestamp())
	out.println(domain.MsgProcessComplete, id.PID)
	log.Info("countdown complete", "pid", id.PID)
	return out.err
}

func (s *CountdownService) timestamp() string {
	return s.clock.Now().In(s.location).Format(TimestampLayout)
}

// programName is args[0], or the executable name when args is empty.
func (s *CountdownService) programName(ctx context.Context, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	id, err := s.inspector.Identify(ctx)
	if err != nil {
		logging.FromContext(ctx).Debug("program name unavailable", "err", err)
		return ""
	}
	return id.Name
}

// lineWriter writes one localized line at a time and flushes it so the
// terminal stays live while the countdown sleeps. The first write error
// sticks and suppresses further output.
type lineWriter struct {
	w    *bufio.Writer
	t    output.T
	lang domain.Language
	err  error
}

func (lw *lineWriter) println(id domain.MessageID, args ...any) {
	if lw.err != nil {
		return
	}
	if _, err := lw.w.WriteString(lw.t.T(lw.lang, id, args...) + "\n"); err != nil {
		lw.err = fmt.Errorf("write %s: %w", id, err)
		return
	}
	if err := lw.w.Flush(); err != nil {
		lw.err = fmt.Errorf("flush %s: %w", id, err)
	}
}

// finish returns the sticky write error if any, else err.
func (lw *lineWriter) finish(err error) error {
	if lw.err != nil {
		return lw.err
	}
	return err
}
