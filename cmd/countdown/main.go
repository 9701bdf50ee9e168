package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"countdown/internal/adapters/cli"
	"countdown/internal/application"
	"countdown/internal/config"
	"countdown/internal/domain"
	"countdown/internal/infrastructure/i18n"
	"countdown/internal/infrastructure/system"
	"countdown/internal/logging"
)

const (
	exitOK          = 0
	exitInvalidArgs = 1
	exitFailure     = 2
	exitInterrupted = 130
)

// Keep main on the initial OS thread so the reported thread id is the one
// doing the work.
func init() {
	runtime.LockOSThread()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitFailure)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(logging.WithLogger(ctx, logger), os.Stdout, os.Args, cfg)
	stop()
	os.Exit(code)
}

// run wires the adapters and returns the process exit code.
func run(ctx context.Context, w io.Writer, args []string, cfg *config.Config) int {
	log := logging.FromContext(ctx)

	lang := cli.ResolveLanguage(args, cfg.Locale)
	filtered := cli.FilterArgs(args)
	log.Debug("arguments", "lang", lang.String(), "filtered", filtered)

	catalog, err := i18n.NewCatalog()
	if err != nil {
		log.Error("i18n: catalog unavailable", "err", err)
		return exitFailure
	}

	svc := application.NewCountdownService(
		catalog,
		system.Clock{},
		system.NewSleeper(cfg.Tick),
		system.NewProcessInspector(),
		cfg.Location(),
	)

	err = svc.Run(ctx, w, lang, filtered)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, domain.ErrUsage), errors.Is(err, domain.ErrNotPositive):
		return exitInvalidArgs
	case errors.Is(err, context.Canceled):
		return exitInterrupted
	default:
		log.Error("countdown failed", "err", err)
		return exitFailure
	}
}
