package system

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/shirou/gopsutil/v3/process"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"countdown/internal/domain/entities"
	"countdown/internal/logging"
	"countdown/internal/ports/output"
)

var _ output.ProcessInspector = (*ProcessInspector)(nil)

// ProcessInspector reports the identity of the current process.
type ProcessInspector struct {
	goos string
	pid  func() int
	tid  func() uint64
}

func NewProcessInspector() *ProcessInspector {
	return &ProcessInspector{
		goos: runtime.GOOS,
		pid:  os.Getpid,
		tid:  currentThreadID,
	}
}

// Identify returns the pid, the OS id of the calling thread, the executable
// name and the platform name. The caller should be locked to its OS thread
// (runtime.LockOSThread) for the thread id to stay meaningful.
func (p *ProcessInspector) Identify(ctx context.Context) (entities.Identity, error) {
	pid := p.pid()
	proc, err := process.NewProcessWithContext(ctx, int32(pid))
	if err != nil {
		return entities.Identity{}, fmt.Errorf("system: inspect pid %d: %w", pid, err)
	}

	name, err := proc.NameWithContext(ctx)
	if err != nil || name == "" {
		logging.FromContext(ctx).Debug("process name unavailable, using argv[0]", "pid", pid, "err", err)
		name = filepath.Base(os.Args[0])
	}

	return entities.Identity{
		PID:      pid,
		ThreadID: p.tid(),
		Name:     name,
		Platform: PlatformName(p.goos),
	}, nil
}

// PlatformName title-cases a GOOS value for display: "linux" → "Linux".
func PlatformName(goos string) string {
	return cases.Title(language.Und).String(goos)
}
