//go:build !linux

package process

import (
	"context"
	"errors"
	"fmt"

	"github.com/shirou/gopsutil/v3/process"
)

// PsutilReader reads RSS through gopsutil where procfs is not available
type PsutilReader struct{}

// ReadRSS returns the RSS of pid in KiB
func (r *PsutilReader) ReadRSS(ctx context.Context, pid int32) (uint64, error) {
	p, err := process.NewProcessWithContext(ctx, pid)
	if errors.Is(err, process.ErrorProcessNotRunning) {
		return 0, fmt.Errorf("%w: pid %d", ErrVanished, pid)
	}
	if err != nil {
		return 0, err
	}

	memInfo, err := p.MemoryInfoWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("pid %d: %w", pid, err)
	}
	return memInfo.RSS / 1024, nil // Convert to KiB
}
