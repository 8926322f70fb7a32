//go:build !linux

package memory

import (
	"context"

	"github.com/shirou/gopsutil/v3/mem"
)

// PsutilReader implements memory monitoring through gopsutil
type PsutilReader struct{}

func newPlatformReader(string) Reader {
	return &PsutilReader{}
}

// GetInfo returns memory information
func (r *PsutilReader) GetInfo(ctx context.Context) (*Info, error) {
	memInfo, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return NewInfo(0, 0), err
	}

	return NewInfo(memInfo.Total/1024, memInfo.Available/1024), nil // Convert to KiB
}
