//go:build windows

package process

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/StackExchange/wmi"
)

// Win32_Process represents the WMI Win32_Process class
type Win32_Process struct {
	ProcessId uint32
}

func newPlatformFinder(string) Finder {
	return &WMIFinder{}
}

func newPlatformRSSReader(string) RSSReader {
	return &PsutilReader{}
}

// WMIFinder resolves program names with a Win32_Process query
type WMIFinder struct{}

// FindPIDs returns the ids of processes whose image name matches name
func (f *WMIFinder) FindPIDs(ctx context.Context, name string) ([]int32, error) {
	if filepath.Ext(name) == "" {
		name += ".exe"
	}
	escaped := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(name)

	var procs []Win32_Process
	query := fmt.Sprintf("SELECT ProcessId FROM Win32_Process WHERE Name = '%s'", escaped)
	if err := wmi.Query(query, &procs); err != nil {
		return nil, fmt.Errorf("failed to query WMI: %w", err)
	}

	pids := make([]int32, 0, len(procs))
	for _, p := range procs {
		pids = append(pids, int32(p.ProcessId))
	}
	return pids, nil
}
