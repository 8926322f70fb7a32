package process

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/shirou/gopsutil/v3/process"
)

// ScanFinder resolves program names by walking the process table through gopsutil
type ScanFinder struct{}

// FindPIDs returns the pids whose process name equals name, ascending
func (f *ScanFinder) FindPIDs(ctx context.Context, name string) ([]int32, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}

	var pids []int32
	for _, p := range procs {
		pname, err := p.NameWithContext(ctx)
		if err != nil {
			continue // Skip processes that exited while scanning
		}
		if pname == name || strings.TrimSuffix(pname, ".exe") == name {
			pids = append(pids, p.Pid)
		}
	}
	slices.Sort(pids)

	return pids, nil
}
