package process

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

// commLen is the longest process name the kernel keeps in comm
const commLen = 15

// ProcfsFinder resolves program names by walking <ProcRoot>/<pid>/comm, e.g. a
// host /proc bind-mounted into a container
type ProcfsFinder struct {
	ProcRoot string
}

// FindPIDs returns the pids whose process name equals name, ascending
func (f *ProcfsFinder) FindPIDs(ctx context.Context, name string) ([]int32, error) {
	entries, err := os.ReadDir(f.ProcRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}

	var pids []int32
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pid, err := strconv.ParseInt(entry.Name(), 10, 32)
		if err != nil || pid <= 0 {
			continue
		}
		if f.matches(entry.Name(), name) {
			pids = append(pids, int32(pid))
		}
	}
	slices.Sort(pids)

	return pids, nil
}

func (f *ProcfsFinder) matches(pidDir, name string) bool {
	comm, err := os.ReadFile(filepath.Join(f.ProcRoot, pidDir, "comm"))
	if err != nil {
		return false // Skip processes that exited while scanning
	}
	pname := strings.TrimSuffix(string(comm), "\n")
	if pname == name {
		return true
	}
	if len(pname) < commLen || !strings.HasPrefix(name, pname) {
		return false
	}

	// comm is truncated, compare against the executable in argv[0]
	cmdline, err := os.ReadFile(filepath.Join(f.ProcRoot, pidDir, "cmdline"))
	if err != nil {
		return false
	}
	argv0, _, _ := strings.Cut(string(cmdline), "\x00")
	return filepath.Base(argv0) == name
}
