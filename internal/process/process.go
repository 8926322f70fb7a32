package process

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/CristiGvl/memviz/internal/source"
)

// ErrVanished reports a process that exited between resolution and reading
var ErrVanished = errors.New("process vanished")

// Finder maps a program name to the pids currently running it
type Finder interface {
	FindPIDs(ctx context.Context, name string) ([]int32, error)
}

// RSSReader reads the resident set size of a single process in KiB
type RSSReader interface {
	ReadRSS(ctx context.Context, pid int32) (uint64, error)
}

// DefaultProcRoot is where procfs is mounted on linux
const DefaultProcRoot = "/proc"

// NewFinder creates the process finder for the current platform. On linux a
// procRoot other than DefaultProcRoot is walked directly so that pids come from
// the same process table the RSS reader uses.
func NewFinder(procRoot string) Finder {
	return newPlatformFinder(procRoot)
}

// NewRSSReader creates the RSS reader for the current platform. procRoot is only
// consulted where RSS is read from procfs.
func NewRSSReader(procRoot string) RSSReader {
	return newPlatformRSSReader(procRoot)
}

// Resolve returns the pids running name in the order the finder reported them.
// A lookup failure resolves to no pids; the error is returned for diagnostics.
func Resolve(ctx context.Context, f Finder, name string) ([]int32, error) {
	if name == "" {
		return nil, nil
	}
	pids, err := f.FindPIDs(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve pids for %s: %w", name, err)
	}
	return pids, nil
}

// ParseSmaps sums every Rss: line of an smaps formatted source. A process has one
// Rss: line per mapping. Malformed values are skipped.
func ParseSmaps(src source.Source) (uint64, error) {
	var rss uint64
	err := source.Scan(src, func(fields []string) {
		if len(fields) < 2 || fields[0] != "Rss:" {
			return
		}
		if kb, err := strconv.ParseUint(fields[1], 10, 64); err == nil {
			rss += kb
		}
	})
	return rss, err
}

func parsePIDs(fields []string) []int32 {
	pids := make([]int32, 0, len(fields))
	for _, f := range fields {
		pid, err := strconv.ParseInt(f, 10, 32)
		if err != nil || pid <= 0 {
			continue
		}
		pids = append(pids, int32(pid))
	}
	return pids
}
