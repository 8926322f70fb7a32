package memory

import (
	"context"
	"strconv"

	"github.com/CristiGvl/memviz/internal/graph"
	"github.com/CristiGvl/memviz/internal/source"
)

// Info represents system memory in KiB
type Info struct {
	Total     uint64  `json:"total_kb"`
	Used      uint64  `json:"used_kb"`
	Available uint64  `json:"available_kb"`
	Usage     float64 `json:"usage_percent"`
}

// Reader interface for system memory
type Reader interface {
	GetInfo(ctx context.Context) (*Info, error)
}

// NewReader creates a new memory reader for the current platform. procRoot is only
// consulted where memory is read from procfs.
func NewReader(procRoot string) Reader {
	return newPlatformReader(procRoot)
}

// NewInfo derives Used and Usage from total and available. Used is clamped to zero
// when available exceeds total.
func NewInfo(total, available uint64) *Info {
	var used uint64
	if total > available {
		used = total - available
	}
	return &Info{
		Total:     total,
		Used:      used,
		Available: available,
		Usage:     graph.Percent(graph.Fraction(used, total)),
	}
}

// Parse reads MemTotal and MemAvailable from a meminfo formatted source. Keys that
// are absent or carry a malformed value are left at zero.
func Parse(src source.Source) (*Info, error) {
	var total, available uint64
	err := source.Scan(src, func(fields []string) {
		if len(fields) < 2 {
			return
		}
		val, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return
		}
		switch fields[0] {
		case "MemTotal:":
			total = val
		case "MemAvailable:":
			available = val
		}
	})
	return NewInfo(total, available), err
}
