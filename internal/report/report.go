package report

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/CristiGvl/memviz/internal/graph"
	"github.com/CristiGvl/memviz/internal/memory"
	"github.com/CristiGvl/memviz/internal/process"
)

// DefaultLength is the bar width used when none is configured
const DefaultLength = 20

// ErrNotFound is returned when a program resolves to no running processes
var ErrNotFound = errors.New("program not found")

// Config selects what a report covers and how it is rendered
type Config struct {
	// Program selects process mode; empty selects system mode
	Program       string
	HumanReadable bool
	Length        int
}

// SystemReport represents system-wide memory usage in KiB
type SystemReport struct {
	Total     uint64  `json:"total_kb"`
	Available uint64  `json:"available_kb"`
	Used      uint64  `json:"used_kb"`
	Fraction  float64 `json:"fraction"`
	Bar       string  `json:"bar"`
}

// PidUsage represents the resident memory of a single process
type PidUsage struct {
	PID      int32   `json:"pid"`
	RSS      uint64  `json:"rss_kb"`
	Fraction float64 `json:"fraction"`
	Bar      string  `json:"bar"`
	Err      string  `json:"error,omitempty"`
}

// ProcessReport represents the memory of every process of a program. Fractions
// are relative to total system memory.
type ProcessReport struct {
	Program   string     `json:"program"`
	Entries   []PidUsage `json:"processes"`
	Aggregate uint64     `json:"rss_kb"`
	Total     uint64     `json:"total_kb"`
	Fraction  float64    `json:"fraction"`
	Bar       string     `json:"bar"`
}

// Builder assembles reports from the memory readers and the process resolver
type Builder struct {
	Memory memory.Reader
	Finder process.Finder
	RSS    process.RSSReader
	Logger *log.Logger
}

// NewBuilder creates a Builder wired to the platform readers
func NewBuilder(procRoot string, logger *log.Logger) *Builder {
	if logger == nil {
		logger = log.New(os.Stderr, "memviz: ", 0)
	}
	return &Builder{
		Memory: memory.NewReader(procRoot),
		Finder: process.NewFinder(procRoot),
		RSS:    process.NewRSSReader(procRoot),
		Logger: logger,
	}
}

func (b *Builder) logf(format string, args ...any) {
	if b.Logger != nil {
		b.Logger.Printf(format, args...)
	}
}

func (b *Builder) memInfo(ctx context.Context) *memory.Info {
	info, err := b.Memory.GetInfo(ctx)
	if err != nil {
		b.logf("Failed to read system memory: %v", err)
	}
	if info == nil {
		info = memory.NewInfo(0, 0)
	}
	return info
}

// System builds a system-wide report with a bar of the given width
func (b *Builder) System(ctx context.Context, width int) *SystemReport {
	info := b.memInfo(ctx)
	fraction := graph.Fraction(info.Used, info.Total)

	return &SystemReport{
		Total:     info.Total,
		Available: info.Available,
		Used:      info.Used,
		Fraction:  fraction,
		Bar:       graph.RenderBar(fraction, width),
	}
}

// Process builds a per-process report for program. Processes are read one at a
// time in resolution order; a process that cannot be read counts as zero. It
// returns ErrNotFound when program has no running processes.
func (b *Builder) Process(ctx context.Context, program string, width int) (*ProcessReport, error) {
	pids, err := process.Resolve(ctx, b.Finder, program)
	if err != nil {
		b.logf("%v", err)
	}
	if len(pids) == 0 {
		return nil, ErrNotFound
	}

	total := b.memInfo(ctx).Total
	r := &ProcessReport{
		Program: program,
		Entries: make([]PidUsage, 0, len(pids)),
		Total:   total,
	}

	for _, pid := range pids {
		usage := PidUsage{PID: pid}
		rss, err := b.RSS.ReadRSS(ctx, pid)
		if err != nil {
			b.logf("Unable to read memory usage of pid %d: %v", pid, err)
			usage.Err = err.Error()
			rss = 0
		}
		usage.RSS = rss
		usage.Fraction = graph.Fraction(rss, total)
		usage.Bar = graph.RenderBar(usage.Fraction, width)

		r.Aggregate += rss
		r.Entries = append(r.Entries, usage)
	}

	r.Fraction = graph.Fraction(r.Aggregate, total)
	r.Bar = graph.RenderBar(r.Fraction, width)

	return r, nil
}
