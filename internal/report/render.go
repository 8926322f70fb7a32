package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/CristiGvl/memviz/internal/graph"
	"github.com/CristiGvl/memviz/internal/units"
)

func line(label, bar string, fraction float64, used, total uint64, human bool) string {
	return fmt.Sprintf("%-15s [%s | %.0f%%] %s/%s",
		label, bar, graph.Percent(fraction), units.Format(used, human), units.Format(total, human))
}

// Lines renders the report as a single "Memory" line
func (r *SystemReport) Lines(human bool) []string {
	return []string{line("Memory", r.Bar, r.Fraction, r.Used, r.Total, human)}
}

// Lines renders one line per process followed by the aggregate line for the program
func (r *ProcessReport) Lines(human bool) []string {
	lines := make([]string, 0, len(r.Entries)+1)
	for _, e := range r.Entries {
		lines = append(lines, line(strconv.Itoa(int(e.PID)), e.Bar, e.Fraction, e.RSS, r.Total, human))
	}
	return append(lines, line(r.Program, r.Bar, r.Fraction, r.Aggregate, r.Total, human))
}

// NotFoundMessage is printed when a program has no running processes
func NotFoundMessage(program string) string {
	return program + " not found."
}

// Run builds the report selected by cfg and writes it to w. A program without
// running processes prints NotFoundMessage and is not an error.
func (b *Builder) Run(ctx context.Context, w io.Writer, cfg Config) error {
	var lines []string
	if cfg.Program == "" {
		lines = b.System(ctx, cfg.Length).Lines(cfg.HumanReadable)
	} else {
		r, err := b.Process(ctx, cfg.Program, cfg.Length)
		switch {
		case errors.Is(err, ErrNotFound):
			lines = []string{NotFoundMessage(cfg.Program)}
		case err != nil:
			return err
		default:
			lines = r.Lines(cfg.HumanReadable)
		}
	}

	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}
