package process

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// PidofFinder resolves program names with the pidof(8) helper
type PidofFinder struct {
	// Path of the pidof binary, "pidof" when empty
	Path string
}

// FindPIDs runs pidof for name. pidof exits with status 1 when nothing matches,
// which is reported as an empty result rather than an error.
func (f *PidofFinder) FindPIDs(ctx context.Context, name string) ([]int32, error) {
	bin := f.Path
	if bin == "" {
		bin = "pidof"
	}

	out, err := exec.CommandContext(ctx, bin, name).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return nil, nil
		}
		return nil, fmt.Errorf("pidof %s: %w", name, err)
	}

	return parsePIDs(strings.Fields(string(out))), nil
}
