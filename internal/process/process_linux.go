//go:build linux

package process

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/CristiGvl/memviz/internal/source"
)

func newPlatformFinder(procRoot string) Finder {
	if procRoot != "" && filepath.Clean(procRoot) != DefaultProcRoot {
		return &ProcfsFinder{ProcRoot: procRoot}
	}
	if path, err := exec.LookPath("pidof"); err == nil {
		return &PidofFinder{Path: path}
	}
	return &ScanFinder{}
}

func newPlatformRSSReader(procRoot string) RSSReader {
	return &SmapsReader{ProcRoot: procRoot}
}

// SmapsReader reads RSS from <ProcRoot>/<pid>/smaps
type SmapsReader struct {
	ProcRoot string
}

// ReadRSS returns the RSS of pid summed over all of its mappings. A missing smaps
// file yields 0 and an error wrapping ErrVanished.
func (r *SmapsReader) ReadRSS(ctx context.Context, pid int32) (uint64, error) {
	path := filepath.Join(r.ProcRoot, strconv.Itoa(int(pid)), "smaps")
	rss, err := ParseSmaps(source.File(path))
	if errors.Is(err, fs.ErrNotExist) {
		return 0, fmt.Errorf("%w: pid %d: %w", ErrVanished, pid, err)
	}
	if err != nil {
		return 0, err
	}
	return rss, nil
}
