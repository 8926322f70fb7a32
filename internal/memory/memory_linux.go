//go:build linux

package memory

import (
	"context"
	"path/filepath"

	"github.com/CristiGvl/memviz/internal/source"
)

// LinuxReader reads system memory from <procRoot>/meminfo
type LinuxReader struct {
	src source.Source
}

func newPlatformReader(procRoot string) Reader {
	return &LinuxReader{src: source.File(filepath.Join(procRoot, "meminfo"))}
}

// GetInfo returns memory information. When meminfo cannot be read the returned Info
// is zeroed and the error describes why.
func (r *LinuxReader) GetInfo(ctx context.Context) (*Info, error) {
	return Parse(r.src)
}
