package memory

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/CristiGvl/memviz/internal/source"
)

const meminfo = `MemTotal:       16229848 kB
MemFree:         1234567 kB
MemAvailable:    8114924 kB
Buffers:          345678 kB
`

func TestParse(t *testing.T) {
	info, err := Parse(source.Text(meminfo))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if info.Total != 16229848 || info.Available != 8114924 {
		t.Fatalf("got total=%d available=%d", info.Total, info.Available)
	}
	if info.Used != 16229848-8114924 {
		t.Errorf("Used = %d", info.Used)
	}
	if info.Usage != 50 {
		t.Errorf("Usage = %v, want 50", info.Usage)
	}
}

func TestParseMissingAvailable(t *testing.T) {
	info, err := Parse(source.Text("MemTotal: 1000 kB\nMemFree: 10 kB\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if info.Available != 0 || info.Used != 1000 || info.Usage != 100 {
		t.Errorf("got %+v", info)
	}
}

func TestParseCaseSensitiveAndMalformed(t *testing.T) {
	info, _ := Parse(source.Text("memtotal: 1000 kB\nMemTotal: lots kB\nMemAvailable:\n"))
	if info.Total != 0 || info.Available != 0 || info.Usage != 0 {
		t.Errorf("got %+v, want zero info", info)
	}
}

func TestNewInfoClampsUsed(t *testing.T) {
	info := NewInfo(100, 150)
	if info.Used != 0 || info.Usage != 0 {
		t.Errorf("got %+v", info)
	}
	if info := NewInfo(0, 0); info.Usage != 0 {
		t.Errorf("zero total Usage = %v", info.Usage)
	}
}

func TestParseUnavailable(t *testing.T) {
	info, err := Parse(source.File(filepath.Join(t.TempDir(), "meminfo")))
	if !errors.Is(err, source.ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
	if info == nil || info.Total != 0 || info.Available != 0 {
		t.Errorf("got %+v, want zeroed info", info)
	}
}
