//go:build linux

package process

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pidof")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPidofFinder(t *testing.T) {
	ctx := context.Background()

	f := &PidofFinder{Path: writeScript(t, `echo "4242 17 301"`)}
	pids, err := f.FindPIDs(ctx, "app")
	if err != nil {
		t.Fatalf("FindPIDs: %v", err)
	}
	if !slices.Equal(pids, []int32{4242, 17, 301}) {
		t.Errorf("pids = %v", pids)
	}

	f = &PidofFinder{Path: writeScript(t, "exit 1")}
	pids, err = f.FindPIDs(ctx, "app")
	if err != nil || len(pids) != 0 {
		t.Errorf("no match: pids=%v err=%v", pids, err)
	}

	f = &PidofFinder{Path: writeScript(t, "exit 3")}
	if _, err := f.FindPIDs(ctx, "app"); err == nil {
		t.Error("expected error for exit status 3")
	}
}

func TestSmapsReader(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "123"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "123", "smaps"), []byte(smaps), 0644); err != nil {
		t.Fatal(err)
	}

	r := NewRSSReader(root)
	rss, err := r.ReadRSS(context.Background(), 123)
	if err != nil {
		t.Fatalf("ReadRSS: %v", err)
	}
	if rss != 400 {
		t.Errorf("rss = %d, want 400", rss)
	}

	rss, err = r.ReadRSS(context.Background(), 456)
	if !errors.Is(err, ErrVanished) {
		t.Errorf("err = %v, want ErrVanished", err)
	}
	if rss != 0 {
		t.Errorf("rss = %d, want 0", rss)
	}
}

func TestScanFinderFindsSelf(t *testing.T) {
	self, err := os.ReadFile("/proc/self/comm")
	if err != nil {
		t.Skipf("procfs not available: %v", err)
	}
	name := string(self[:len(self)-1])

	pids, err := (&ScanFinder{}).FindPIDs(context.Background(), name)
	if err != nil {
		t.Fatalf("FindPIDs: %v", err)
	}
	if !slices.Contains(pids, int32(os.Getpid())) {
		t.Errorf("pids %v for %q do not include own pid %d", pids, name, os.Getpid())
	}
	if !slices.IsSorted(pids) {
		t.Errorf("pids not sorted: %v", pids)
	}
}

func TestNewFinderHonoursProcRoot(t *testing.T) {
	root := t.TempDir()
	if f, ok := NewFinder(root).(*ProcfsFinder); !ok || f.ProcRoot != root {
		t.Errorf("NewFinder(%q) = %T, want *ProcfsFinder", root, NewFinder(root))
	}
	if _, ok := NewFinder(DefaultProcRoot).(*ProcfsFinder); ok {
		t.Error("NewFinder(DefaultProcRoot) walks procfs, want pidof or gopsutil scan")
	}
}
