//go:build linux

package memory

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLinuxReaderProcRoot(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "meminfo"), []byte(meminfo), 0644); err != nil {
		t.Fatal(err)
	}
	info, err := NewReader(root).GetInfo(context.Background())
	if err != nil {
		t.Fatalf("GetInfo: %v", err)
	}
	if info.Total != 16229848 {
		t.Errorf("Total = %d", info.Total)
	}
}
