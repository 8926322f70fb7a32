package main

import (
	"errors"
	"flag"
	"io"
	"testing"

	"github.com/CristiGvl/memviz/internal/report"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want report.Config
	}{
		{"defaults", nil, report.Config{Length: report.DefaultLength}},
		{"short flags", []string{"-H", "-l", "30"}, report.Config{HumanReadable: true, Length: 30}},
		{"long flags", []string{"--human-readable", "--length=5", "firefox"}, report.Config{Program: "firefox", HumanReadable: true, Length: 5}},
		{"program first", []string{"bash", "-H"}, report.Config{Program: "bash", HumanReadable: true, Length: report.DefaultLength}},
		{"program between", []string{"-l", "10", "sshd", "-H"}, report.Config{Program: "sshd", HumanReadable: true, Length: 10}},
		{"zero length", []string{"-l", "0"}, report.Config{Length: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := parseArgs(tt.args, io.Discard)
			if err != nil {
				t.Fatalf("parseArgs: %v", err)
			}
			if opts.cfg != tt.want {
				t.Errorf("cfg = %+v, want %+v", opts.cfg, tt.want)
			}
			if opts.procRoot != "/proc" || opts.serve {
				t.Errorf("opts = %+v", opts)
			}
		})
	}
}

func TestParseArgsServe(t *testing.T) {
	opts, err := parseArgs([]string{"--serve", "--port", "9000", "--proc", "/host/proc"}, io.Discard)
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if !opts.serve || opts.port != "9000" || opts.bind != "127.0.0.1" || opts.procRoot != "/host/proc" {
		t.Errorf("opts = %+v", opts)
	}
}

func TestParseArgsErrors(t *testing.T) {
	for _, args := range [][]string{
		{"a", "b"},
		{"-l", "-3"},
		{"-l", "wide"},
		{"--unknown"},
	} {
		if _, err := parseArgs(args, io.Discard); err == nil {
			t.Errorf("parseArgs(%q) succeeded, want error", args)
		}
	}
	if _, err := parseArgs([]string{"-help"}, io.Discard); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("-help err = %v, want flag.ErrHelp", err)
	}
}
