package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/CristiGvl/memviz/api"
	"github.com/CristiGvl/memviz/internal/platform"
	"github.com/CristiGvl/memviz/internal/process"
	"github.com/CristiGvl/memviz/internal/report"
)

const (
	flagHumanReadableDescription = "print sizes in human readable format"
	flagLengthDescription        = "length of the bar graph"
)

type options struct {
	cfg      report.Config
	procRoot string
	serve    bool
	bind     string
	port     string
}

func printUsage(fs *flag.FlagSet) func() {
	return func() {
		fmt.Fprintf(fs.Output(), `Usage: %s [OPTION]... [PROGRAM]
Show memory usage of the system, or of every process of PROGRAM, as bar graphs.

Options:
  -H, --human-readable  %s
  -l, --length N        %s (default %d)
      --proc DIR        procfs root (default /proc)
      --serve           serve reports over HTTP instead of printing one
      --bind ADDR       address to bind the server to (default 127.0.0.1)
      --port PORT       port to run the server on (default 8080)
`, fs.Name(), flagHumanReadableDescription, flagLengthDescription, report.DefaultLength)
	}
}

// parseArgs parses flags and the optional program name, which may appear before,
// between or after the flags
func parseArgs(args []string, output io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("memviz", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = printUsage(fs)

	fs.BoolVar(&opts.cfg.HumanReadable, "H", false, flagHumanReadableDescription)
	fs.BoolVar(&opts.cfg.HumanReadable, "human-readable", false, flagHumanReadableDescription)
	fs.IntVar(&opts.cfg.Length, "l", report.DefaultLength, flagLengthDescription)
	fs.IntVar(&opts.cfg.Length, "length", report.DefaultLength, flagLengthDescription)
	fs.StringVar(&opts.procRoot, "proc", process.DefaultProcRoot, "procfs root")
	fs.BoolVar(&opts.serve, "serve", false, "serve reports over HTTP")
	fs.StringVar(&opts.bind, "bind", "127.0.0.1", "IP address to bind the server to")
	fs.StringVar(&opts.port, "port", "8080", "Port to run the server on")

	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		args = fs.Args()
		if len(args) == 0 {
			break
		}
		positional = append(positional, args[0])
		args = args[1:]
	}

	switch {
	case len(positional) > 1:
		err := fmt.Errorf("too many arguments: %q", positional)
		fmt.Fprintln(output, err)
		fs.Usage()
		return nil, err
	case opts.cfg.Length < 0:
		err := fmt.Errorf("invalid length %d", opts.cfg.Length)
		fmt.Fprintln(output, err)
		fs.Usage()
		return nil, err
	}
	if len(positional) == 1 {
		opts.cfg.Program = positional[0]
	}
	return opts, nil
}

func main() {
	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}

	// Validate platform support
	if err := platform.ValidateSupport(); err != nil {
		log.Fatalf("Platform validation failed: %v", err)
	}

	builder := report.NewBuilder(opts.procRoot, log.New(os.Stderr, "memviz: ", 0))

	if opts.serve {
		serve(builder, opts)
		return
	}

	if err := builder.Run(context.Background(), os.Stdout, opts.cfg); err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}
}

func serve(builder *report.Builder, opts *options) {
	server, err := api.NewServer(builder, opts.cfg.Length)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	// Handle graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		if err := server.Shutdown(); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
		os.Exit(0)
	}()

	log.Printf("Starting memviz server on %s:%s", opts.bind, opts.port)
	log.Fatal(server.Start(opts.bind + ":" + opts.port))
}
