// Package source abstracts the line oriented text files the kernel exposes under
// /proc so that parsers can run against real paths or in-memory fixtures.
package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrUnavailable is wrapped by every error caused by a source that could not be read
var ErrUnavailable = errors.New("metrics source unavailable")

// Source produces a stream of text lines
type Source interface {
	Open() (io.ReadCloser, error)
	String() string
}

type fileSource struct {
	path string
}

// File returns a Source backed by the file at path
func File(path string) Source {
	return fileSource{path: path}
}

func (f fileSource) Open() (io.ReadCloser, error) {
	return os.Open(f.path)
}

func (f fileSource) String() string {
	return f.path
}

type textSource struct {
	text string
}

// Text returns a Source serving s
func Text(s string) Source {
	return textSource{text: s}
}

func (t textSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(t.text)), nil
}

func (t textSource) String() string {
	return "text"
}

// Scan calls fn with the whitespace separated fields of every non-empty line of
// src. The source is closed before Scan returns.
func Scan(src Source, fn func(fields []string)) error {
	rc, err := src.Open()
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrUnavailable, src, err)
	}
	defer rc.Close()

	scanner := bufio.NewScanner(rc)
	// smaps lines for long mapping paths can exceed the default token size
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		fn(fields)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrUnavailable, src, err)
	}
	return nil
}
