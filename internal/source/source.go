// internal/source/source.go
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// Config is the minimal runtime config the source needs.
type Config struct {
	Paths []string  // empty means Stdin
	Stdin io.Reader // used for Stdin; defaults to os.Stdin
}

// Source reads entity batches from files, one batch per path.
type Source struct {
	cfg  Config
	open func(path string) (io.ReadCloser, error)
}

// New creates a source with immutable config.
func New(cfg Config) (*Source, error) {
	if len(cfg.Paths) == 0 {
		cfg.Paths = []string{Stdin}
	}
	if cfg.Stdin == nil {
		cfg.Stdin = os.Stdin
	}

	stdinUsers := 0
	for _, p := range cfg.Paths {
		if p == "" {
			return nil, errors.New("source: empty path")
		}
		if p == Stdin {
			stdinUsers++
		}
	}
	if stdinUsers > 1 {
		return nil, errors.New("source: stdin listed more than once")
	}

	s := &Source{cfg: cfg}
	s.open = func(path string) (io.ReadCloser, error) {
		if path == Stdin {
			return io.NopCloser(s.cfg.Stdin), nil
		}
		return os.Open(path)
	}
	return s, nil
}

// ReadOnce reads exactly one input.
// All-or-nothing: a decode failure marks the whole batch failed.
func (s *Source) ReadOnce(path string) Batch {
	b := Batch{
		Source: path,
		At:     time.Now(),
	}

	rc, err := s.open(path)
	if err != nil {
		b.Err = fmt.Errorf("source: open %s: %w", path, err)
		return b
	}
	defer rc.Close()

	ents, err := Decode(rc)
	if err != nil {
		b.Err = fmt.Errorf("%s: %w", path, err)
		return b
	}

	// Commit only if the whole input decoded
	b.Entities = ents
	return b
}

// Run emits one Batch per configured path, in order, then closes out.
// It stops early when ctx is done.
func (s *Source) Run(ctx context.Context, out chan<- Batch) {
	defer close(out)

	for _, p := range s.cfg.Paths {
		if ctx.Err() != nil {
			return
		}

		b := s.ReadOnce(p)

		select {
		case <-ctx.Done():
			return
		case out <- b:
		}
	}
}
