// Package counter persists the order ID counter as a single integer in a
// file. The counter is the source of truth for order identity: IDs must stay
// unique and monotonic across process restarts.
package counter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

var ErrUnavailable = errors.New("counter: store unavailable")

// FileCounter issues strictly increasing order IDs backed by a counter file.
// Each Next performs read -> increment -> persist under a mutex, so issuance
// stays serialized even if a future caller runs checkouts concurrently.
type FileCounter struct {
	mu   sync.Mutex
	path string
}

func NewFileCounter(path string) *FileCounter {
	return &FileCounter{path: path}
}

// Next returns the next order ID, persisting the new value before returning.
// A missing or unparsable counter file counts as 0 (cold start); an I/O
// failure reading or writing the store is ErrUnavailable and no ID is issued.
func (c *FileCounter) Next(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	last, err := c.load()
	if err != nil {
		return 0, err
	}

	next := last + 1
	if err := c.store(next); err != nil {
		return 0, err
	}
	return next, nil
}

func (c *FileCounter) load() (int64, error) {
	data, err := os.ReadFile(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: read %q: %w", ErrUnavailable, c.path, err)
	}

	n, parseErr := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if parseErr != nil || n < 0 {
		// Unparsable content is treated as a cold start, not a failure.
		return 0, nil
	}
	return n, nil
}

// store writes the counter to a temp file and renames it into place so a
// crash mid-write leaves either the old value or the new one, never garbage.
func (c *FileCounter) store(n int64) error {
	dir := filepath.Dir(c.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(c.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: create temp in %q: %w", ErrUnavailable, dir, err)
	}
	tmpName := tmp.Name()

	_, werr := tmp.WriteString(strconv.FormatInt(n, 10))
	if werr == nil {
		werr = tmp.Sync()
	}
	if cerr := tmp.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: write %q: %w", ErrUnavailable, tmpName, werr)
	}

	if err := os.Rename(tmpName, c.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: rename to %q: %w", ErrUnavailable, c.path, err)
	}
	return nil
}
