// Package auditlog appends one human-readable line per successful checkout.
// The file is an audit trail, not the source of truth: it is never read back
// by the application and a failed append never unwinds an order.
package auditlog

import (
	"context"
	"fmt"
	"os"
	"sync"
)

// FileLog is the append-only checkout audit file.
type FileLog struct {
	mu   sync.Mutex
	path string
}

func NewFileLog(path string) *FileLog {
	return &FileLog{path: path}
}

// Append durably writes one audit record. Records are never edited or removed.
func (l *FileLog) Append(ctx context.Context, orderID int64, paymentMethod string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("auditlog: open %q: %w", l.path, err)
	}

	_, werr := fmt.Fprintf(f, "Order %d has been successfully checked out and paid using %s.\n", orderID, paymentMethod)
	if werr == nil {
		werr = f.Sync()
	}
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return fmt.Errorf("auditlog: append to %q: %w", l.path, werr)
	}
	return nil
}
