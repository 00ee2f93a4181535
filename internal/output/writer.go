// Package output writes rate samples as newline-delimited JSON (NDJSON).
//
// Each sample is a single JSON object terminated by a newline character and
// flushed immediately, so line-oriented consumers see it without delay.
package output

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/shini4i/netrate/internal/stats"
)

// Writer emits samples to an underlying stream.
// It is safe for concurrent use.
type Writer struct {
	mu  sync.Mutex
	out io.Writer
	buf *bufio.Writer
}

// NewWriter creates a Writer on top of w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{out: w, buf: bufio.NewWriter(w)}
}

// Emit writes one sample line and flushes it. A failed line is dropped; the
// next call writes to the stream again.
func (w *Writer) Emit(s stats.Sample) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal sample: %w", err)
	}
	data = append(data, '\n')

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := w.buf.Write(data); err != nil {
		w.buf.Reset(w.out)
		return fmt.Errorf("failed to write sample: %w", err)
	}
	if err := w.buf.Flush(); err != nil {
		w.buf.Reset(w.out)
		return fmt.Errorf("failed to flush sample: %w", err)
	}
	return nil
}
