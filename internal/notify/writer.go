package notify

import (
	"context"
	"fmt"
	"io"
	"sync"

	"restaurant-system/internal/domain"
)

// Writer prints the message of each event as one line.
type Writer struct {
	mu  sync.Mutex
	out io.Writer
}

func NewWriter(w io.Writer) *Writer { return &Writer{out: w} }

func (w *Writer) Notify(_ context.Context, ev domain.Event) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, err := fmt.Fprintln(w.out, ev.Message)
	return err
}
