// Package notify delivers user-facing messages. It is the terminal
// counterpart of a toast: components report outcomes here and the CLI
// decides how they are rendered.
package notify

import (
	"fmt"
	"io"
	"sync"
)

// Notifier receives user-facing outcome messages.
//
// Implementations must tolerate being called from timer goroutines;
// the session expiry watchdog notifies from outside the main flow.
type Notifier interface {
	// Success reports a completed operation.
	Success(message string)

	// Error reports a failed operation or a forced logout.
	Error(message string)
}

// Writer is a Notifier that prints messages to an io.Writer, one per
// line, prefixed by tone.
type Writer struct {
	mu  sync.Mutex
	out io.Writer
}

// NewWriter returns a Notifier printing to out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Success implements Notifier.
func (w *Writer) Success(message string) {
	w.print("✓", message)
}

// Error implements Notifier.
func (w *Writer) Error(message string) {
	w.print("✗", message)
}

func (w *Writer) print(prefix, message string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintf(w.out, "%s %s\n", prefix, message)
}

// Discard is a Notifier that drops all messages.
var Discard Notifier = discard{}

type discard struct{}

func (discard) Success(string) {}
func (discard) Error(string)   {}
