package notify

import "sync"

// Message is a recorded notification.
type Message struct {
	Tone string // "success" or "error"
	Text string
}

// Recorder is a Notifier that captures messages for assertions in
// tests.
type Recorder struct {
	mu       sync.Mutex
	messages []Message
}

// Success implements Notifier.
func (r *Recorder) Success(message string) {
	r.record("success", message)
}

// Error implements Notifier.
func (r *Recorder) Error(message string) {
	r.record("error", message)
}

func (r *Recorder) record(tone, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, Message{Tone: tone, Text: text})
}

// Messages returns a copy of everything recorded so far.
func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Message, len(r.messages))
	copy(out, r.messages)
	return out
}

// Reset clears recorded messages.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = nil
}
