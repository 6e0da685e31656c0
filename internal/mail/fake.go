package mail

import (
	"context"
	"sync"
)

// Recorder is an in-memory Sender that keeps every message. Err, when set,
// is returned from Send after the message is recorded.
type Recorder struct {
	mu       sync.Mutex
	messages []Message
	Err      error
}

func (r *Recorder) Send(_ context.Context, msg Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
	return r.Err
}

func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Message(nil), r.messages...)
}

// Enqueue records msg immediately so tests can assert on it without
// waiting for a worker.
func (r *Recorder) Enqueue(msg Message) bool {
	_ = r.Send(context.Background(), msg)
	return true
}
