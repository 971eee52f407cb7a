package fixtures

import (
	"context"
	"sync"
)

// RecordingRegistry captures command handlers passed to RegisterCommand.
type RecordingRegistry struct {
	Handlers []any
	Err      error
}

// NewRecordingRegistry constructs an empty registry recorder.
func NewRecordingRegistry() *RecordingRegistry {
	return &RecordingRegistry{
		Handlers: make([]any, 0),
	}
}

// RegisterCommand records handler, or returns Err when set.
func (r *RecordingRegistry) RegisterCommand(handler any) error {
	if r.Err != nil {
		return r.Err
	}
	r.Handlers = append(r.Handlers, handler)
	return nil
}

// Write is a single delivery captured by MemorySink.
type Write struct {
	Target  string
	Content string
}

// MemorySink records documents instead of writing them.
type MemorySink struct {
	mu     sync.Mutex
	Writes []Write
	Err    error
}

// NewMemorySink constructs an empty sink recorder.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// Write records the delivery, or returns Err when set.
func (s *MemorySink) Write(_ context.Context, target string, content []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.Writes = append(s.Writes, Write{Target: target, Content: string(content)})
	return nil
}

// Targets lists the recorded targets in write order.
func (s *MemorySink) Targets() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.Writes))
	for _, w := range s.Writes {
		out = append(out, w.Target)
	}
	return out
}
