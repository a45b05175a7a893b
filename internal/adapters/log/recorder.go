// Package log holds logger adapters that are only useful inside the module,
// such as the in-memory Recorder used by tests.
package log

import (
	"fmt"
	"strings"
	"sync"

	"github.com/bft-labs/splitview/internal/ports"
)

// Entry is one recorded log call.
type Entry struct {
	Level   string
	Message string
	Fields  []ports.Field
}

// Recorder implements ports.Logger by keeping every entry in memory.
// It is safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Debug(msg string, fields ...ports.Field) { r.add("DEBUG", msg, fields) }
func (r *Recorder) Info(msg string, fields ...ports.Field)  { r.add("INFO", msg, fields) }
func (r *Recorder) Warn(msg string, fields ...ports.Field)  { r.add("WARN", msg, fields) }
func (r *Recorder) Error(msg string, fields ...ports.Field) { r.add("ERROR", msg, fields) }

func (r *Recorder) add(level, msg string, fields []ports.Field) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Level: level, Message: msg, Fields: fields})
}

// Entries returns a copy of the recorded entries.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := make([]Entry, len(r.entries))
	copy(cp, r.entries)
	return cp
}

// Messages returns entries formatted as "[LEVEL] message".
func (r *Recorder) Messages() []string {
	entries := r.Entries()
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = fmt.Sprintf("[%s] %s", e.Level, e.Message)
	}
	return out
}

// Contains reports whether any message contains substr.
func (r *Recorder) Contains(substr string) bool {
	for _, m := range r.Messages() {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}

// Field returns the value of the first field named key in the last entry
// whose message equals msg.
func (r *Recorder) Field(msg, key string) (interface{}, bool) {
	entries := r.Entries()
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Message != msg {
			continue
		}
		for _, f := range entries[i].Fields {
			if f.Key == key {
				return f.Value, true
			}
		}
		return nil, false
	}
	return nil, false
}

var _ ports.Logger = (*Recorder)(nil)
