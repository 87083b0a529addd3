package tea

import (
	"fmt"
	"sync"
	"time"
)

const traceEntriesDefault = 64

// TraceEntry is a single recorded action.
type TraceEntry struct {
	Seq       uint64 `json:"seq"`
	Timestamp int64  `json:"ts"`
	Kind      string `json:"kind"`
	Action    string `json:"action"`
}

// Trace stores recent actions in a ring buffer, oldest overwritten first.
// It is a debugging aid: attach one with TraceActions and dump Snapshot
// when something went through the model that should not have.
type Trace struct {
	mu      sync.RWMutex
	entries []TraceEntry
	index   int
	count   int
	seq     uint64
}

// NewTrace creates a trace that retains the last capacity actions.
func NewTrace(capacity int) *Trace {
	if capacity <= 0 {
		capacity = traceEntriesDefault
	}
	return &Trace{
		entries: make([]TraceEntry, capacity),
	}
}

// Capacity returns the number of actions the trace retains.
func (t *Trace) Capacity() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Len returns the number of recorded actions, at most Capacity.
func (t *Trace) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.count
}

// Record appends an action to the trace.
func (t *Trace) Record(action any) {
	t.mu.Lock()
	t.seq++
	t.entries[t.index] = TraceEntry{
		Seq:       t.seq,
		Timestamp: time.Now().UnixMilli(),
		Kind:      fmt.Sprintf("%T", action),
		Action:    fmt.Sprintf("%+v", action),
	}
	t.index = (t.index + 1) % len(t.entries)
	if t.count < len(t.entries) {
		t.count++
	}
	t.mu.Unlock()
}

// Snapshot returns a chronological copy of the recorded actions.
func (t *Trace) Snapshot() []TraceEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.count == 0 {
		return nil
	}

	result := make([]TraceEntry, t.count)
	if t.count < len(t.entries) {
		copy(result, t.entries[:t.count])
	} else {
		copy(result, t.entries[t.index:])
		copy(result[len(t.entries)-t.index:], t.entries[:t.index])
	}
	return result
}

// TraceActions subscribes trace to every action h applies. Returns a
// function that removes the subscription.
func TraceActions[A any, M Model[A]](h *Handle[A, M], trace *Trace) func() {
	return h.AddActionListener(func(action A) {
		trace.Record(action)
	})
}
