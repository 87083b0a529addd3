package tea

import (
	"sync"

	"github.com/go-drift/drift/pkg/errors"
	"github.com/go-drift/drift/pkg/platform"
)

// Handle connects a model to the widget tree. Widgets read the model with
// Model, request transitions with Send, and subscribe to changes with
// AddListener. Handles are created by UseModel.
//
// Send is safe from any goroutine. Everything else is UI-thread only, the
// same discipline core.Managed documents: read in Build, subscribe in
// InitState.
type Handle[A any, M Model[A]] struct {
	model M

	// mu guards the fields below; the model and the listener maps are
	// only touched on the draining side.
	mu        sync.Mutex
	queue     []A
	scheduled bool
	disposed  bool

	listeners       map[int]func()
	actionListeners map[int]func(A)
	nextListenerID  int
}

func newHandle[A any, M Model[A]](initial M) *Handle[A, M] {
	return &Handle[A, M]{
		model:           initial,
		listeners:       make(map[int]func()),
		actionListeners: make(map[int]func(A)),
	}
}

// Model returns the current model.
//
// Model is NOT thread-safe. Read it on the UI thread, typically inside
// Build. Goroutines that need to influence the model should Send actions
// instead of holding on to the returned value.
func (h *Handle[A, M]) Model() M {
	return h.model
}

// Send queues an action and schedules it to be applied on the UI thread.
// A burst of sends coalesces into one apply pass and one rebuild, with
// actions applied in send order.
//
// When no platform dispatcher is registered (plain Go programs, headless
// tests) the queue drains synchronously on the calling goroutine, so
// actions are never dropped. After Dispose, Send is a no-op.
func (h *Handle[A, M]) Send(action A) {
	h.mu.Lock()
	if h.disposed {
		h.mu.Unlock()
		return
	}
	h.queue = append(h.queue, action)
	shouldSchedule := !h.scheduled
	if shouldSchedule {
		h.scheduled = true
	}
	h.mu.Unlock()

	if !shouldSchedule {
		return
	}
	if !platform.Dispatch(h.drain) {
		h.drain()
	}
}

// drain applies the queued actions, then notifies rebuild listeners once
// for the whole batch.
func (h *Handle[A, M]) drain() {
	h.mu.Lock()
	actions := h.queue
	h.queue = nil
	h.scheduled = false
	disposed := h.disposed
	h.mu.Unlock()

	if disposed || len(actions) == 0 {
		return
	}
	for _, action := range actions {
		h.apply(action)
	}
	for _, listener := range h.listeners {
		listener()
	}
}

// apply runs one reducer step. A panicking Update is reported through the
// global error handler and that action is dropped; the rest of the batch
// still applies.
func (h *Handle[A, M]) apply(action A) {
	defer errors.Recover("tea: update")
	h.model.Update(action)
	for _, listener := range h.actionListeners {
		listener(action)
	}
}

// AddListener adds a callback that fires after each applied batch of
// actions. Returns an unsubscribe function.
//
// Handle satisfies core.Listenable, so widget states beyond the one that
// owns the handle can subscribe with core.UseListenable.
func (h *Handle[A, M]) AddListener(fn func()) func() {
	id := h.nextListenerID
	h.nextListenerID++
	h.listeners[id] = fn
	return func() {
		delete(h.listeners, id)
	}
}

// AddActionListener adds a callback that fires for every applied action,
// after the model has absorbed it. Returns an unsubscribe function.
func (h *Handle[A, M]) AddActionListener(fn func(A)) func() {
	id := h.nextListenerID
	h.nextListenerID++
	h.actionListeners[id] = fn
	return func() {
		delete(h.actionListeners, id)
	}
}

// Dispose stops the handle: pending actions are discarded and further
// sends become no-ops. Idempotent. UseModel arranges for this to happen
// automatically when the owning state disposes.
func (h *Handle[A, M]) Dispose() {
	h.mu.Lock()
	h.disposed = true
	h.queue = nil
	h.mu.Unlock()
}

// IsDisposed reports whether Dispose has been called.
func (h *Handle[A, M]) IsDisposed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.disposed
}
