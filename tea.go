package tea

// Model is implemented by application state types. A model carries the
// data a widget subtree renders from; Update is the only place that data
// changes. M is typically a pointer to a struct so Update can mutate it
// in place.
//
// Update must not block and must not touch the widget tree. Everything it
// needs should arrive in the action value.
type Model[A any] interface {
	// Update applies an action to the model.
	Update(action A)
}

// Host is the slice of widget state a handle binds to for rebuilds and
// disposal. Any state embedding core.StateBase satisfies it, so widget
// states pass themselves directly.
type Host interface {
	// SetState executes fn and schedules a rebuild of the owning element.
	SetState(fn func())
	// OnDispose registers cleanup to run when the state is disposed.
	// Returns a function that removes the registration.
	OnDispose(cleanup func()) func()
}

// UseModel creates a handle for the given model and ties it to the widget
// state's lifecycle: each applied batch of actions triggers a rebuild, and
// the handle is disposed with the state. Call it once from InitState, not
// from Build.
//
// Example:
//
//	type brewState struct {
//	    core.StateBase
//	    brew *tea.Handle[BrewAction, *BrewModel]
//	}
//
//	func (s *brewState) InitState() {
//	    s.brew = tea.UseModel[BrewAction](s, &BrewModel{})
//	}
//
// The action type argument is spelled out; the model type is inferred from
// the initial value.
func UseModel[A any, M Model[A]](s Host, initial M) *Handle[A, M] {
	h := newHandle[A](initial)
	unsub := h.AddListener(func() {
		s.SetState(nil)
	})
	s.OnDispose(func() {
		unsub()
		h.Dispose()
	})
	return h
}
