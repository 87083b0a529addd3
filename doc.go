// Package tea implements The Elm Architecture for Drift applications.
//
// Application state lives in a model type with a single Update method.
// Widgets never mutate the model directly: they send action values through
// a Handle, the handle applies them to the model on the UI thread, and the
// owning widget rebuilds.
//
// # Quick Start
//
// Define a model and its actions:
//
//	type Increment struct{ By int }
//
//	type Counter struct {
//	    Count int
//	}
//
//	func (c *Counter) Update(action Increment) {
//	    c.Count += action.By
//	}
//
// Bind it to a stateful widget with UseModel and read it in Build:
//
//	type counterState struct {
//	    core.StateBase
//	    counter *tea.Handle[Increment, *Counter]
//	}
//
//	func (s *counterState) InitState() {
//	    s.counter = tea.UseModel[Increment](s, &Counter{})
//	}
//
//	func (s *counterState) Build(ctx core.BuildContext) core.Widget {
//	    return widgets.ButtonOf(
//	        fmt.Sprintf("Count: %d", s.counter.Model().Count),
//	        func() { s.counter.Send(Increment{By: 1}) },
//	    )
//	}
//
// Send is safe from any goroutine, so background work can feed results
// straight into the model:
//
//	go func() {
//	    result := fetchSomething()
//	    s.counter.Send(Increment{By: result})
//	}()
//
// # Sharing a Handle
//
// Wrap a subtree in a ModelScope to make a handle available without
// threading it through constructor arguments:
//
//	tea.ModelScope[Increment, *Counter]{Handle: s.counter, Child: body{}}
//
// Descendants resolve it with the same type arguments:
//
//	counter, ok := tea.HandleOf[Increment, *Counter](ctx)
//
// # Observing Actions
//
// AddActionListener taps the applied action stream, and Trace keeps a
// bounded history of recent actions for debugging:
//
//	trace := tea.NewTrace(64)
//	remove := tea.TraceActions(s.counter, trace)
package tea
