package tea

import (
	"reflect"

	"github.com/go-drift/drift/pkg/core"
)

// ModelScope exposes a handle to a widget subtree, so descendants can send
// and read without the handle being threaded through every constructor.
//
//	func (s *appState) Build(ctx core.BuildContext) core.Widget {
//	    return tea.ModelScope[BrewAction, *BrewModel]{
//	        Handle: s.brew,
//	        Child:  brewScreen{},
//	    }
//	}
//
// Descendants resolve the handle with HandleOf using the same type
// arguments. The instantiation is part of the lookup key: a
// ModelScope[X, *Y] is invisible to HandleOf[P, *Q].
type ModelScope[A any, M Model[A]] struct {
	core.InheritedBase
	Handle *Handle[A, M]
	Child  core.Widget
}

// ChildWidget returns the wrapped subtree.
func (w ModelScope[A, M]) ChildWidget() core.Widget { return w.Child }

// UpdateShouldNotify reports true when the scope carries a different
// handle than before. Model changes inside the same handle reach
// dependents through the owning state's rebuild, not through inherited
// notification.
func (w ModelScope[A, M]) UpdateShouldNotify(old core.InheritedWidget) bool {
	prev, ok := old.(ModelScope[A, M])
	return !ok || prev.Handle != w.Handle
}

// HandleOf returns the handle from the nearest enclosing ModelScope[A, M],
// registering ctx as a dependent of that scope. ok is false when no such
// scope is in the ancestor chain.
func HandleOf[A any, M Model[A]](ctx core.BuildContext) (h *Handle[A, M], ok bool) {
	inherited := ctx.DependOnInherited(reflect.TypeFor[ModelScope[A, M]](), nil)
	if inherited == nil {
		return nil, false
	}
	scope, ok := inherited.(ModelScope[A, M])
	if !ok || scope.Handle == nil {
		return nil, false
	}
	return scope.Handle, true
}
