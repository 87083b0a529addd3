// Package main provides the Tea Time example application.
// It demonstrates driving a reducer-style model with the tea package.
package main

import (
	"time"

	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/tea"
)

const (
	// cupFetchDelay simulates fetching a cup before brewing can start.
	cupFetchDelay = time.Second
	// steepTime simulates the tea brewing after water is added.
	steepTime = 2 * time.Second
)

// App returns the root widget for the Tea Time example.
func App(menu []TeaKind) core.Widget {
	return TeaTimeApp{Menu: menu}
}

// TeaTimeApp owns the brewing model and shares it with the widget tree.
type TeaTimeApp struct {
	Menu []TeaKind
}

func (a TeaTimeApp) CreateElement() core.Element {
	return core.NewStatefulElement(a, nil)
}

func (a TeaTimeApp) Key() any {
	return nil
}

func (a TeaTimeApp) CreateState() core.State {
	return &teaTimeState{}
}

type teaTimeState struct {
	core.StateBase
	menu     []TeaKind
	brew     *tea.Handle[BrewAction, *BrewModel]
	steeping bool
}

func (s *teaTimeState) InitState() {
	w := s.Element().Widget().(TeaTimeApp)
	s.menu = w.Menu

	s.brew = tea.UseModel[BrewAction](s, &BrewModel{})

	s.OnDispose(s.brew.AddListener(s.phaseChanged))

	// Simulate fetching a cup before the first action can land.
	time.AfterFunc(cupFetchDelay, func() {
		s.brew.Send(CupFetched{})
	})
}

// phaseChanged arms the steep timer each time the model enters PhaseSteeping.
func (s *teaTimeState) phaseChanged() {
	if s.brew.Model().Phase != PhaseSteeping {
		s.steeping = false
		return
	}
	if s.steeping {
		return
	}
	s.steeping = true
	time.AfterFunc(steepTime, func() {
		s.brew.Send(FinishBrewing{})
	})
}

func (s *teaTimeState) Build(ctx core.BuildContext) core.Widget {
	return tea.ModelScope[BrewAction, *BrewModel]{
		Handle: s.brew,
		Child:  BrewScreen{Menu: s.menu},
	}
}
