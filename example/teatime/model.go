package main

import (
	"errors"
	"fmt"
)

// BrewPhase tracks where the cup is on its way to tea.
type BrewPhase int

const (
	// PhaseFetchingCup is the initial phase, before a cup is available.
	PhaseFetchingCup BrewPhase = iota
	// PhaseEmptyCup means the cup has arrived and can take a tea bag.
	PhaseEmptyCup
	// PhaseTeaBag means a tea bag is in the cup, waiting for water.
	PhaseTeaBag
	// PhaseSteeping means water has been poured and the tea is brewing.
	PhaseSteeping
	// PhaseReady means the tea is done.
	PhaseReady
	// PhaseFailed means a brewing rule was violated; see BrewModel.Err.
	PhaseFailed
)

func (p BrewPhase) String() string {
	switch p {
	case PhaseFetchingCup:
		return "fetching-cup"
	case PhaseEmptyCup:
		return "empty-cup"
	case PhaseTeaBag:
		return "tea-bag"
	case PhaseSteeping:
		return "steeping"
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	default:
		return fmt.Sprintf("BrewPhase(%d)", int(p))
	}
}

// TeaKind is one entry of the tea menu: a name and the water temperature
// range it tolerates.
type TeaKind struct {
	Name    string `yaml:"name"`
	MinTemp int    `yaml:"min_temp"`
	MaxTemp int    `yaml:"max_temp"`
}

// Brewing rule violations. The model stores them, the screen renders them.
var (
	ErrMissingTeaBag = errors.New("no tea bag added")
	ErrWaterTooHot   = errors.New("water is too hot")
	ErrWaterTooCold  = errors.New("water is too cold")
	ErrMissingWater  = errors.New("no water added")
	ErrCupNotEmpty   = errors.New("the cup is not empty")
)

// BrewAction is a requested transition of the brewing state.
type BrewAction interface {
	brewAction()
}

// CupFetched restarts the flow with a fresh, empty cup.
type CupFetched struct{}

// AddTeaBag drops a tea bag into the empty cup.
type AddTeaBag struct {
	Kind TeaKind
}

// AddWater pours water at Temp degrees Celsius over the tea bag.
type AddWater struct {
	Temp int
}

// FinishBrewing marks the steeped tea as ready.
type FinishBrewing struct{}

func (CupFetched) brewAction()    {}
func (AddTeaBag) brewAction()     {}
func (AddWater) brewAction()      {}
func (FinishBrewing) brewAction() {}

// BrewModel is the application state: one cup on its way to tea. The zero
// value is PhaseFetchingCup.
type BrewModel struct {
	Phase     BrewPhase
	Kind      TeaKind
	WaterTemp int
	Err       error
}

// Update applies one brewing action. Invalid moves reset the model into
// PhaseFailed with the violated rule in Err.
func (m *BrewModel) Update(action BrewAction) {
	switch a := action.(type) {
	case CupFetched:
		*m = BrewModel{Phase: PhaseEmptyCup}
	case AddTeaBag:
		if m.Phase != PhaseEmptyCup {
			m.fail(ErrCupNotEmpty)
			return
		}
		m.Phase = PhaseTeaBag
		m.Kind = a.Kind
	case AddWater:
		if m.Phase != PhaseTeaBag {
			m.fail(ErrMissingTeaBag)
			return
		}
		switch {
		case a.Temp < m.Kind.MinTemp:
			m.fail(ErrWaterTooCold)
		case a.Temp > m.Kind.MaxTemp:
			m.fail(ErrWaterTooHot)
		default:
			m.Phase = PhaseSteeping
			m.WaterTemp = a.Temp
		}
	case FinishBrewing:
		if m.Phase != PhaseSteeping {
			m.fail(ErrMissingWater)
			return
		}
		m.Phase = PhaseReady
	}
}

func (m *BrewModel) fail(err error) {
	*m = BrewModel{Phase: PhaseFailed, Err: err}
}

// StatusLine renders the model as the headline message the screen shows.
func (m *BrewModel) StatusLine() string {
	switch m.Phase {
	case PhaseFetchingCup:
		return "Fetching a cup..."
	case PhaseEmptyCup:
		return "Empty cup. Add a tea bag."
	case PhaseTeaBag:
		return fmt.Sprintf("Tea bag added: %s", m.Kind.Name)
	case PhaseSteeping:
		return fmt.Sprintf("Water added at %d°C. Waiting for tea to brew...", m.WaterTemp)
	case PhaseReady:
		return "Tea is ready!"
	case PhaseFailed:
		return fmt.Sprintf("Error: %v", m.Err)
	default:
		return ""
	}
}
