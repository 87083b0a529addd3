package main

import (
	"errors"
	"testing"
)

var greenTea = TeaKind{Name: "Green", MinTemp: 70, MaxTemp: 79}

// brewAt applies a sequence of actions to a fresh model.
func brewAt(actions ...BrewAction) *BrewModel {
	m := &BrewModel{}
	for _, action := range actions {
		m.Update(action)
	}
	return m
}

func TestBrewModel_ZeroValue(t *testing.T) {
	m := &BrewModel{}

	if m.Phase != PhaseFetchingCup {
		t.Errorf("Expected zero model in PhaseFetchingCup, got %v", m.Phase)
	}
	if got := m.StatusLine(); got != "Fetching a cup..." {
		t.Errorf("Expected fetching status, got %q", got)
	}
}

func TestBrewModel_HappyPath(t *testing.T) {
	m := &BrewModel{}

	m.Update(CupFetched{})
	if m.Phase != PhaseEmptyCup {
		t.Fatalf("Expected PhaseEmptyCup after CupFetched, got %v", m.Phase)
	}

	m.Update(AddTeaBag{Kind: greenTea})
	if m.Phase != PhaseTeaBag {
		t.Fatalf("Expected PhaseTeaBag after AddTeaBag, got %v", m.Phase)
	}
	if m.Kind.Name != "Green" {
		t.Errorf("Expected Green tea bag, got %q", m.Kind.Name)
	}

	m.Update(AddWater{Temp: 75})
	if m.Phase != PhaseSteeping {
		t.Fatalf("Expected PhaseSteeping after AddWater, got %v", m.Phase)
	}
	if m.WaterTemp != 75 {
		t.Errorf("Expected water at 75, got %d", m.WaterTemp)
	}

	m.Update(FinishBrewing{})
	if m.Phase != PhaseReady {
		t.Fatalf("Expected PhaseReady after FinishBrewing, got %v", m.Phase)
	}
	if m.Err != nil {
		t.Errorf("Expected no error on the happy path, got %v", m.Err)
	}
}

func TestBrewModel_WaterTemperature(t *testing.T) {
	tests := []struct {
		name    string
		kind    TeaKind
		temp    int
		phase   BrewPhase
		wantErr error
	}{
		{"green low bound", greenTea, 70, PhaseSteeping, nil},
		{"green high bound", greenTea, 79, PhaseSteeping, nil},
		{"green too cold", greenTea, 69, PhaseFailed, ErrWaterTooCold},
		{"green too hot", greenTea, 80, PhaseFailed, ErrWaterTooHot},
		{"black boiling only", TeaKind{Name: "Black", MinTemp: 100, MaxTemp: 100}, 100, PhaseSteeping, nil},
		{"black below boiling", TeaKind{Name: "Black", MinTemp: 100, MaxTemp: 100}, 99, PhaseFailed, ErrWaterTooCold},
		{"oolong in range", TeaKind{Name: "Oolong", MinTemp: 85, MaxTemp: 93}, 90, PhaseSteeping, nil},
		{"oolong too hot", TeaKind{Name: "Oolong", MinTemp: 85, MaxTemp: 93}, 94, PhaseFailed, ErrWaterTooHot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := brewAt(CupFetched{}, AddTeaBag{Kind: tt.kind}, AddWater{Temp: tt.temp})

			if m.Phase != tt.phase {
				t.Errorf("Expected %v, got %v", tt.phase, m.Phase)
			}
			if !errors.Is(m.Err, tt.wantErr) {
				t.Errorf("Expected error %v, got %v", tt.wantErr, m.Err)
			}
		})
	}
}

func TestBrewModel_InvalidMoves(t *testing.T) {
	tests := []struct {
		name    string
		setup   []BrewAction
		action  BrewAction
		wantErr error
	}{
		{"tea bag before cup", nil, AddTeaBag{Kind: greenTea}, ErrCupNotEmpty},
		{"second tea bag", []BrewAction{CupFetched{}, AddTeaBag{Kind: greenTea}}, AddTeaBag{Kind: greenTea}, ErrCupNotEmpty},
		{"water before tea bag", []BrewAction{CupFetched{}}, AddWater{Temp: 75}, ErrMissingTeaBag},
		{"water while steeping", []BrewAction{CupFetched{}, AddTeaBag{Kind: greenTea}, AddWater{Temp: 75}}, AddWater{Temp: 75}, ErrMissingTeaBag},
		{"finish without water", []BrewAction{CupFetched{}, AddTeaBag{Kind: greenTea}}, FinishBrewing{}, ErrMissingWater},
		{"finish with empty cup", []BrewAction{CupFetched{}}, FinishBrewing{}, ErrMissingWater},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := brewAt(tt.setup...)
			m.Update(tt.action)

			if m.Phase != PhaseFailed {
				t.Errorf("Expected PhaseFailed, got %v", m.Phase)
			}
			if !errors.Is(m.Err, tt.wantErr) {
				t.Errorf("Expected error %v, got %v", tt.wantErr, m.Err)
			}
		})
	}
}

func TestBrewModel_FailureClearsState(t *testing.T) {
	m := brewAt(CupFetched{}, AddTeaBag{Kind: greenTea}, AddWater{Temp: 75})

	m.Update(AddTeaBag{Kind: greenTea})

	if m.Phase != PhaseFailed {
		t.Fatalf("Expected PhaseFailed, got %v", m.Phase)
	}
	if m.Kind != (TeaKind{}) {
		t.Errorf("Expected tea kind to be cleared, got %+v", m.Kind)
	}
	if m.WaterTemp != 0 {
		t.Errorf("Expected water temperature to be cleared, got %d", m.WaterTemp)
	}
}

func TestBrewModel_RetryAfterFailure(t *testing.T) {
	m := brewAt(CupFetched{}, AddWater{Temp: 75})
	if m.Phase != PhaseFailed {
		t.Fatalf("Expected PhaseFailed, got %v", m.Phase)
	}

	m.Update(CupFetched{})

	if m.Phase != PhaseEmptyCup {
		t.Errorf("Expected CupFetched to restart the flow, got %v", m.Phase)
	}
	if m.Err != nil {
		t.Errorf("Expected error to be cleared on retry, got %v", m.Err)
	}
}

func TestBrewModel_StatusLines(t *testing.T) {
	tests := []struct {
		name  string
		model *BrewModel
		want  string
	}{
		{"fetching", &BrewModel{}, "Fetching a cup..."},
		{"empty cup", brewAt(CupFetched{}), "Empty cup. Add a tea bag."},
		{"tea bag", brewAt(CupFetched{}, AddTeaBag{Kind: greenTea}), "Tea bag added: Green"},
		{"steeping", brewAt(CupFetched{}, AddTeaBag{Kind: greenTea}, AddWater{Temp: 75}), "Water added at 75°C. Waiting for tea to brew..."},
		{"ready", brewAt(CupFetched{}, AddTeaBag{Kind: greenTea}, AddWater{Temp: 75}, FinishBrewing{}), "Tea is ready!"},
		{"failed", brewAt(AddWater{Temp: 75}), "Error: no tea bag added"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.model.StatusLine(); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}
