package main

import (
	"fmt"

	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"
	"github.com/go-drift/tea"
)

// waterTemps are the temperatures offered by the water buttons.
var waterTemps = []int{100, 90, 80, 70}

// BrewScreen renders the brewing status and the controls for the current phase.
type BrewScreen struct {
	Menu []TeaKind
}

func (s BrewScreen) CreateElement() core.Element {
	return core.NewStatelessElement(s, nil)
}

func (s BrewScreen) Key() any {
	return nil
}

func (s BrewScreen) Build(ctx core.BuildContext) core.Widget {
	_, colors, textTheme := theme.UseTheme(ctx)

	brew, ok := tea.HandleOf[BrewAction, *BrewModel](ctx)
	if !ok {
		return widgets.Text{Content: "No brewing model in scope", Style: graphics.TextStyle{
			Color:    colors.Error,
			FontSize: 14,
		}}
	}
	model := brew.Model()

	items := []core.Widget{
		widgets.Text{Content: "Tea Time \U0001FAD6", Style: textTheme.HeadlineMedium}, // Teapot
		widgets.VSpace(16),
		s.statusLine(model, colors),
		widgets.VSpace(24),
	}
	items = append(items, s.controls(brew, model, colors)...)

	return widgets.Center{
		Child: widgets.ColumnOf(
			widgets.MainAxisAlignmentCenter,
			widgets.CrossAxisAlignmentCenter,
			widgets.MainAxisSizeMin,
			items...,
		),
	}
}

// statusLine renders the headline message, with a spinner while the cup is
// still on its way.
func (s BrewScreen) statusLine(model *BrewModel, colors theme.ColorScheme) core.Widget {
	statusColor := colors.OnSurface
	if model.Phase == PhaseFailed {
		statusColor = colors.Error
	}
	status := widgets.Text{Content: model.StatusLine(), Style: graphics.TextStyle{
		Color:    statusColor,
		FontSize: 16,
	}}
	if model.Phase != PhaseFetchingCup {
		return status
	}
	return widgets.RowOf(
		widgets.MainAxisAlignmentCenter,
		widgets.CrossAxisAlignmentCenter,
		widgets.MainAxisSizeMin,
		widgets.ActivityIndicator{
			Animating: true,
			Size:      widgets.ActivityIndicatorSizeSmall,
			Color:     colors.Primary,
		},
		widgets.HSpace(12),
		status,
	)
}

// controls returns the buttons valid for the current phase. Steeping and
// fetching offer none.
func (s BrewScreen) controls(brew *tea.Handle[BrewAction, *BrewModel], model *BrewModel, colors theme.ColorScheme) []core.Widget {
	var items []core.Widget
	switch model.Phase {
	case PhaseEmptyCup:
		for _, kind := range s.Menu {
			items = append(items,
				widgets.ButtonOf(fmt.Sprintf("Add %s Tea Bag", kind.Name), func() {
					brew.Send(AddTeaBag{Kind: kind})
				}).WithColor(colors.Primary, colors.OnPrimary),
				widgets.VSpace(8),
			)
		}
	case PhaseTeaBag:
		for _, temp := range waterTemps {
			items = append(items,
				widgets.ButtonOf(fmt.Sprintf("Add Water (%d°C)", temp), func() {
					brew.Send(AddWater{Temp: temp})
				}).WithColor(colors.Secondary, colors.OnSecondary),
				widgets.VSpace(8),
			)
		}
	case PhaseReady, PhaseFailed:
		items = append(items,
			widgets.ButtonOf("Try again", func() {
				brew.Send(CupFetched{})
			}).WithColor(colors.SurfaceVariant, colors.OnSurfaceVariant),
		)
	}
	return items
}
