package mainwindow

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"focustree/internal/core/stats"
	"focustree/internal/ui/charts"
)

type statsView struct {
	totalSessions  *widget.Label
	averageMinutes *widget.Label
	streak         *widget.Label

	dailyChart *fyne.Container
	pieChart   *fyne.Container

	content fyne.CanvasObject
}

func newStatsView() *statsView {
	view := &statsView{
		totalSessions:  widget.NewLabelWithStyle("0", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		averageMinutes: widget.NewLabelWithStyle("0", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		streak:         widget.NewLabelWithStyle("0", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		dailyChart:     container.NewStack(),
		pieChart:       container.NewStack(),
	}

	summary := container.NewGridWithColumns(3,
		summaryCard(view.totalSessions, "Sessions"),
		summaryCard(view.averageMinutes, "Avg Minutes"),
		summaryCard(view.streak, "Day Streak 🔥"),
	)

	view.content = container.NewVScroll(container.NewVBox(
		summary,
		widget.NewLabelWithStyle("Last 7 Days", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		view.dailyChart,
		widget.NewLabelWithStyle("Favorite Durations", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		view.pieChart,
	))

	return view
}

func summaryCard(value *widget.Label, caption string) fyne.CanvasObject {
	return container.NewVBox(value, widget.NewLabelWithStyle(caption, fyne.TextAlignCenter, fyne.TextStyle{}))
}

// update rebuilds the charts from fresh aggregates. Must run on the UI thread.
func (view *statsView) update(daily []stats.DayTotal, distribution []stats.DurationCount, totalSessions, averageMinutes, streak int) {
	view.totalSessions.SetText(fmt.Sprintf("%d", totalSessions))
	view.averageMinutes.SetText(fmt.Sprintf("%d", averageMinutes))
	view.streak.SetText(fmt.Sprintf("%d", streak))

	view.dailyChart.RemoveAll()
	view.dailyChart.Add(charts.BarChart(daily))
	view.dailyChart.Refresh()

	view.pieChart.RemoveAll()
	view.pieChart.Add(charts.PieChart(distribution))
	view.pieChart.Refresh()
}
