// Package mainwindow builds the FocusTree application window: the timer with
// its growing tree, session history, statistics, achievements, and the daily
// goal card. The window never mutates domain state itself; every interaction
// goes through a callback supplied by the caller.
package mainwindow

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"focustree/internal/core/achievements"
	"focustree/internal/core/model"
	"focustree/internal/core/stats"
	"focustree/internal/core/timer"
	"focustree/internal/ui/celebrate"
)

// Callbacks defines the handlers for user actions in the main window.
type Callbacks struct {
	OnStart            func()
	OnPause            func()
	OnReset            func()
	OnSelectDuration   func(minutes int)
	OnCustomDuration   func(text string)
	OnStartBreak       func(minutes int)
	OnDeleteSession    func(id string)
	OnExportHistory    func()
	OnSaveGoals        func(sessionsText, minutesText string)
	OnThemeChange      func(theme model.TreeTheme)
	OnAmbientChange    func(sound model.AmbientSound)
	OnToggleAutostart  func(enabled bool)
	OnShowPresentation func()
}

// Window is the main application window.
type Window struct {
	window fyne.Window

	timerView        *timerView
	historyView      *historyView
	statsView        *statsView
	achievementsView *achievementsView
	goalsView        *goalsView

	autostartCheck *widget.Check
	status         *widget.Label
}

// New builds the main window with the provided callbacks.
func New(app fyne.App, settings model.Settings, autostartEnabled bool, callbacks Callbacks) *Window {
	window := app.NewWindow("FocusTree")

	main := &Window{
		window:           window,
		timerView:        newTimerView(settings, callbacks),
		historyView:      newHistoryView(callbacks),
		statsView:        newStatsView(),
		achievementsView: newAchievementsView(),
		goalsView:        newGoalsView(callbacks),
		status:           widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true}),
	}

	main.autostartCheck = widget.NewCheck("Launch at login", func(enabled bool) {
		if callbacks.OnToggleAutostart != nil {
			callbacks.OnToggleAutostart(enabled)
		}
	})
	main.autostartCheck.SetChecked(autostartEnabled)

	about := widget.NewButton("Tour", func() {
		if callbacks.OnShowPresentation != nil {
			callbacks.OnShowPresentation()
		}
	})

	header := container.NewBorder(nil, nil,
		widget.NewLabelWithStyle("🌳 FocusTree", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(about, main.autostartCheck),
	)

	tabs := container.NewAppTabs(
		container.NewTabItem("Timer", main.timerView.content),
		container.NewTabItem("History", main.historyView.content),
		container.NewTabItem("Statistics", main.statsView.content),
		container.NewTabItem("Achievements", main.achievementsView.content),
	)

	content := container.NewBorder(
		container.NewVBox(header, main.goalsView.content),
		main.status,
		nil, nil,
		tabs,
	)

	window.SetContent(content)
	window.Resize(fyne.NewSize(520, 760))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	return main
}

// Show displays the window and brings it to front.
func (main *Window) Show() {
	main.window.Show()
	main.window.RequestFocus()
}

// Window exposes the underlying fyne window for dialogs.
func (main *Window) Window() fyne.Window {
	return main.window
}

// SetStatus replaces the transient status line at the bottom of the window.
func (main *Window) SetStatus(text string) {
	main.status.SetText(text)
}

// ApplyTimer reflects a timer snapshot across the timer view.
func (main *Window) ApplyTimer(snapshot timer.Snapshot) {
	main.timerView.apply(snapshot)
}

// SetSessions refreshes the history tab.
func (main *Window) SetSessions(sessions []model.Session, totalSessions, totalMinutes int) {
	main.historyView.setSessions(sessions, totalSessions, totalMinutes)
}

// SetStats refreshes the statistics tab.
func (main *Window) SetStats(daily []stats.DayTotal, distribution []stats.DurationCount, totalSessions, averageMinutes, streak int) {
	main.statsView.update(daily, distribution, totalSessions, averageMinutes, streak)
}

// SetAchievements refreshes the achievements tab.
func (main *Window) SetAchievements(list []achievements.Achievement, totalSessions, totalMinutes int) {
	main.achievementsView.update(list, totalSessions, totalMinutes)
}

// SetGoals refreshes the daily goal card and leaves edit mode.
func (main *Window) SetGoals(goal model.DailyGoal, todaySessions, todayMinutes int) {
	main.goalsView.update(goal, todaySessions, todayMinutes)
}

// CloseGoalEditor returns the goal card to display mode.
func (main *Window) CloseGoalEditor() {
	main.goalsView.closeEditor()
}

// SetTheme repaints the tree with a new seasonal palette.
func (main *Window) SetTheme(theme model.TreeTheme) {
	main.timerView.setTheme(theme)
}

// NewQuote swaps in a fresh motivational quote.
func (main *Window) NewQuote() {
	main.timerView.newQuote()
}

// RenderParticles draws one confetti frame over the tree; nil clears it.
func (main *Window) RenderParticles(particles []celebrate.Particle) {
	main.timerView.renderParticles(particles)
}

// SetAutostart updates the launch-at-login checkbox without firing its callback.
func (main *Window) SetAutostart(enabled bool) {
	check := main.autostartCheck
	handler := check.OnChanged
	check.OnChanged = nil
	check.SetChecked(enabled)
	check.OnChanged = handler
}
