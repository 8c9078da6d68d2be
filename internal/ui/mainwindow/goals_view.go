package mainwindow

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"focustree/internal/core/goals"
	"focustree/internal/core/model"
)

type goalsView struct {
	callbacks Callbacks

	goal          model.DailyGoal
	sessionsLabel *widget.Label
	sessionsBar   *widget.ProgressBar
	minutesLabel  *widget.Label
	minutesBar    *widget.ProgressBar

	sessionsEntry *widget.Entry
	minutesEntry  *widget.Entry

	displayBox *fyne.Container
	editBox    *fyne.Container

	content fyne.CanvasObject
}

func newGoalsView(callbacks Callbacks) *goalsView {
	view := &goalsView{
		callbacks:     callbacks,
		goal:          model.DefaultDailyGoal(),
		sessionsLabel: widget.NewLabel("Sessions 0 / 4"),
		sessionsBar:   widget.NewProgressBar(),
		minutesLabel:  widget.NewLabel("Minutes 0 / 100"),
		minutesBar:    widget.NewProgressBar(),
		sessionsEntry: widget.NewEntry(),
		minutesEntry:  widget.NewEntry(),
	}

	edit := widget.NewButton("Edit", func() {
		view.sessionsEntry.SetText(fmt.Sprintf("%d", view.goal.TargetSessions))
		view.minutesEntry.SetText(fmt.Sprintf("%d", view.goal.TargetMinutes))
		view.displayBox.Hide()
		view.editBox.Show()
	})

	view.displayBox = container.NewVBox(
		container.NewBorder(nil, nil, nil, edit, widget.NewLabelWithStyle("Daily Goal", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})),
		view.sessionsLabel,
		view.sessionsBar,
		view.minutesLabel,
		view.minutesBar,
	)

	save := widget.NewButton("Save", func() {
		if view.callbacks.OnSaveGoals != nil {
			view.callbacks.OnSaveGoals(view.sessionsEntry.Text, view.minutesEntry.Text)
		}
	})
	save.Importance = widget.HighImportance
	cancel := widget.NewButton("Cancel", func() {
		view.closeEditor()
	})

	view.editBox = container.NewVBox(
		widget.NewLabelWithStyle("Daily Goal", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Sessions"), view.sessionsEntry),
		container.NewHBox(widget.NewLabel("Minutes"), view.minutesEntry),
		container.NewHBox(save, cancel),
	)
	view.editBox.Hide()

	view.content = container.NewVBox(view.displayBox, view.editBox)
	return view
}

// update refreshes goal progress. Must run on the UI thread.
func (view *goalsView) update(goal model.DailyGoal, todaySessions, todayMinutes int) {
	view.goal = goal
	view.sessionsLabel.SetText(fmt.Sprintf("Sessions %d / %d", todaySessions, goal.TargetSessions))
	view.sessionsBar.SetValue(goals.Progress(todaySessions, goal.TargetSessions))
	view.minutesLabel.SetText(fmt.Sprintf("Minutes %d / %d", todayMinutes, goal.TargetMinutes))
	view.minutesBar.SetValue(goals.Progress(todayMinutes, goal.TargetMinutes))
}

func (view *goalsView) closeEditor() {
	view.editBox.Hide()
	view.displayBox.Show()
}
