package mainwindow

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"focustree/internal/core/achievements"
)

type achievementsView struct {
	counter *widget.Label
	grid    *fyne.Container

	content fyne.CanvasObject
}

func newAchievementsView() *achievementsView {
	view := &achievementsView{
		counter: widget.NewLabelWithStyle("0 / 0 unlocked", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		grid:    container.NewGridWithColumns(2),
	}
	view.content = container.NewVScroll(container.NewVBox(view.counter, view.grid))
	return view
}

// update rebuilds the badge cards. Must run on the UI thread.
func (view *achievementsView) update(list []achievements.Achievement, totalSessions, totalMinutes int) {
	unlocked := 0
	view.grid.RemoveAll()

	for _, achievement := range list {
		if achievement.Unlocked {
			unlocked++
		}
		view.grid.Add(achievementCard(achievement, totalSessions, totalMinutes))
	}

	view.counter.SetText(fmt.Sprintf("%d / %d unlocked", unlocked, len(list)))
	view.grid.Refresh()
}

func achievementCard(achievement achievements.Achievement, totalSessions, totalMinutes int) fyne.CanvasObject {
	title := fmt.Sprintf("%s %s", achievement.Icon, achievement.Title)

	var status fyne.CanvasObject
	if achievement.Unlocked {
		text := "Unlocked"
		if achievement.UnlockedAt != nil {
			text = fmt.Sprintf("Unlocked %s", achievement.UnlockedAt.Format("Jan 2, 2006"))
		}
		status = widget.NewLabelWithStyle(text, fyne.TextAlignLeading, fyne.TextStyle{Italic: true})
	} else {
		bar := widget.NewProgressBar()
		bar.SetValue(achievements.Progress(achievement, totalSessions, totalMinutes))
		status = bar
	}

	return widget.NewCard(title, achievement.Description, status)
}
