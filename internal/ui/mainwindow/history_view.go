package mainwindow

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"focustree/internal/core/model"
)

type historyView struct {
	callbacks Callbacks

	sessions      []model.Session
	list          *widget.List
	totalSessions *widget.Label
	totalMinutes  *widget.Label
	emptyLabel    *widget.Label

	content fyne.CanvasObject
}

func newHistoryView(callbacks Callbacks) *historyView {
	view := &historyView{callbacks: callbacks}

	view.list = widget.NewList(
		func() int { return len(view.sessions) },
		func() fyne.CanvasObject {
			duration := widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
			completed := widget.NewLabel("")
			remove := widget.NewButtonWithIcon("", theme.DeleteIcon(), nil)
			return container.NewHBox(duration, completed, layout.NewSpacer(), remove)
		},
		func(id widget.ListItemID, item fyne.CanvasObject) {
			if id < 0 || id >= len(view.sessions) {
				return
			}
			session := view.sessions[id]
			row := item.(*fyne.Container)

			duration := row.Objects[0].(*widget.Label)
			completed := row.Objects[1].(*widget.Label)
			remove := row.Objects[3].(*widget.Button)

			duration.SetText(fmt.Sprintf("%d min", session.DurationMinutes))
			completed.SetText(session.CompletedAt.Format("Jan 2, 2006 3:04 PM"))
			remove.OnTapped = func() {
				if view.callbacks.OnDeleteSession != nil {
					view.callbacks.OnDeleteSession(session.ID)
				}
			}
		},
	)

	view.totalSessions = widget.NewLabelWithStyle("0", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	view.totalMinutes = widget.NewLabelWithStyle("0", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	totals := container.NewGridWithColumns(2,
		container.NewVBox(view.totalSessions, widget.NewLabelWithStyle("Total Sessions", fyne.TextAlignCenter, fyne.TextStyle{})),
		container.NewVBox(view.totalMinutes, widget.NewLabelWithStyle("Total Minutes", fyne.TextAlignCenter, fyne.TextStyle{})),
	)

	export := widget.NewButtonWithIcon("Export CSV", theme.DownloadIcon(), func() {
		if view.callbacks.OnExportHistory != nil {
			view.callbacks.OnExportHistory()
		}
	})

	view.emptyLabel = widget.NewLabelWithStyle("No sessions yet. Complete a focus session to grow your history.", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	header := container.NewVBox(totals, container.NewCenter(export), view.emptyLabel)
	view.content = container.NewBorder(header, nil, nil, nil, view.list)

	return view
}

// setSessions replaces the listed sessions. Must run on the UI thread.
func (view *historyView) setSessions(sessions []model.Session, totalSessions, totalMinutes int) {
	view.sessions = sessions
	view.totalSessions.SetText(fmt.Sprintf("%d", totalSessions))
	view.totalMinutes.SetText(fmt.Sprintf("%d", totalMinutes))
	if len(sessions) == 0 {
		view.emptyLabel.Show()
	} else {
		view.emptyLabel.Hide()
	}
	view.list.Refresh()
}
