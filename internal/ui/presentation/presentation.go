// Package presentation shows a short slideshow introducing the app.
package presentation

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type slide struct {
	Title    string
	Subtitle string
	Content  string
}

var slides = []slide{
	{
		Title:    "Focus Tree",
		Subtitle: "Grow Your Productivity, One Session at a Time",
		Content:  "A beautiful productivity app that helps you stay focused and track your progress through a growing tree visualization.",
	},
	{
		Title:    "Tree Growth Visualization",
		Subtitle: "Watch Your Focus Come to Life",
		Content:  "Your tree grows through 5 stages as you complete your session: Seed, Sprout, Sapling, Young Tree, Mature Tree.",
	},
	{
		Title:    "Pomodoro Timer",
		Subtitle: "Customizable Focus Sessions",
		Content:  "Choose from preset durations or set your own custom time. Watch your tree grow as you focus.",
	},
	{
		Title:    "Ambient Sounds",
		Subtitle: "Enhance Your Focus Environment",
		Content:  "Choose from calming ambient sounds to help you concentrate during your focus sessions.",
	},
	{
		Title:    "Session Tracking",
		Subtitle: "Keep Track of Your Productivity",
		Content:  "Automatically save and review all your completed focus sessions with detailed history.",
	},
	{
		Title:    "Statistics & Insights",
		Subtitle: "Visualize Your Progress",
		Content:  "Get detailed insights into your productivity patterns with charts and metrics.",
	},
	{
		Title:    "Achievements System",
		Subtitle: "Unlock Rewards as You Progress",
		Content:  "Earn achievements and badges as you reach productivity milestones.",
	},
	{
		Title:    "Daily Goals",
		Subtitle: "Set and Achieve Your Daily Targets",
		Content:  "Track your daily progress with visual indicators and motivational messages.",
	},
	{
		Title:    "Start Growing Today",
		Subtitle: "Your Focus Journey Begins Now",
		Content:  "Complete a focus session and watch your first tree reach maturity.",
	},
}

// Window is the slideshow window.
type Window struct {
	window fyne.Window

	index    int
	title    *widget.Label
	subtitle *widget.Label
	content  *widget.Label
	counter  *widget.Label
	previous *widget.Button
	next     *widget.Button
}

// New builds the slideshow on its own window, hidden until Show is called.
func New(app fyne.App) *Window {
	window := app.NewWindow("FocusTree Tour")

	show := &Window{
		window:   window,
		title:    widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		subtitle: widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true}),
		content:  widget.NewLabel(""),
		counter:  widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{}),
	}
	show.content.Wrapping = fyne.TextWrapWord
	show.content.Alignment = fyne.TextAlignCenter

	show.previous = widget.NewButton("← Previous", func() { show.step(-1) })
	show.next = widget.NewButton("Next →", func() { show.step(1) })

	controls := container.NewHBox(show.previous, show.counter, show.next)

	window.SetContent(container.NewVBox(
		show.title,
		show.subtitle,
		widget.NewSeparator(),
		show.content,
		container.NewCenter(controls),
	))
	window.Resize(fyne.NewSize(460, 320))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	show.render()
	return show
}

// Show opens the slideshow at the first slide.
func (show *Window) Show() {
	show.index = 0
	show.render()
	show.window.Show()
	show.window.RequestFocus()
}

func (show *Window) step(delta int) {
	next := show.index + delta
	if next < 0 || next >= len(slides) {
		return
	}
	show.index = next
	show.render()
}

func (show *Window) render() {
	current := slides[show.index]
	show.title.SetText(current.Title)
	show.subtitle.SetText(current.Subtitle)
	show.content.SetText(current.Content)
	show.counter.SetText(fmt.Sprintf("%d / %d", show.index+1, len(slides)))

	if show.index == 0 {
		show.previous.Disable()
	} else {
		show.previous.Enable()
	}
	if show.index == len(slides)-1 {
		show.next.Disable()
	} else {
		show.next.Enable()
	}
}
