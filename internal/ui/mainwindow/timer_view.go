package mainwindow

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"focustree/internal/core/model"
	"focustree/internal/core/timer"
	"focustree/internal/ui/celebrate"
	"focustree/internal/ui/tree"
)

var (
	presetMinutes = []int{5, 10, 15, 20, 25}
	breakMinutes  = []int{5, 10, 15}
)

type timerView struct {
	callbacks Callbacks

	tree          *tree.Widget
	particleLayer *fyne.Container

	timeLabel   *canvas.Text
	modeLabel   *widget.Label
	progressBar *widget.ProgressBar

	startButton *widget.Button
	pauseButton *widget.Button
	resetButton *widget.Button

	presetButtons map[int]*widget.Button
	customEntry   *widget.Entry
	customRow     *fyne.Container
	durationRow   *fyne.Container

	breakRow *fyne.Container

	themeSelect   *widget.Select
	ambientSelect *widget.Select
	quoteLabel    *widget.Label

	content fyne.CanvasObject
}

var themeLabels = map[string]model.TreeTheme{
	"Default": model.ThemeDefault,
	"Autumn":  model.ThemeAutumn,
	"Spring":  model.ThemeSpring,
	"Winter":  model.ThemeWinter,
}

var ambientLabels = map[string]model.AmbientSound{
	"No Sound":  model.AmbientNone,
	"🌧️ Rain":   model.AmbientRain,
	"🌲 Forest": model.AmbientForest,
	"🌊 Ocean":  model.AmbientOcean,
}

func newTimerView(settings model.Settings, callbacks Callbacks) *timerView {
	view := &timerView{
		callbacks:     callbacks,
		presetButtons: map[int]*widget.Button{},
	}

	view.tree = tree.New(settings.TreeTheme)
	view.particleLayer = container.NewWithoutLayout()
	view.particleLayer.Resize(fyne.NewSize(tree.Size, tree.Size))

	view.timeLabel = canvas.NewText("25:00", color.NRGBA{R: 0x2a, G: 0x2a, B: 0x2a, A: 0xff})
	view.timeLabel.TextSize = 52
	view.timeLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	view.timeLabel.Alignment = fyne.TextAlignCenter

	view.modeLabel = widget.NewLabelWithStyle("Focus", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	view.progressBar = widget.NewProgressBar()
	view.progressBar.TextFormatter = func() string { return "" }

	view.startButton = widget.NewButton("Start", func() {
		if callbacks.OnStart != nil {
			callbacks.OnStart()
		}
	})
	view.startButton.Importance = widget.HighImportance

	view.pauseButton = widget.NewButton("Pause", func() {
		if callbacks.OnPause != nil {
			callbacks.OnPause()
		}
	})
	view.pauseButton.Hide()

	view.resetButton = widget.NewButton("Reset", func() {
		if callbacks.OnReset != nil {
			callbacks.OnReset()
		}
	})

	presetRow := container.NewHBox()
	for _, minutes := range presetMinutes {
		minutes := minutes
		button := widget.NewButton(fmt.Sprintf("%d", minutes), func() {
			if callbacks.OnSelectDuration != nil {
				callbacks.OnSelectDuration(minutes)
			}
		})
		view.presetButtons[minutes] = button
		presetRow.Add(button)
	}

	view.customEntry = widget.NewEntry()
	view.customEntry.SetPlaceHolder("minutes")
	customApply := widget.NewButton("Set", func() {
		if callbacks.OnCustomDuration != nil {
			callbacks.OnCustomDuration(view.customEntry.Text)
		}
	})
	view.customEntry.OnSubmitted = func(text string) {
		if callbacks.OnCustomDuration != nil {
			callbacks.OnCustomDuration(text)
		}
	}
	view.customRow = container.NewHBox(widget.NewLabel("Custom"), view.customEntry, customApply)
	view.durationRow = container.NewVBox(
		container.NewCenter(presetRow),
		container.NewCenter(view.customRow),
	)

	breakButtons := container.NewHBox(widget.NewLabel("Break"))
	for _, minutes := range breakMinutes {
		minutes := minutes
		breakButtons.Add(widget.NewButton(fmt.Sprintf("☕ %d min", minutes), func() {
			if callbacks.OnStartBreak != nil {
				callbacks.OnStartBreak(minutes)
			}
		}))
	}
	view.breakRow = container.NewCenter(breakButtons)

	view.themeSelect = widget.NewSelect(orderedThemeLabels(), func(label string) {
		if theme, ok := themeLabels[label]; ok && callbacks.OnThemeChange != nil {
			callbacks.OnThemeChange(theme)
		}
	})
	view.themeSelect.SetSelected(themeLabel(settings.TreeTheme))

	view.ambientSelect = widget.NewSelect(orderedAmbientLabels(), func(label string) {
		if sound, ok := ambientLabels[label]; ok && callbacks.OnAmbientChange != nil {
			callbacks.OnAmbientChange(sound)
		}
	})
	view.ambientSelect.SetSelected(ambientLabel(settings.Ambient))

	view.quoteLabel = widget.NewLabel(randomQuote())
	view.quoteLabel.TextStyle = fyne.TextStyle{Italic: true}
	view.quoteLabel.Wrapping = fyne.TextWrapWord
	view.quoteLabel.Alignment = fyne.TextAlignCenter

	selects := container.NewHBox(
		widget.NewLabel("Theme"), view.themeSelect,
		widget.NewLabel("Sound"), view.ambientSelect,
	)

	controls := container.NewCenter(container.NewHBox(view.startButton, view.pauseButton, view.resetButton))

	timeWrap := container.New(&fixedHeight{height: 64}, view.timeLabel)

	view.content = container.NewVBox(
		container.NewCenter(container.NewStack(view.tree.CanvasObject(), view.particleLayer)),
		view.modeLabel,
		timeWrap,
		view.progressBar,
		controls,
		view.durationRow,
		view.breakRow,
		widget.NewSeparator(),
		container.NewCenter(selects),
		view.quoteLabel,
	)

	return view
}

// apply reflects a timer snapshot into the view. Must run on the UI thread.
func (view *timerView) apply(snapshot timer.Snapshot) {
	view.timeLabel.Text = formatClock(snapshot.RemainingSeconds)
	view.timeLabel.Refresh()
	view.progressBar.SetValue(snapshot.Progress / 100)

	if snapshot.Mode == timer.ModeBreak {
		view.modeLabel.SetText("Break")
		view.tree.ShowBreak()
	} else {
		view.modeLabel.SetText("Focus")
		view.tree.SetProgress(snapshot.Progress)
	}

	running := snapshot.State == timer.StateRunning
	if running {
		view.startButton.Hide()
		view.pauseButton.Show()
	} else {
		view.pauseButton.Hide()
		view.startButton.Show()
	}

	selectable := snapshot.State == timer.StateIdle &&
		snapshot.Mode == timer.ModeFocus &&
		snapshot.RemainingSeconds == snapshot.TotalSeconds
	for minutes, button := range view.presetButtons {
		if selectable {
			button.Enable()
		} else {
			button.Disable()
		}
		if minutes*60 == snapshot.TotalSeconds {
			button.Importance = widget.HighImportance
		} else {
			button.Importance = widget.MediumImportance
		}
		button.Refresh()
	}
	if selectable {
		view.customEntry.Enable()
	} else {
		view.customEntry.Disable()
	}

	if !running && snapshot.Mode == timer.ModeFocus {
		view.breakRow.Show()
	} else {
		view.breakRow.Hide()
	}
}

// renderParticles draws one confetti frame over the tree. A nil frame clears
// the layer. Must run on the UI thread.
func (view *timerView) renderParticles(particles []celebrate.Particle) {
	view.particleLayer.RemoveAll()
	for _, particle := range particles {
		dot := canvas.NewCircle(celebrate.Colors[particle.ColorIndex])
		size := float32(particle.Size)
		dot.Resize(fyne.NewSize(size, size))
		dot.Move(fyne.NewPos(
			tree.Size/2+float32(particle.X)-size/2,
			tree.Size/2+float32(particle.Y)-size/2,
		))
		view.particleLayer.Add(dot)
	}
	view.particleLayer.Refresh()
}

func (view *timerView) newQuote() {
	view.quoteLabel.SetText(randomQuote())
}

func (view *timerView) setTheme(theme model.TreeTheme) {
	view.tree.SetTheme(theme)
}

func formatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func themeLabel(theme model.TreeTheme) string {
	for label, value := range themeLabels {
		if value == theme {
			return label
		}
	}
	return "Default"
}

func ambientLabel(sound model.AmbientSound) string {
	for label, value := range ambientLabels {
		if value == sound {
			return label
		}
	}
	return "No Sound"
}

func orderedThemeLabels() []string {
	return []string{"Default", "Autumn", "Spring", "Winter"}
}

func orderedAmbientLabels() []string {
	return []string{"No Sound", "🌧️ Rain", "🌲 Forest", "🌊 Ocean"}
}

// fixedHeight lays out a single object at a fixed height and full width.
type fixedHeight struct {
	height float32
}

func (layout *fixedHeight) MinSize(objects []fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(0, layout.height)
}

func (layout *fixedHeight) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, object := range objects {
		object.Resize(size)
		object.Move(fyne.NewPos(0, 0))
	}
}
