// Package charts draws the statistics visuals from canvas primitives.
package charts

import (
	"fmt"
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"focustree/internal/core/stats"
)

var sliceColors = []color.NRGBA{
	{R: 0x4a, G: 0xa5, B: 0x4a, A: 0xff},
	{R: 0xd9, G: 0x77, B: 0x06, A: 0xff},
	{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff},
	{R: 0xa8, G: 0x55, B: 0xf7, A: 0xff},
	{R: 0xef, G: 0x44, B: 0x44, A: 0xff},
	{R: 0x14, G: 0xb8, B: 0xa6, A: 0xff},
}

const (
	barAreaHeight = float32(140)
	barWidth      = float32(28)
	barSlot       = float32(46)
	pieDiameter   = 160
)

// BarChart renders focused minutes per day as a vertical bar chart.
func BarChart(totals []stats.DayTotal) fyne.CanvasObject {
	chart := container.NewWithoutLayout()
	chartWidth := barSlot * float32(len(totals))

	maxMinutes := 0
	for _, day := range totals {
		if day.Minutes > maxMinutes {
			maxMinutes = day.Minutes
		}
	}

	for i, day := range totals {
		x := float32(i)*barSlot + (barSlot-barWidth)/2

		height := float32(2)
		if maxMinutes > 0 && day.Minutes > 0 {
			height = barAreaHeight * float32(day.Minutes) / float32(maxMinutes)
			if height < 2 {
				height = 2
			}
		}

		bar := canvas.NewRectangle(sliceColors[0])
		bar.CornerRadius = 4
		bar.Resize(fyne.NewSize(barWidth, height))
		bar.Move(fyne.NewPos(x, barAreaHeight-height))
		chart.Add(bar)

		if day.Minutes > 0 {
			value := canvas.NewText(fmt.Sprintf("%d", day.Minutes), textColors().Foreground)
			value.TextSize = 11
			value.Alignment = fyne.TextAlignCenter
			value.Resize(fyne.NewSize(barSlot, 14))
			value.Move(fyne.NewPos(float32(i)*barSlot, barAreaHeight-height-16))
			chart.Add(value)
		}

		label := canvas.NewText(day.Label, textColors().Muted)
		label.TextSize = 12
		label.Alignment = fyne.TextAlignCenter
		label.Resize(fyne.NewSize(barSlot, 16))
		label.Move(fyne.NewPos(float32(i)*barSlot, barAreaHeight+6))
		chart.Add(label)
	}

	chart.Resize(fyne.NewSize(chartWidth, barAreaHeight+26))

	wrapper := container.New(layout.NewGridWrapLayout(fyne.NewSize(chartWidth, barAreaHeight+26)), chart)
	return container.NewCenter(wrapper)
}

// PieChart renders the session duration distribution with a legend.
func PieChart(distribution []stats.DurationCount) fyne.CanvasObject {
	if len(distribution) == 0 {
		return container.NewCenter(widget.NewLabel("Complete a session to see your favorite durations"))
	}

	total := 0
	for _, slice := range distribution {
		total += slice.Count
	}

	pie := canvas.NewRasterWithPixels(func(x, y, w, h int) color.Color {
		return pieColorAt(distribution, total, x, y, w, h)
	})
	pie.SetMinSize(fyne.NewSize(pieDiameter, pieDiameter))

	legend := container.NewVBox()
	for i, slice := range distribution {
		swatch := canvas.NewRectangle(sliceColors[i%len(sliceColors)])
		swatch.CornerRadius = 3
		swatch.SetMinSize(fyne.NewSize(14, 14))

		share := float64(slice.Count) / float64(total) * 100
		entry := widget.NewLabel(fmt.Sprintf("%s · %d sessions (%.0f%%)", slice.Label, slice.Count, share))
		legend.Add(container.NewHBox(container.NewCenter(swatch), entry))
	}

	return container.NewHBox(container.NewCenter(pie), legend)
}

func pieColorAt(distribution []stats.DurationCount, total, x, y, w, h int) color.Color {
	cx := float64(w) / 2
	cy := float64(h) / 2
	radius := math.Min(cx, cy) - 2

	dx := float64(x) - cx
	dy := float64(y) - cy
	if dx*dx+dy*dy > radius*radius {
		return color.Transparent
	}

	// Angle measured clockwise from twelve o'clock.
	angle := math.Atan2(dx, -dy)
	if angle < 0 {
		angle += 2 * math.Pi
	}

	start := 0.0
	for i, slice := range distribution {
		span := 2 * math.Pi * float64(slice.Count) / float64(total)
		if angle < start+span || i == len(distribution)-1 {
			return sliceColors[i%len(sliceColors)]
		}
		start += span
	}
	return color.Transparent
}

type chartText struct {
	Foreground color.NRGBA
	Muted      color.NRGBA
}

func textColors() chartText {
	return chartText{
		Foreground: color.NRGBA{R: 0x2a, G: 0x2a, B: 0x2a, A: 0xff},
		Muted:      color.NRGBA{R: 0x6b, G: 0x6b, B: 0x6b, A: 0xff},
	}
}
