// Package tree renders the growing tree from canvas primitives. The tree
// advances through five stages as countdown progress approaches 100.
package tree

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"focustree/internal/core/model"
)

// Stage identifies how far the tree has grown.
type Stage string

const (
	StageSeed    Stage = "seed"
	StageSprout  Stage = "sprout"
	StageSapling Stage = "sapling"
	StageYoung   Stage = "young"
	StageMature  Stage = "mature"
)

// StageFor maps countdown progress (0..100) to a growth stage.
func StageFor(progress float64) Stage {
	switch {
	case progress < 20:
		return StageSeed
	case progress < 40:
		return StageSprout
	case progress < 60:
		return StageSapling
	case progress < 80:
		return StageYoung
	default:
		return StageMature
	}
}

type palette struct {
	leaf   color.NRGBA
	accent color.NRGBA
	trunk  color.NRGBA
	seed   color.NRGBA
	earth  color.NRGBA
}

func themePalette(theme model.TreeTheme) palette {
	base := palette{
		seed:  color.NRGBA{R: 0x8b, G: 0x5a, B: 0x2b, A: 0xff},
		earth: color.NRGBA{R: 0x6b, G: 0x4f, B: 0x2a, A: 0xff},
	}
	switch theme {
	case model.ThemeAutumn:
		base.leaf = color.NRGBA{R: 0xd9, G: 0x77, B: 0x06, A: 0xff}
		base.accent = color.NRGBA{R: 0xea, G: 0x58, B: 0x0c, A: 0xff}
		base.trunk = color.NRGBA{R: 0x78, G: 0x35, B: 0x0f, A: 0xff}
	case model.ThemeSpring:
		base.leaf = color.NRGBA{R: 0x86, G: 0xef, B: 0xac, A: 0xff}
		base.accent = color.NRGBA{R: 0xfb, G: 0xbf, B: 0x24, A: 0xff}
		base.trunk = color.NRGBA{R: 0x78, G: 0x35, B: 0x0f, A: 0xff}
	case model.ThemeWinter:
		base.leaf = color.NRGBA{R: 0xe0, G: 0xf2, B: 0xfe, A: 0xff}
		base.accent = color.NRGBA{R: 0xba, G: 0xe6, B: 0xfd, A: 0xff}
		base.trunk = color.NRGBA{R: 0x71, G: 0x71, B: 0x7a, A: 0xff}
	default:
		base.leaf = color.NRGBA{R: 0x4a, G: 0xa5, B: 0x4a, A: 0xff}
		base.accent = color.NRGBA{R: 0x7b, G: 0xc6, B: 0x5f, A: 0xff}
		base.trunk = color.NRGBA{R: 0x6b, G: 0x4f, B: 0x2a, A: 0xff}
	}
	return base
}

// Size is the square edge length of the tree canvas.
const Size = float32(260)

const (
	canvasSize  = Size
	groundLevel = canvasSize - 12
)

// Widget draws the tree for the current progress and theme.
type Widget struct {
	root      *fyne.Container
	theme     model.TreeTheme
	stage     Stage
	breakMode bool
}

// New creates a tree widget at the seed stage.
func New(theme model.TreeTheme) *Widget {
	widget := &Widget{
		root:  container.NewWithoutLayout(),
		theme: theme,
		stage: StageSeed,
	}
	widget.rebuild()
	return widget
}

// CanvasObject returns the renderable root of the tree.
func (tree *Widget) CanvasObject() fyne.CanvasObject {
	return tree.root
}

// SetProgress updates the growth stage from countdown progress.
func (tree *Widget) SetProgress(progress float64) {
	stage := StageFor(progress)
	if stage == tree.stage && !tree.breakMode {
		return
	}
	tree.stage = stage
	tree.breakMode = false
	tree.rebuild()
}

// SetTheme switches the seasonal palette.
func (tree *Widget) SetTheme(theme model.TreeTheme) {
	if theme == tree.theme {
		return
	}
	tree.theme = theme
	tree.rebuild()
}

// ShowBreak replaces the tree with the break art.
func (tree *Widget) ShowBreak() {
	if tree.breakMode {
		return
	}
	tree.breakMode = true
	tree.rebuild()
}

// Stage returns the currently rendered growth stage.
func (tree *Widget) Stage() Stage {
	return tree.stage
}

func (tree *Widget) rebuild() {
	tree.root.RemoveAll()

	if tree.breakMode {
		coffee := canvas.NewText("☕", color.NRGBA{R: 0x8b, G: 0x5a, B: 0x2b, A: 0xff})
		coffee.TextSize = 96
		coffee.Alignment = fyne.TextAlignCenter
		coffee.Resize(fyne.NewSize(canvasSize, canvasSize))
		coffee.Move(fyne.NewPos(0, 0))
		tree.root.Add(coffee)
		tree.finish()
		return
	}

	colors := themePalette(tree.theme)

	ground := canvas.NewRectangle(colors.earth)
	ground.CornerRadius = 6
	ground.Resize(fyne.NewSize(canvasSize, 12))
	ground.Move(fyne.NewPos(0, groundLevel))
	tree.root.Add(ground)

	switch tree.stage {
	case StageSeed:
		tree.addCircle(colors.seed, 32, centerX(32), groundLevel-32)
	case StageSprout:
		tree.addStem(colors, 8, 48)
		tree.addCircle(colors.seed, 28, centerX(28), groundLevel-28)
	case StageSapling:
		tree.addStem(colors, 12, 96)
		tree.addCircle(colors.leaf, 24, centerX(24)-20, groundLevel-96-20)
		tree.addCircle(colors.leaf, 24, centerX(24)+20, groundLevel-96-20)
	case StageYoung:
		tree.addStem(colors, 16, 128)
		tree.addCircle(colors.leaf, 64, centerX(64), groundLevel-128-56)
		tree.addCircle(colors.leaf, 40, centerX(40)-36, groundLevel-128-36)
		tree.addCircle(colors.leaf, 40, centerX(40)+36, groundLevel-128-36)
	case StageMature:
		tree.addStem(colors, 20, 160)
		top := groundLevel - 160
		tree.addCircle(colors.leaf, 96, centerX(96), top-80)
		tree.addCircle(colors.leaf, 64, centerX(64)-52, top-48)
		tree.addCircle(colors.leaf, 64, centerX(64)+52, top-48)
		tree.addCircle(colors.accent, 80, centerX(80), top-104)
		tree.addCircle(colors.accent, 32, centerX(32)-72, top-24)
		tree.addCircle(colors.accent, 32, centerX(32)+72, top-24)
	}

	tree.finish()
}

func (tree *Widget) addStem(colors palette, width, height float32) {
	stem := canvas.NewRectangle(colors.trunk)
	stem.CornerRadius = width / 2
	stem.Resize(fyne.NewSize(width, height))
	stem.Move(fyne.NewPos(centerX(width), groundLevel-height))
	tree.root.Add(stem)
}

func (tree *Widget) addCircle(fill color.NRGBA, diameter, x, y float32) {
	circle := canvas.NewCircle(fill)
	circle.Resize(fyne.NewSize(diameter, diameter))
	circle.Move(fyne.NewPos(x, y))
	tree.root.Add(circle)
}

func (tree *Widget) finish() {
	tree.root.Resize(fyne.NewSize(canvasSize, canvasSize))
	tree.root.Refresh()
}

func centerX(diameter float32) float32 {
	return (canvasSize - diameter) / 2
}
