package tree

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"focustree/internal/core/model"
)

func TestStageFor(t *testing.T) {
	cases := []struct {
		progress float64
		want     Stage
	}{
		{0, StageSeed},
		{19.9, StageSeed},
		{20, StageSprout},
		{39.9, StageSprout},
		{40, StageSapling},
		{59.9, StageSapling},
		{60, StageYoung},
		{79.9, StageYoung},
		{80, StageMature},
		{100, StageMature},
	}
	for _, testCase := range cases {
		assert.Equal(t, testCase.want, StageFor(testCase.progress), "progress %v", testCase.progress)
	}
}

func TestWidgetStageTransitions(t *testing.T) {
	test.NewApp()

	widget := New(model.ThemeDefault)
	assert.Equal(t, StageSeed, widget.Stage())

	widget.SetProgress(55)
	assert.Equal(t, StageSapling, widget.Stage())

	widget.ShowBreak()
	widget.SetProgress(55)
	assert.Equal(t, StageSapling, widget.Stage(), "leaving a break restores the previous stage")
}

func TestThemePalettesDiffer(t *testing.T) {
	themes := []model.TreeTheme{model.ThemeDefault, model.ThemeAutumn, model.ThemeSpring, model.ThemeWinter}
	seen := map[palette]bool{}
	for _, theme := range themes {
		colors := themePalette(theme)
		assert.False(t, seen[colors], "palette for %s duplicates another theme", theme)
		seen[colors] = true
	}
}
