package mainwindow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"focustree/internal/core/model"
)

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "25:00", formatClock(1500))
	assert.Equal(t, "00:09", formatClock(9))
	assert.Equal(t, "00:00", formatClock(0))
	assert.Equal(t, "00:00", formatClock(-5))
	assert.Equal(t, "90:00", formatClock(5400))
}

func TestThemeLabelRoundTrip(t *testing.T) {
	for _, label := range orderedThemeLabels() {
		theme, ok := themeLabels[label]
		assert.True(t, ok, "option %q has no theme mapping", label)
		assert.Equal(t, label, themeLabel(theme))
	}
}

func TestAmbientLabelRoundTrip(t *testing.T) {
	for _, label := range orderedAmbientLabels() {
		sound, ok := ambientLabels[label]
		assert.True(t, ok, "option %q has no sound mapping", label)
		assert.Equal(t, label, ambientLabel(sound))
	}
}

func TestUnknownValuesFallBack(t *testing.T) {
	assert.Equal(t, "Default", themeLabel(model.TreeTheme("sepia")))
	assert.Equal(t, "No Sound", ambientLabel(model.AmbientSound("thunder")))
}
