package charts

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"focustree/internal/core/stats"
)

func TestPieColorAtOutsideCircleIsTransparent(t *testing.T) {
	distribution := []stats.DurationCount{{Minutes: 25, Label: "25 min", Count: 1}}
	got := pieColorAt(distribution, 1, 0, 0, 100, 100)
	assert.Equal(t, color.Transparent, got)
}

func TestPieColorAtSplitsHalves(t *testing.T) {
	distribution := []stats.DurationCount{
		{Minutes: 25, Label: "25 min", Count: 2},
		{Minutes: 10, Label: "10 min", Count: 2},
	}

	// The first slice spans the right half starting at twelve o'clock.
	right := pieColorAt(distribution, 4, 75, 50, 100, 100)
	left := pieColorAt(distribution, 4, 25, 50, 100, 100)
	assert.Equal(t, sliceColors[0], right)
	assert.Equal(t, sliceColors[1], left)
}

func TestBarChartHandlesEmptyWindow(t *testing.T) {
	test.NewApp()
	assert.NotNil(t, BarChart(nil))
}

func TestPieChartEmptyDistribution(t *testing.T) {
	test.NewApp()
	assert.NotNil(t, PieChart(nil))
}
