package chart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func points(amounts ...int64) []DataPoint {
	values := make([]DataPoint, 0, len(amounts))
	for _, amount := range amounts {
		values = append(values, DataPoint{
			Label:  "v",
			Amount: decimal.NewFromInt(amount),
		})
	}
	return values
}

func TestLayoutBars_Empty(t *testing.T) {
	bars := LayoutBars(nil, 400, 300)
	assert.Empty(t, bars)
}

func TestLayoutBars_EqualAmountsEqualHeights(t *testing.T) {
	bars := LayoutBars(points(100, 100, 100, 100), 400, 300)

	require.Len(t, bars, 4)
	for _, bar := range bars {
		assert.Equal(t, 230.0, bar.Height)
	}
}

func TestLayoutBars_Geometry(t *testing.T) {
	bars := LayoutBars(points(100, 50, 0), 300, 370)

	require.Len(t, bars, 3)
	// each bar takes half its slot: 300 / (3 * 2)
	for i, bar := range bars {
		assert.Equal(t, 50.0, bar.Width)
		assert.Equal(t, float64(i)*100, bar.X)
		assert.Equal(t, i, bar.ColorIndex)
	}
	// heights strictly decreasing, zero-amount bar held at the floor
	assert.Equal(t, 300.0, bars[0].Height)
	assert.Equal(t, 150.0, bars[1].Height)
	assert.Equal(t, 5.0, bars[2].Height)
	assert.Greater(t, bars[0].Height, bars[1].Height)
	assert.Greater(t, bars[1].Height, bars[2].Height)
	// y puts the bar bottom on the canvas bottom edge
	assert.Equal(t, 70.0, bars[0].Y)
	assert.Equal(t, 365.0, bars[2].Y)
}

func TestLayoutBars_AllZeroAmountsFlatBaseline(t *testing.T) {
	bars := LayoutBars(points(0, 0, 0), 300, 370)

	require.Len(t, bars, 3)
	for _, bar := range bars {
		assert.Equal(t, 0.0, bar.Height)
		assert.Equal(t, 370.0, bar.Y)
	}
}

func TestLayoutBars_ColorIndexCycles(t *testing.T) {
	values := points(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	bars := LayoutBars(values, 1000, 300)

	require.Len(t, bars, 10)
	assert.Equal(t, 0, bars[8].ColorIndex)
	assert.Equal(t, 1, bars[9].ColorIndex)
}

func TestLayoutLine_Empty(t *testing.T) {
	line, labels := LayoutLine(nil, 400, 300)
	assert.Empty(t, line)
	assert.Empty(t, labels)
}

func TestLayoutLine_EvenStepSpacing(t *testing.T) {
	line, labels := LayoutLine(points(10, 20, 30, 40, 50, 60), 500, 370)

	require.Len(t, line, 6)
	require.Len(t, labels, 6)
	for i, point := range line {
		assert.Equal(t, float64(i)*100, point.X)
	}
	assert.Equal(t, 500.0, line[5].X)
	// max value touches the top of the drawable area
	assert.Equal(t, 70.0, line[5].Y)
	// half the max sits halfway down the drawable area
	assert.Equal(t, 220.0, line[2].Y)
}

func TestLayoutLine_SinglePoint(t *testing.T) {
	line, labels := LayoutLine(points(42), 400, 300)

	require.Len(t, line, 1)
	assert.Equal(t, 0.0, line[0].X)
	require.Len(t, labels, 1)
}

func TestLayoutLine_AllZeroAmountsProducesNothing(t *testing.T) {
	// unlike bars, an all-zero series is not drawn at all
	line, labels := LayoutLine(points(0, 0, 0), 400, 300)

	assert.Empty(t, line)
	assert.Empty(t, labels)
}

func TestLayoutLine_LabelRotationHint(t *testing.T) {
	_, labels := LayoutLine(points(10, 20), 400, 300)

	require.Len(t, labels, 2)
	for _, label := range labels {
		assert.Equal(t, -45.0, label.Rotation)
		assert.Equal(t, 300.0, label.Y)
	}
}
