package chart

import (
	"github.com/shopspring/decimal"
)

const (
	// labelReserve is the vertical margin kept free for axis labels.
	labelReserve = 70.0
	// minBarHeight keeps zero and near-zero bars visible.
	minBarHeight = 5.0
	// labelRotation is the rotation hint applied to line chart labels.
	labelRotation = -45.0
)

// LayoutBars maps values onto bar geometry for a canvas of the given size.
// Each bar occupies half of its slot, leaving a gap of the same width.
// Bars never collapse below minBarHeight, except when every value is zero:
// an all-zero series renders as a flat baseline of zero-height bars.
// Colors cycle by position, not by label identity, so reordering the input
// reassigns colors.
func LayoutBars(values []DataPoint, canvasWidth, canvasHeight float64) []BarGeometry {
	if len(values) == 0 {
		return []BarGeometry{}
	}

	maxAmount := maxAmountOf(values)
	barWidth := canvasWidth / (float64(len(values)) * 2)
	drawableHeight := canvasHeight - labelReserve

	bars := make([]BarGeometry, 0, len(values))
	for i, value := range values {
		height := 0.0
		if maxAmount.IsPositive() {
			ratio, _ := value.Amount.Div(maxAmount).Float64()
			height = ratio * drawableHeight
			if height < minBarHeight {
				height = minBarHeight
			}
		}
		bars = append(bars, BarGeometry{
			X:          float64(i) * barWidth * 2,
			Y:          canvasHeight - height,
			Width:      barWidth,
			Height:     height,
			Label:      value.Label,
			ColorIndex: i % len(palette),
		})
	}
	return bars
}

// LayoutLine maps values onto polyline points plus label positions.
// A series whose maximum is zero produces no points at all; this differs
// from LayoutBars, which draws a flat baseline for the same input.
func LayoutLine(values []DataPoint, canvasWidth, canvasHeight float64) ([]Point, []LabelPosition) {
	if len(values) == 0 {
		return []Point{}, []LabelPosition{}
	}

	maxAmount := maxAmountOf(values)
	if !maxAmount.IsPositive() {
		return []Point{}, []LabelPosition{}
	}

	// A single point has no segment to space; the full width acts as the step.
	step := canvasWidth
	if len(values) > 1 {
		step = canvasWidth / float64(len(values)-1)
	}
	drawableHeight := canvasHeight - labelReserve

	points := make([]Point, 0, len(values))
	labels := make([]LabelPosition, 0, len(values))
	for i, value := range values {
		ratio, _ := value.Amount.Div(maxAmount).Float64()
		x := float64(i) * step
		points = append(points, Point{
			X: x,
			Y: canvasHeight - ratio*drawableHeight,
		})
		labels = append(labels, LabelPosition{
			X:        x,
			Y:        canvasHeight,
			Text:     value.Label,
			Rotation: labelRotation,
		})
	}
	return points, labels
}

func maxAmountOf(values []DataPoint) decimal.Decimal {
	maxAmount := decimal.Zero
	for _, value := range values {
		if value.Amount.GreaterThan(maxAmount) {
			maxAmount = value.Amount
		}
	}
	return maxAmount
}
