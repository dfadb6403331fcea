package chart

import (
	"github.com/shopspring/decimal"
)

// DataPoint is a single labelled value handed to the layout engine.
// Order matters: bar positions, line positions and bar colors all
// derive from the index of the point in the input slice.
type DataPoint struct {
	Label  string
	Amount decimal.Decimal
}

// BarGeometry describes one bar in canvas coordinates (origin top-left).
type BarGeometry struct {
	X          float64
	Y          float64
	Width      float64
	Height     float64
	Label      string
	ColorIndex int
}

// Point is a vertex of a polyline in canvas coordinates.
type Point struct {
	X float64
	Y float64
}

// LabelPosition places an axis label, with a rotation hint in degrees.
// Renderers without rotation support may ignore the hint.
type LabelPosition struct {
	X        float64
	Y        float64
	Text     string
	Rotation float64
}
