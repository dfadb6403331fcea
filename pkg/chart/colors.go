package chart

// Color is a display color in #rrggbb hex notation.
type Color string

const (
	ColorGreen  Color = "#43a047"
	ColorYellow Color = "#fdd835"
	ColorRed    Color = "#e53935"
)

// Band classifies a budget progress ratio.
type Band string

const (
	BandHealthy    Band = "healthy"
	BandWarning    Band = "warning"
	BandOverBudget Band = "overBudget"
)

// palette holds the colors cycled through by bar position.
var palette = []Color{
	"#42a5f5",
	"#66bb6a",
	"#ffa726",
	"#ab47bc",
	"#26c6da",
	"#ef5350",
	"#d4e157",
	"#8d6e63",
}

// PaletteColor resolves a ColorIndex produced by LayoutBars.
func PaletteColor(index int) Color {
	return palette[index%len(palette)]
}

// BandFor classifies a progress ratio (0-100 percent) into a severity band.
func BandFor(ratio float64) Band {
	switch {
	case ratio >= 100:
		return BandOverBudget
	case ratio >= 80:
		return BandWarning
	default:
		return BandHealthy
	}
}

// BandColor maps a progress ratio to the color of its severity band.
func BandColor(ratio float64) Color {
	switch BandFor(ratio) {
	case BandOverBudget:
		return ColorRed
	case BandWarning:
		return ColorYellow
	default:
		return ColorGreen
	}
}

// IncomeColor is the list-rendering color for a transaction row.
func IncomeColor(isIncome bool) Color {
	if isIncome {
		return ColorGreen
	}
	return ColorRed
}
