package ruler

// Ruler measurements, in drawing units unless named otherwise.
const (
	// LengthMM is the measured span of the ruler, 15 cm.
	LengthMM = 150

	// Margin is the blank space left of mm 0 and right of mm 150.
	Margin = 20.0

	// ContentHeight is the fixed height of the drawable area.
	ContentHeight = 90.0

	baselineFromBottom = 28.0

	tickShort  = 10.0
	tickMedium = 18.0
	tickTall   = 28.0

	labelGap = 4.0 // between the baseline and the label top
)

// TickTier classifies a millimeter mark by divisibility, which sets the
// rendered tick height.
type TickTier int

const (
	TierMinor TickTier = iota
	TierMedium
	TierMajor
)

// TierOf returns the tier of the mark at mm: major every full
// centimeter, medium every half centimeter, minor otherwise.
func TierOf(mm int) TickTier {
	switch {
	case mm%10 == 0:
		return TierMajor
	case mm%5 == 0:
		return TierMedium
	default:
		return TierMinor
	}
}

// Height returns the tick height of the tier.
func (t TickTier) Height() float64 {
	switch t {
	case TierMajor:
		return tickTall
	case TierMedium:
		return tickMedium
	default:
		return tickShort
	}
}

// Geometry maps ruler positions to drawing coordinates. It is a pure
// function of the units-per-millimeter scale, rebuilt on every draw and
// never cached.
type Geometry struct {
	UnitsPerMM float64
}

// ContentWidth returns the drawable width that fits the full ruler plus
// both margins.
func (g Geometry) ContentWidth() float64 {
	return 2*Margin + LengthMM*g.UnitsPerMM
}

// TickX returns the x coordinate of the mark at mm.
func (g Geometry) TickX(mm int) float64 {
	return Margin + float64(mm)*g.UnitsPerMM
}

// LabelX returns the x coordinate a centimeter label is centered on.
func (g Geometry) LabelX(cm int) float64 {
	return g.TickX(cm * 10)
}

// BaselineY returns the y coordinate of the baseline, measured from the
// top edge like image coordinates.
func (g Geometry) BaselineY() float64 {
	return ContentHeight - baselineFromBottom
}
