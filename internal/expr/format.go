package expr

import (
	"math"
	"strconv"
)

// roundPlaces is the display precision: results are rounded to this many
// decimal places before rendering.
const roundPlaces = 1e10

// Format renders a computed value for the display: rounded to ten decimal
// places, integral results without a decimal point, everything else without
// trailing zeros.
func Format(value float64) string {
	rounded := value
	// Skip rounding once the value is too large for fractional digits to
	// survive the multiply anyway.
	if math.Abs(value) < 1e15 {
		rounded = math.Round(value*roundPlaces) / roundPlaces
	}

	if rounded == 0 {
		rounded = 0 // normalize -0
	}

	if rounded == math.Trunc(rounded) {
		return strconv.FormatFloat(rounded, 'f', 0, 64)
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
