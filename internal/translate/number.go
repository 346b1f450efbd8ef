package translate

import (
	"math"
	"strconv"
	"strings"
)

// formatDouble formats f the way Double.toString does: plain decimal for
// magnitudes in [1e-3, 1e7), computerized scientific notation otherwise, and
// always at least one fractional digit.
func formatDouble(f float64) string {
	return formatJavaFloat(f, 64)
}

// formatFloat is formatDouble for single precision (Float.toString).
func formatFloat(f float32) string {
	return formatJavaFloat(float64(f), 32)
}

func formatJavaFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}

	abs := math.Abs(f)
	if abs >= 1e-3 && abs < 1e7 {
		s := strconv.FormatFloat(f, 'f', -1, bitSize)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	// strconv gives "1.5E+10" / "1E-05"; Java wants "1.5E10" / "1.0E-5"
	s := strconv.FormatFloat(f, 'E', -1, bitSize)
	mantissa, exp, _ := strings.Cut(s, "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	n, _ := strconv.Atoi(exp)
	return mantissa + "E" + strconv.Itoa(n)
}
