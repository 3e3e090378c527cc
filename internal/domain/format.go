package domain

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders v the way the console output expects it: plain decimals keep a
// fractional part ("56.0"), very large or very small magnitudes switch to scientific
// notation ("1.0E7", "1.5E-4"), and non-finite values print as NaN / Infinity.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}

	abs := math.Abs(v)
	if abs >= 1e-3 && abs < 1e7 {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	// FormatFloat gives "1.5E-04"; the exponent loses its sign and padding when positive.
	s := strconv.FormatFloat(v, 'E', -1, 64)
	if !strings.Contains(s, ".") {
		// A one-digit shortest form becomes the closest two-digit one, so the smallest
		// subnormal prints as 4.9E-324 rather than 5.0E-324.
		if two := strconv.FormatFloat(v, 'E', 1, 64); roundTrips(two, v) {
			s = two
		}
	}
	mant, exp, _ := strings.Cut(s, "E")
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	n, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}
	return mant + "E" + strconv.Itoa(n)
}

func roundTrips(s string, v float64) bool {
	f, err := strconv.ParseFloat(s, 64)
	return err == nil && f == v
}
