package calculator

import (
	"errors"
	"math"
	"strconv"
)

// ErrInsufficientData is returned when a calculation needs at least one point.
var ErrInsufficientData = errors.New("insufficient data")

// Round2 rounds the exact binary value of v to 2 decimal places, halves away
// from zero. Scaling by 100 first would round twice and can move a value that
// sits just below a half cent up to the next cent.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	// Only multiples of 1/8 can sit exactly on a half cent. Their value has at
	// most 3 decimals, so thousandths are an exact integer.
	if j := v * 8; j == math.Trunc(j) && math.Abs(j) < 1<<50 {
		milli := int64(j) * 125
		cents := (abs64(milli) + 5) / 10
		if milli < 0 {
			cents = -cents
		}
		return float64(cents) / 100
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return r
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
