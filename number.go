package valueschema

import (
	"math"
	"regexp"
	"strconv"
)

// Optional minus, digits, at most one decimal point.
var numberPattern = regexp.MustCompile(`^-?\d*\.?\d*$`)

type numberValidator struct {
	text     textParams
	factor   float64 // 10^decimal places; 1 for integers
	minValue float64 // already rounded with factor
	maxValue float64
}

func (n numberValidator) validate(v Value) Result {
	s, err := n.text.check(v)
	if err != nil {
		return Result{Err: err}
	}
	f, perr := strconv.ParseFloat(s, 64)
	if perr != nil || math.IsInf(f, 0) {
		return fail(n.text.invalid)
	}
	f = roundTo(f, n.factor)
	if f < n.minValue {
		return fail(CodeMinValue, formatNumber(n.minValue))
	}
	if f > n.maxValue {
		return fail(CodeMaxValue, formatNumber(n.maxValue))
	}
	return accept(Number(f))
}

// roundTo rounds half away from zero at the resolution 1/factor.
func roundTo(f, factor float64) float64 {
	r := math.Round(f*factor) / factor
	if r == 0 {
		return 0 // drop the sign of -0
	}
	return r
}
