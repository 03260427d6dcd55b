package globals

import (
	"math"
	"math/bits"

	"ts2go/runtime-go/pkg/runtime"
)

// MaxOf returns the largest argument, or -Infinity for no arguments. NaN
// poisons the result.
func MaxOf(values ...float64) float64 {
	max := math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) {
			return math.NaN()
		}
		if v > max {
			max = v
		}
	}
	return max
}

// MinOf returns the smallest argument, or +Infinity for no arguments. NaN
// poisons the result.
func MinOf(values ...float64) float64 {
	min := math.Inf(1)
	for _, v := range values {
		if math.IsNaN(v) {
			return math.NaN()
		}
		if v < min {
			min = v
		}
	}
	return min
}

// Hypot returns the square root of the sum of squares of the arguments.
func Hypot(values ...float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// Imul multiplies as 32-bit integers with wrap-around.
func Imul(a, b int32) int32 {
	return int32(uint32(a) * uint32(b))
}

// Clz32 counts leading zero bits in the 32-bit representation.
func Clz32(x uint32) int {
	return bits.LeadingZeros32(x)
}

// IDiv divides exactly over integers. A zero divisor is a contract
// violation — exact arithmetic has no infinity to fall back to.
func IDiv(dividend, divisor int64) (int64, error) {
	if divisor == 0 {
		return 0, runtime.NewDivideByZeroError()
	}
	return dividend / divisor, nil
}

// IMod is the integer remainder companion to IDiv.
func IMod(dividend, divisor int64) (int64, error) {
	if divisor == 0 {
		return 0, runtime.NewDivideByZeroError()
	}
	return dividend % divisor, nil
}
