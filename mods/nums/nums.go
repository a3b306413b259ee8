package nums

import (
	"math"
	"strconv"
)

// ToRad converts the given angle in degrees to radians.
func ToRad(deg float64) float64 {
	return deg / 180.0 * math.Pi
}

// ToDeg converts the given angle in radians to degrees.
func ToDeg(rad float64) float64 {
	return rad / math.Pi * 180.0
}

// Stringify returns the locale independent representation of x rounded to dec decimals.
func Stringify(x float64, dec int) string {
	p := math.Pow(10, float64(dec))
	return strconv.FormatFloat(math.Round(x*p)/p, 'f', -1, 64)
}
