package inventory

import "math"

// ClampInt sanea una cantidad numérica: redondea al entero más cercano (mitades hacia +Inf)
// y devuelve 0 si el valor no es finito. Los negativos se conservan.
func ClampInt(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	r := math.Floor(v + 0.5)
	if r > math.MaxInt32 || r < math.MinInt32 {
		return 0
	}
	return int(r)
}
