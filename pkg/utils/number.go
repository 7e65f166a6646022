package utils

import "math"

// RoundWithTwoDecimalPlace arredonda para duas casas decimais (metade para longe de zero)
func RoundWithTwoDecimalPlace(f float64) float64 {
	return RoundTo(f, 2)
}

func RoundTo(f float64, places int) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	pow := math.Pow(10, float64(places))
	return math.Round(f*pow) / pow
}
