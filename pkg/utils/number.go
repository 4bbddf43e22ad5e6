package utils

import "github.com/shopspring/decimal"

// RoundToCents arredonda para duas casas decimais, metade para longe do zero
func RoundToCents(f float64) float64 {
	v, _ := decimal.NewFromFloat(f).Round(2).Float64()
	return v
}
