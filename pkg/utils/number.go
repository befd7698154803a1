package utils

import (
	"fmt"
	"math"
)

const microsPerUnit = 1_000_000

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// MicrosToCurrency converte micro-unidades (1.000.000 = 1 unidade da moeda)
// para o valor decimal. Deve ser chamada uma única vez, na borda do integrator.
func MicrosToCurrency(micros int64) float64 {
	return float64(micros) / microsPerUnit
}

// MicrosToDecimalString formata micro-unidades como decimal exato com 6 casas,
// sem passar por ponto flutuante. É o valor gravado em colunas NUMERIC.
func MicrosToDecimalString(micros int64) string {
	sign := ""
	if micros < 0 {
		sign = "-"
		micros = -micros
	}

	return fmt.Sprintf("%s%d.%06d", sign, micros/microsPerUnit, micros%microsPerUnit)
}
