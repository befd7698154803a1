package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMicrosToCurrency(t *testing.T) {
	tests := []struct {
		name     string
		micros   int64
		expected float64
	}{
		{name: "Um e meio", micros: 1_500_000, expected: 1.50},
		{name: "Menor unidade", micros: 1, expected: 0.000001},
		{name: "Zero", micros: 0, expected: 0},
		{name: "Valor inteiro", micros: 10_000_000, expected: 10},
		{name: "Valor negativo", micros: -2_500_000, expected: -2.50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MicrosToCurrency(tt.micros))
		})
	}
}

func TestMicrosToDecimalString(t *testing.T) {
	tests := []struct {
		name     string
		micros   int64
		expected string
	}{
		{name: "Um e meio", micros: 1_500_000, expected: "1.500000"},
		{name: "Menor unidade", micros: 1, expected: "0.000001"},
		{name: "Zero", micros: 0, expected: "0.000000"},
		{name: "Valor negativo", micros: -1_500_000, expected: "-1.500000"},
		{name: "Valor grande sem perda de precisão", micros: 9_007_199_254_740_993, expected: "9007199254.740993"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MicrosToDecimalString(tt.micros))
		})
	}
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 1.23, RoundWithTwoDecimalPlace(1.2345))
	assert.Equal(t, 1.24, RoundWithTwoDecimalPlace(1.235))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
}
