package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentIncrease(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		expected int
	}{
		{
			name:     "growth",
			current:  160,
			previous: 100,
			expected: 60,
		},
		{
			name:     "decline",
			current:  80,
			previous: 100,
			expected: -20,
		},
		{
			name:     "no change",
			current:  100,
			previous: 100,
			expected: 0,
		},
		{
			name:     "zero base yields zero instead of dividing",
			current:  5000,
			previous: 0,
			expected: 0,
		},
		{
			name:     "result is rounded",
			current:  101,
			previous: 150,
			expected: -33,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PercentIncrease(tt.current, tt.previous))
		})
	}
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 3.14, RoundWithTwoDecimalPlace(3.14159))
	assert.Equal(t, 2.68, RoundWithTwoDecimalPlace(2.678))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
}
