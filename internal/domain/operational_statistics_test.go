package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitOperationalStatistics_RevenueIncrease(t *testing.T) {
	tests := []struct {
		name       string
		today      int
		weekBefore int
		expected   int
	}{
		{
			name:       "growth over week before",
			today:      160000,
			weekBefore: 100000,
			expected:   60,
		},
		{
			name:       "decline against week before",
			today:      80000,
			weekBefore: 100000,
			expected:   -20,
		},
		{
			name:       "zero base yields zero",
			today:      50000,
			weekBefore: 0,
			expected:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			statistics := &UnitOperationalStatistics{
				Today:                OperationalStatistics{Revenue: tt.today},
				WeekBeforeToThisTime: OperationalStatistics{Revenue: tt.weekBefore},
			}
			assert.Equal(t, tt.expected, statistics.RevenueIncrease())
		})
	}
}
