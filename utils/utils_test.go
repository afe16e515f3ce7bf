package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	testCases := []struct {
		name      string
		v, lo, hi float64
		expected  float64
	}{
		{"Inside", 5, 0, 10, 5},
		{"Below", -3, 0, 10, 0},
		{"Above", 12, 0, 10, 10},
		{"OnLowerEdge", 0, 0, 10, 0},
		{"OnUpperEdge", 10, 0, 10, 10},
		{"InvertedRangeFavoursLower", 5, 4, 2, 4},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Clamp(tc.v, tc.lo, tc.hi))
		})
	}
}
