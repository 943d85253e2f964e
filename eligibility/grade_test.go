package eligibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseGrade_Numeric(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"3.67", 3.67},
		{"4.0", 4.0},
		{"0", 0.0},
		{"CGPA 3.5", 3.5},
		{"2", 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			value, ok := ParseGrade(tt.input)
			assert.True(t, ok)
			assert.InDelta(t, tt.expected, value, 0.001)
		})
	}
}

func TestParseGrade_LetterGrades(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"A+", 4.0},
		{"A", 4.0},
		{"a-", 3.67},
		{"B+", 3.33},
		{"b", 3.0},
		{"C-", 1.67},
		{"D", 1.0},
		{"E", 0.5},
		{"F", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			value, ok := ParseGrade(tt.input)
			assert.True(t, ok)
			assert.InDelta(t, tt.expected, value, 0.001)
		})
	}
}

func TestParseGrade_EmbeddedLetterToken(t *testing.T) {
	value, ok := ParseGrade("B+.")
	assert.True(t, ok)
	assert.InDelta(t, 3.33, value, 0.001)
}

func TestParseGrade_NumericTakesPriority(t *testing.T) {
	// A decimal in the input wins over any letter token
	value, ok := ParseGrade("B 3.0")
	assert.True(t, ok)
	assert.InDelta(t, 3.0, value, 0.001)
}

func TestParseGrade_NoMatch(t *testing.T) {
	tests := []string{"", "   ", "XYZ", "???"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, ok := ParseGrade(input)
			assert.False(t, ok)
		})
	}
}

func TestParseGrade_OutOfRangeNumericRejected(t *testing.T) {
	// Percentages and other out-of-scale numbers are a parse failure, not a
	// valid grade
	_, ok := ParseGrade("85")
	assert.False(t, ok)
}
