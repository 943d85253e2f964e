package eligibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeQualification_KnownVariants(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"STPM", "stpm"},
		{"Sijil Tinggi Persekolahan Malaysia", "stpm"},
		{"Higher School Certificate", "stpm"},
		{"A-Level", "a-level"},
		{"a level", "a-level"},
		{"GCE A-Level", "a-level"},
		{"Advanced Level", "a-level"},
		{"UEC", "uec"},
		{"Unified Examination Certificate", "uec"},
		{"Diploma", "diploma"},
		{"Diploma Level", "diploma"},
		{"Foundation", "foundation"},
		{"Foundation Studies", "foundation"},
		{"Pre-University", "foundation"},
		{"Matriculation", "matriculation"},
		{"Matrikulasi", "matriculation"},
		{"SPM", "spm"},
		{"Sijil Pelajaran Malaysia", "spm"},
		{"Malaysian Certificate of Education", "spm"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeQualification(tt.input))
		})
	}
}

func TestNormalizeQualification_SubstringMatch(t *testing.T) {
	// A variant embedded in a longer phrase still matches
	assert.Equal(t, "stpm", NormalizeQualification("STPM with distinction"))
	assert.Equal(t, "diploma", NormalizeQualification("Diploma in Engineering"))
}

func TestNormalizeQualification_UnknownFallsThrough(t *testing.T) {
	// Unknown input comes back trimmed and lower-cased, not as an error
	assert.Equal(t, "international baccalaureate", NormalizeQualification("  International Baccalaureate  "))
	assert.Equal(t, "", NormalizeQualification("   "))
}

func TestNormalizeQualification_FirstMatchWins(t *testing.T) {
	// "stpm" is declared before "spm"; input containing both resolves to stpm
	assert.Equal(t, "stpm", NormalizeQualification("stpm and spm"))
}
