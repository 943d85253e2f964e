package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLinks() map[string]ProgramLinks {
	entries := []ProgramLinks{
		{ProgramID: 1, ProgramName: "Bachelor of Computer Science"},
		{ProgramID: 2, ProgramName: "Bachelor of Business Administration"},
		{ProgramID: 3, ProgramName: "Diploma in Accounting"},
	}
	links := make(map[string]ProgramLinks, len(entries))
	for _, e := range entries {
		links[NormalizeProgramName(e.ProgramName)] = e
	}
	return links
}

func TestNormalizeProgramName(t *testing.T) {
	assert.Equal(t, "bachelor of computer science", NormalizeProgramName("  Bachelor   of  Computer Science "))
	assert.Equal(t, "diploma in accounting", NormalizeProgramName("Diploma in Accounting"))
	assert.Equal(t, "", NormalizeProgramName("   "))
}

func TestFindProgramMatch(t *testing.T) {
	links := testLinks()

	// Exact normalized match
	match, ok := FindProgramMatch("bachelor of computer science", links)
	require.True(t, ok)
	assert.Equal(t, uint(1), match.ProgramID)

	// Query contained in a program name
	match, ok = FindProgramMatch("computer science", links)
	require.True(t, ok)
	assert.Equal(t, uint(1), match.ProgramID)

	// Program name contained in the query
	match, ok = FindProgramMatch("the Bachelor of Business Administration intake", links)
	require.True(t, ok)
	assert.Equal(t, uint(2), match.ProgramID)

	// Word-overlap fallback when neither side contains the other
	match, ok = FindProgramMatch("accounting diploma", links)
	require.True(t, ok)
	assert.Equal(t, uint(3), match.ProgramID)

	_, ok = FindProgramMatch("astrophysics", links)
	assert.False(t, ok)

	_, ok = FindProgramMatch("", links)
	assert.False(t, ok)
}

func TestFindProgramMatchAmbiguousQueryIsStable(t *testing.T) {
	// Both names contain the query, so containment alone cannot pick one;
	// sorted key order must make the winner repeatable
	entries := []ProgramLinks{
		{ProgramID: 1, ProgramName: "Bachelor of Science in Biology"},
		{ProgramID: 2, ProgramName: "Bachelor of Science in Chemistry"},
	}
	links := make(map[string]ProgramLinks, len(entries))
	for _, e := range entries {
		links[NormalizeProgramName(e.ProgramName)] = e
	}

	for i := 0; i < 200; i++ {
		match, ok := FindProgramMatch("bachelor of science", links)
		require.True(t, ok)
		assert.Equal(t, uint(1), match.ProgramID)
	}

	// Word-overlap ties resolve the same way: both keys share one
	// significant word with the query
	for i := 0; i < 200; i++ {
		match, ok := FindProgramMatch("science programme", links)
		require.True(t, ok)
		assert.Equal(t, uint(1), match.ProgramID)
	}
}

func TestLinkForInfoType(t *testing.T) {
	p := ProgramLinks{
		Requirements: "https://example.edu/admission/requirements?program_id=1",
		Deadlines:    "https://example.edu/admission/deadlines?program_id=1",
		Apply:        "https://example.edu/admission/application-form?program_id=1",
		Documents:    "https://example.edu/admission/document-checklist?program_id=1",
	}

	assert.Equal(t, p.Deadlines, p.LinkForInfoType("deadlines"))
	assert.Equal(t, p.Apply, p.LinkForInfoType("apply"))
	assert.Equal(t, p.Documents, p.LinkForInfoType("documents"))
	assert.Equal(t, p.Requirements, p.LinkForInfoType("requirements"))
	assert.Equal(t, p.Requirements, p.LinkForInfoType("anything else"))
}
