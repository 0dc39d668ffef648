package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "python", Normalize("  Python "))
	assert.Equal(t, "react native", Normalize("React Native"))
	assert.Equal(t, "", Normalize("   "))
}

func TestMatches_ExactPolicy(t *testing.T) {
	assert.True(t, Matches(PolicyExact, "Python", "python"))
	assert.True(t, Matches(PolicyExact, " SQL ", "sql"))
	assert.False(t, Matches(PolicyExact, "Java", "JavaScript"))
	assert.False(t, Matches(PolicyExact, "", "python"))
}

func TestMatches_SubstringPolicy(t *testing.T) {
	// Substring containment is accepted in either direction.
	assert.True(t, Matches(PolicySubstring, "JavaScript", "Java"))
	assert.True(t, Matches(PolicySubstring, "SQL", "PostgreSQL"))
	assert.False(t, Matches(PolicySubstring, "Go", "Rust"))

	// Blank names never match, even though "" is a substring of everything.
	assert.False(t, Matches(PolicySubstring, "", "Python"))
	assert.False(t, Matches(PolicySubstring, "Python", "  "))
}

func TestScore_SelfMatchIsFull(t *testing.T) {
	skills := []string{"Python", "React", "SQL"}
	assert.Equal(t, 100, Score(PolicyExact, skills, skills))
	assert.Equal(t, 100, Score(PolicySubstring, skills, skills))
}

func TestScore_InRange(t *testing.T) {
	cases := []struct {
		name   string
		owned  []string
		target []string
	}{
		{"disjoint", []string{"Go"}, []string{"Rust", "C++"}},
		{"partial", []string{"Python"}, []string{"Python", "Django"}},
		{"empty owned", nil, []string{"Python"}},
		{"duplicated target", []string{"Python"}, []string{"Python", "python", "PYTHON"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Score(PolicyExact, tc.owned, tc.target)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}

func TestScore_HalfMatchRounds(t *testing.T) {
	// One of two required skills matched in the required-only formulation.
	got := Score(PolicyExact, []string{"Python", "React"}, []string{"Python", "Django"})
	assert.Equal(t, 50, got)
}

func TestScore_EmptyTargetIsFullMatch(t *testing.T) {
	assert.Equal(t, 100, Score(PolicyExact, []string{"Python"}, nil))
	assert.Equal(t, 100, Score(PolicyExact, nil, []string{}))
}

func TestScore_Idempotent(t *testing.T) {
	owned := []string{"Python", "SQL"}
	target := []string{"Python", "Java", "SQL"}
	first := Score(PolicySubstring, owned, target)
	second := Score(PolicySubstring, owned, target)
	assert.Equal(t, first, second)
}

func TestMatchedAndMissingSkills(t *testing.T) {
	owned := []string{"Python", "React"}
	target := []string{"Python", "Django", "React"}

	matched := MatchedSkills(PolicyExact, owned, target)
	require.Len(t, matched, 2)
	assert.Equal(t, []string{"Python", "React"}, matched)

	missing := MissingSkills(PolicyExact, owned, target)
	assert.Equal(t, []string{"Django"}, missing)
}

func TestDedupe(t *testing.T) {
	got := Dedupe([]string{"Python", " python", "SQL", "", "PYTHON "})
	assert.Equal(t, []string{"Python", "SQL"}, got)
}

func TestSkillSetHash(t *testing.T) {
	a := SkillSetHash([]string{"Python", "SQL"})
	b := SkillSetHash([]string{"sql", " PYTHON "})
	assert.Equal(t, a, b, "hash should ignore order, case and whitespace")

	c := SkillSetHash([]string{"Python", "SQL", "Go"})
	assert.NotEqual(t, a, c, "adding a skill should change the hash")
}
