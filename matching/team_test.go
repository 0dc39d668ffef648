package matching

import (
	"testing"

	"github.com/campusmatch/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateTeamSkills_Counts(t *testing.T) {
	got := AggregateTeamSkills([][]string{
		{"A", "B"},
		{"B", "C"},
	})

	require.Len(t, got, 3)
	assert.Equal(t, SkillCount{Skill: "B", Count: 2}, got[0])
	assert.ElementsMatch(t, []SkillCount{
		{Skill: "A", Count: 1},
		{Skill: "B", Count: 2},
		{Skill: "C", Count: 1},
	}, got)
}

func TestAggregateTeamSkills_MemberCountsOnce(t *testing.T) {
	got := AggregateTeamSkills([][]string{
		{"Python", "python", " PYTHON"},
		{"Python"},
	})

	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Count, "a member holds a skill at most once")
}

func TestAggregateTeamSkills_Empty(t *testing.T) {
	assert.Empty(t, AggregateTeamSkills(nil))
	assert.Empty(t, AggregateTeamSkills([][]string{{}, {}}))
}

func TestRankProjectsForTeam_WeightedSplit(t *testing.T) {
	projects := []models.Project{
		{
			Title:          "Data Pipeline",
			RequiredSkills: []string{"Python", "SQL", "Java"},
			TeamSizeMin:    2,
			TeamSizeMax:    4,
		},
	}

	got := RankProjectsForTeam([]string{"Python", "SQL"}, 3, projects)
	require.Len(t, got, 1)

	// 70 * 2/3 required, nothing preferred: rounds to 47.
	assert.Equal(t, 47, got[0].MatchScore)
	assert.ElementsMatch(t, []string{"Python", "SQL"}, got[0].MatchedRequired)
	assert.Equal(t, []string{"Java"}, got[0].MissingRequired)
	assert.Empty(t, got[0].MatchedPreferred)
	assert.True(t, got[0].SizeCompatible)
}

func TestRankProjectsForTeam_SizeCompatibility(t *testing.T) {
	projects := []models.Project{
		{Title: "Bounded", RequiredSkills: []string{"Go"}, TeamSizeMin: 2, TeamSizeMax: 4},
	}

	within := RankProjectsForTeam([]string{"Go"}, 3, projects)
	require.Len(t, within, 1)
	assert.True(t, within[0].SizeCompatible)

	over := RankProjectsForTeam([]string{"Go"}, 5, projects)
	require.Len(t, over, 1)
	assert.False(t, over[0].SizeCompatible)
}

func TestRankProjectsForTeam_SubstringPolicy(t *testing.T) {
	// The team path deliberately accepts substring containment.
	projects := []models.Project{
		{Title: "Backend", RequiredSkills: []string{"Java"}},
	}

	got := RankProjectsForTeam([]string{"JavaScript"}, 1, projects)
	require.Len(t, got, 1)
	assert.Equal(t, 70, got[0].MatchScore)
	assert.Equal(t, []string{"Java"}, got[0].MatchedRequired)
}

func TestRankProjectsForTeam_NoRequiredSkillsFlatFifty(t *testing.T) {
	projects := []models.Project{
		{Title: "Open Ended", PreferredSkills: []string{"Go", "Rust"}},
	}

	got := RankProjectsForTeam([]string{"Go"}, 2, projects)
	require.Len(t, got, 1)
	// Flat 50 for the required portion plus 30 * 1/2 preferred.
	assert.Equal(t, 65, got[0].MatchScore)
}

func TestRankProjectsForTeam_Cutoff(t *testing.T) {
	projects := []models.Project{
		{Title: "Out of Reach", RequiredSkills: []string{"Haskell", "OCaml", "Prolog"}},
	}

	got := RankProjectsForTeam([]string{"Python"}, 2, projects)
	assert.Empty(t, got, "scores below 30 are filtered out")
}

func TestRankProjectsForTeam_SortedDescending(t *testing.T) {
	projects := []models.Project{
		{Title: "Partial", RequiredSkills: []string{"Python", "Rust"}},
		{Title: "Full", RequiredSkills: []string{"Python"}},
	}

	got := RankProjectsForTeam([]string{"Python"}, 2, projects)
	require.Len(t, got, 2)
	assert.Equal(t, "Full", got[0].Project.Title)
	assert.Equal(t, 70, got[0].MatchScore)
	assert.Equal(t, 35, got[1].MatchScore)
}
