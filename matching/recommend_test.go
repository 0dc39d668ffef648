package matching

import (
	"fmt"
	"testing"

	"github.com/campusmatch/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func project(title, difficulty string, required, preferred []string) models.Project {
	return models.Project{
		Title:           title,
		Difficulty:      difficulty,
		RequiredSkills:  required,
		PreferredSkills: preferred,
		Published:       true,
	}
}

func TestRecommendProjects_CombinedDenominator(t *testing.T) {
	projects := []models.Project{
		project("Web Dashboard", models.DifficultyBeginner, []string{"Python", "Django"}, []string{"React"}),
	}

	recs := RecommendProjects([]string{"Python", "React"}, "", projects)
	require.Len(t, recs, 1)

	// 2 of 3 skills matched across the required+preferred union:
	// 2/3 * 0.7 + 0.2 baseline.
	assert.InDelta(t, 2.0/3.0*0.7+0.2, recs[0].MatchScore, 1e-9)
	assert.ElementsMatch(t, []string{"Python", "React"}, recs[0].MatchingSkills)
	assert.Equal(t, 3, recs[0].TotalProjectSkills)
	assert.NotEmpty(t, recs[0].Reasoning)
}

func TestRecommendProjects_ExactPolicyOnly(t *testing.T) {
	// "Java" must not match "JavaScript" on the individual path.
	projects := []models.Project{
		project("Compilers", models.DifficultyAdvanced, []string{"Java"}, nil),
	}

	recs := RecommendProjects([]string{"JavaScript"}, "", projects)
	assert.Empty(t, recs, "substring overlap alone scores only the 0.2 baseline")
}

func TestRecommendProjects_DifficultyBonus(t *testing.T) {
	projects := []models.Project{
		project("Intermediate Build", models.DifficultyIntermediate, []string{"Go"}, nil),
	}

	// No skill overlap: score is baseline + bonus.
	beginner := RecommendProjects(nil, models.PreferenceBeginner, projects)
	assert.Empty(t, beginner, "0.2 + 0.1 does not clear the 0.3 cutoff")

	intermediate := RecommendProjects(nil, models.PreferenceIntermediate, projects)
	require.Len(t, intermediate, 1)
	assert.InDelta(t, 0.4, intermediate[0].MatchScore, 1e-9)

	advanced := RecommendProjects(nil, models.PreferenceAdvanced, projects)
	assert.Empty(t, advanced, "advanced preference earns no bonus on Intermediate")
}

func TestRecommendProjects_CutoffAndCap(t *testing.T) {
	var projects []models.Project
	for i := 0; i < 9; i++ {
		projects = append(projects, project(fmt.Sprintf("Project %d", i), models.DifficultyBeginner, []string{"Python"}, nil))
	}
	// Zero-overlap project sits at the 0.2 baseline and must be dropped.
	projects = append(projects, project("Unrelated", models.DifficultyBeginner, []string{"Haskell"}, nil))

	recs := RecommendProjects([]string{"Python"}, "", projects)
	require.Len(t, recs, 6, "never more than six recommendations")
	for _, rec := range recs {
		assert.Greater(t, rec.MatchScore, 0.3)
		assert.NotEqual(t, "Unrelated", rec.Project.Title)
	}
}

func TestRecommendProjects_ScoreClampedToOne(t *testing.T) {
	projects := []models.Project{
		project("Perfect Fit", models.DifficultyIntermediate, []string{"Python"}, nil),
	}

	recs := RecommendProjects([]string{"Python"}, models.PreferenceIntermediate, projects)
	require.Len(t, recs, 1)
	// 1.0*0.7 + 0.2 bonus + 0.2 baseline would exceed 1.
	assert.Equal(t, 1.0, recs[0].MatchScore)
}

func TestRecommendProjects_DeterministicOrder(t *testing.T) {
	projects := []models.Project{
		project("Beta", models.DifficultyBeginner, []string{"Python"}, nil),
		project("Alpha", models.DifficultyBeginner, []string{"Python"}, nil),
	}

	first := RecommendProjects([]string{"Python"}, "", projects)
	second := RecommendProjects([]string{"Python"}, "", projects)
	require.Len(t, first, 2)
	assert.Equal(t, "Alpha", first[0].Project.Title, "equal scores ordered by title")
	assert.Equal(t, first, second)
}

func TestRecommendProjects_NoProjectSkills(t *testing.T) {
	projects := []models.Project{
		project("Blank Slate", models.DifficultyBeginner, nil, nil),
	}

	recs := RecommendProjects([]string{"Python"}, "", projects)
	assert.Empty(t, recs, "a project listing no skills keeps only the baseline")
}
