package matching

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/campusmatch/backend/models"
)

// Recommendation scoring constants. Every project carries the baseline, so
// no project ever scores below 20%; the cutoff then discards anything that
// earned nothing beyond a small difficulty bonus.
const (
	recommendationSkillWeight = 0.7
	recommendationBaseline    = 0.2
	recommendationCutoff      = 0.3
	maxRecommendations        = 6
)

// Recommendation pairs a project with its match score for one student.
type Recommendation struct {
	Project            models.Project `json:"project"`
	MatchScore         float64        `json:"match_score"`
	Reasoning          string         `json:"reasoning"`
	MatchingSkills     []string       `json:"matching_skills"`
	TotalProjectSkills int            `json:"total_project_skills"`
}

// RecommendProjects scores every project against a student's skill set and
// difficulty preference and returns the top matches, sorted descending by
// score, cut off below 30% and truncated to six entries.
//
// Skill comparison uses PolicyExact against the combined required+preferred
// skill union. A project with no listed skills keeps only the baseline plus
// any difficulty bonus, which leaves it below the cutoff.
func RecommendProjects(studentSkills []string, difficultyPreference string, projects []models.Project) []Recommendation {
	studentSkills = Dedupe(studentSkills)

	recs := make([]Recommendation, 0, len(projects))
	for _, project := range projects {
		union := Dedupe(append(append([]string{}, project.RequiredSkills...), project.PreferredSkills...))
		matched := MatchedSkills(PolicyExact, studentSkills, union)

		skillMatch := 0.0
		if len(union) > 0 {
			skillMatch = float64(len(matched)) / float64(len(union))
		}

		bonus := difficultyBonus(difficultyPreference, project.Difficulty)
		score := math.Min(1, skillMatch*recommendationSkillWeight+bonus+recommendationBaseline)
		if score <= recommendationCutoff {
			continue
		}

		recs = append(recs, Recommendation{
			Project:            project,
			MatchScore:         score,
			Reasoning:          buildReasoning(matched, len(union), bonus, project.Difficulty),
			MatchingSkills:     matched,
			TotalProjectSkills: len(union),
		})
	}

	// Ties broken by title so repeated runs return the same order.
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].MatchScore != recs[j].MatchScore {
			return recs[i].MatchScore > recs[j].MatchScore
		}
		return recs[i].Project.Title < recs[j].Project.Title
	})

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

// difficultyBonus rewards projects whose difficulty suits the student's
// stated preference.
//
//	beginner     → Intermediate  +0.1
//	intermediate → Intermediate  +0.2
//	advanced     → Advanced      +0.2
func difficultyBonus(preference, difficulty string) float64 {
	switch preference {
	case models.PreferenceBeginner:
		if difficulty == models.DifficultyIntermediate {
			return 0.1
		}
	case models.PreferenceIntermediate:
		if difficulty == models.DifficultyIntermediate {
			return 0.2
		}
	case models.PreferenceAdvanced:
		if difficulty == models.DifficultyAdvanced {
			return 0.2
		}
	}
	return 0
}

func buildReasoning(matched []string, totalSkills int, bonus float64, difficulty string) string {
	var b strings.Builder
	if len(matched) > 0 {
		fmt.Fprintf(&b, "Matches %d of %d project skills (%s)", len(matched), totalSkills, strings.Join(matched, ", "))
	} else {
		fmt.Fprintf(&b, "No direct skill overlap with the %d listed project skills", totalSkills)
	}
	if bonus > 0 {
		fmt.Fprintf(&b, "; %s difficulty suits your preference", strings.ToLower(difficulty))
	}
	b.WriteString(".")
	return b.String()
}
