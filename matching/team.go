package matching

import (
	"math"
	"sort"

	"github.com/campusmatch/backend/models"
)

// Team ranking weights: required skills carry 70 points, preferred 30.
// A project listing no required skills gets a flat 50 for the required
// portion rather than a free 70.
const (
	teamRequiredWeight  = 70.0
	teamPreferredWeight = 30.0
	teamNoRequiredScore = 50.0
	teamScoreCutoff     = 30
)

// SkillCount is one distinct team skill with the number of members holding it.
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// AggregateTeamSkills unions all members' skill sets into one team profile
// with per-skill member counts, sorted descending by count. A member
// contributes at most once per skill. Order among equal counts follows
// member-fetch order and is unspecified.
func AggregateTeamSkills(memberSkills [][]string) []SkillCount {
	counts := make(map[string]int)
	spelling := make(map[string]string)
	var order []string

	for _, skills := range memberSkills {
		for _, s := range Dedupe(skills) {
			key := Normalize(s)
			if counts[key] == 0 {
				spelling[key] = s
				order = append(order, key)
			}
			counts[key]++
		}
	}

	out := make([]SkillCount, 0, len(order))
	for _, key := range order {
		out = append(out, SkillCount{Skill: spelling[key], Count: counts[key]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// TeamProjectMatch is one project scored against a team's aggregated skills.
type TeamProjectMatch struct {
	Project          models.Project `json:"project"`
	MatchScore       int            `json:"match_score"`
	MatchedRequired  []string       `json:"matched_required"`
	MatchedPreferred []string       `json:"matched_preferred"`
	MissingRequired  []string       `json:"missing_required"`
	SizeCompatible   bool           `json:"size_compatible"`
}

// RankProjectsForTeam scores each project against a team skill profile
// using a 70/30 required/preferred split, annotates team-size
// compatibility, filters scores below 30 and sorts descending.
//
// Skill comparison uses PolicySubstring, deliberately looser than the
// individual recommendation path.
func RankProjectsForTeam(teamSkills []string, teamSize int, projects []models.Project) []TeamProjectMatch {
	teamSkills = Dedupe(teamSkills)

	out := make([]TeamProjectMatch, 0, len(projects))
	for _, project := range projects {
		required := Dedupe(project.RequiredSkills)
		preferred := Dedupe(project.PreferredSkills)

		matchedRequired := MatchedSkills(PolicySubstring, teamSkills, required)
		missingRequired := MissingSkills(PolicySubstring, teamSkills, required)
		matchedPreferred := MatchedSkills(PolicySubstring, teamSkills, preferred)

		requiredScore := teamNoRequiredScore
		if len(required) > 0 {
			requiredScore = teamRequiredWeight * float64(len(matchedRequired)) / float64(len(required))
		}
		preferredScore := 0.0
		if len(preferred) > 0 {
			preferredScore = teamPreferredWeight * float64(len(matchedPreferred)) / float64(len(preferred))
		}

		total := int(math.Round(requiredScore + preferredScore))
		if total < teamScoreCutoff {
			continue
		}

		out = append(out, TeamProjectMatch{
			Project:          project,
			MatchScore:       total,
			MatchedRequired:  matchedRequired,
			MatchedPreferred: matchedPreferred,
			MissingRequired:  missingRequired,
			SizeCompatible:   teamSize >= project.TeamSizeMin && teamSize <= project.TeamSizeMax,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].MatchScore != out[j].MatchScore {
			return out[i].MatchScore > out[j].MatchScore
		}
		return out[i].Project.Title < out[j].Project.Title
	})
	return out
}
