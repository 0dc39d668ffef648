package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/campusmatch/backend/errs"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankRequestFixture(appCount int) RankRequest {
	req := RankRequest{
		ProjectID:      uuid.New(),
		ProjectTitle:   "Campus Analytics",
		RequiredSkills: []string{"Python", "SQL"},
		TeamSizeMin:    2,
		TeamSizeMax:    4,
	}
	for i := 0; i < appCount; i++ {
		req.Applications = append(req.Applications, ApplicationSummary{
			ApplicationID:   uuid.New(),
			ApplicantType:   "team",
			ApplicantName:   fmt.Sprintf("Team %d", i),
			TeamSize:        3,
			Skills:          []string{"Python"},
			MatchedRequired: []string{"Python"},
			MissingRequired: []string{"SQL"},
		})
	}
	return req
}

func rankingJSON(req RankRequest) string {
	var entries []string
	for _, app := range req.Applications {
		entries = append(entries, fmt.Sprintf(
			`{"application_id": %q, "suitability_score": 80, "strengths": ["good fit"], "concerns": []}`,
			app.ApplicationID))
	}
	return fmt.Sprintf(`{"best_application_id": %q, "summary": "Team 0 fits best.", "ranking": [%s]}`,
		req.Applications[0].ApplicationID, strings.Join(entries, ","))
}

func TestBuildRankingPrompt_IncludesEveryApplication(t *testing.T) {
	req := rankRequestFixture(3)

	prompt, err := buildRankingPrompt(req)
	require.NoError(t, err)

	for _, app := range req.Applications {
		assert.Contains(t, prompt, app.ApplicationID.String())
	}
	assert.Contains(t, prompt, "Campus Analytics")
	assert.Contains(t, prompt, "strict JSON")
}

func TestParseRankResult_Valid(t *testing.T) {
	req := rankRequestFixture(2)

	result, err := ParseRankResult(rankingJSON(req), req)
	require.NoError(t, err)
	assert.Equal(t, req.Applications[0].ApplicationID, result.BestApplicationID)
	assert.Len(t, result.Ranking, 2)
	assert.Equal(t, 80, result.Ranking[0].SuitabilityScore)
}

func TestParseRankResult_StripsMarkdownFences(t *testing.T) {
	req := rankRequestFixture(1)
	fenced := "```json\n" + rankingJSON(req) + "\n```"

	result, err := ParseRankResult(fenced, req)
	require.NoError(t, err)
	assert.Len(t, result.Ranking, 1)
}

func TestParseRankResult_RejectsInvalidJSON(t *testing.T) {
	req := rankRequestFixture(1)

	_, err := ParseRankResult("the best team is clearly Team 0", req)
	require.Error(t, err)
	assert.True(t, errs.IsMalformedRanking(err))
}

func TestParseRankResult_RejectsUnknownApplication(t *testing.T) {
	req := rankRequestFixture(1)
	bogus := fmt.Sprintf(
		`{"best_application_id": %q, "summary": "s", "ranking": [{"application_id": %q, "suitability_score": 50, "strengths": [], "concerns": []}]}`,
		req.Applications[0].ApplicationID, uuid.New())

	_, err := ParseRankResult(bogus, req)
	require.Error(t, err)
	assert.True(t, errs.IsMalformedRanking(err))
}

func TestParseRankResult_RejectsDuplicateEntries(t *testing.T) {
	req := rankRequestFixture(1)
	id := req.Applications[0].ApplicationID
	dup := fmt.Sprintf(
		`{"best_application_id": %q, "summary": "s", "ranking": [`+
			`{"application_id": %q, "suitability_score": 50, "strengths": [], "concerns": []},`+
			`{"application_id": %q, "suitability_score": 60, "strengths": [], "concerns": []}]}`,
		id, id, id)

	_, err := ParseRankResult(dup, req)
	require.Error(t, err)
	assert.True(t, errs.IsMalformedRanking(err))
}

func TestParseRankResult_RejectsOutOfRangeScore(t *testing.T) {
	req := rankRequestFixture(1)
	id := req.Applications[0].ApplicationID
	outOfRange := fmt.Sprintf(
		`{"best_application_id": %q, "summary": "s", "ranking": [{"application_id": %q, "suitability_score": 140, "strengths": [], "concerns": []}]}`,
		id, id)

	_, err := ParseRankResult(outOfRange, req)
	require.Error(t, err)
	assert.True(t, errs.IsMalformedRanking(err))
}

func TestParseRankResult_RejectsUnknownBestApplication(t *testing.T) {
	req := rankRequestFixture(1)
	id := req.Applications[0].ApplicationID
	badBest := fmt.Sprintf(
		`{"best_application_id": %q, "summary": "s", "ranking": [{"application_id": %q, "suitability_score": 70, "strengths": [], "concerns": []}]}`,
		uuid.New(), id)

	_, err := ParseRankResult(badBest, req)
	require.Error(t, err)
	assert.True(t, errs.IsMalformedRanking(err))
}

func TestParseRankResult_RejectsEmptyRanking(t *testing.T) {
	req := rankRequestFixture(1)
	empty := fmt.Sprintf(`{"best_application_id": %q, "summary": "s", "ranking": []}`,
		req.Applications[0].ApplicationID)

	_, err := ParseRankResult(empty, req)
	require.Error(t, err)
	assert.True(t, errs.IsMalformedRanking(err))
}
