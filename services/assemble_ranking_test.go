package services

import (
	"context"
	"testing"

	"github.com/campusmatch/backend/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDirectory serves profiles, skill rows and teams from memory.
type fakeDirectory struct {
	profiles map[uuid.UUID]*models.StudentProfile
	skills   map[uuid.UUID][]models.UserSkill
	teams    map[uuid.UUID]*models.Team
}

func (f fakeDirectory) profileByUser(userID uuid.UUID) (*models.StudentProfile, error) {
	return f.profiles[userID], nil
}

func (f fakeDirectory) skillsByUser(userID uuid.UUID) ([]models.UserSkill, error) {
	return f.skills[userID], nil
}

func (f fakeDirectory) skillsByUsers(userIDs []uuid.UUID) (map[uuid.UUID][]models.UserSkill, error) {
	out := make(map[uuid.UUID][]models.UserSkill, len(userIDs))
	for _, id := range userIDs {
		if rows, ok := f.skills[id]; ok {
			out[id] = rows
		}
	}
	return out, nil
}

func (f fakeDirectory) teamByID(teamID uuid.UUID) (*models.Team, error) {
	return f.teams[teamID], nil
}

// fakeRanker records the request it was handed and returns a canned result.
type fakeRanker struct {
	lastRequest RankRequest
	result      *RankResult
	err         error
}

func (r *fakeRanker) RankApplications(_ context.Context, req RankRequest) (*RankResult, error) {
	r.lastRequest = req
	return r.result, r.err
}

func skillRow(userID uuid.UUID, name string) models.UserSkill {
	return models.UserSkill{ID: uuid.New(), UserID: userID, Name: name, Proficiency: 3}
}

func TestBuildRankRequest_IndividualApplicant(t *testing.T) {
	userID := uuid.New()
	dir := fakeDirectory{
		profiles: map[uuid.UUID]*models.StudentProfile{
			userID: {UserID: userID, FullName: "Dana Ruiz", Skills: []string{"Python"}},
		},
		skills: map[uuid.UUID][]models.UserSkill{
			userID: {skillRow(userID, "SQL"), skillRow(userID, "python")},
		},
	}

	project := models.Project{
		ID:             uuid.New(),
		Title:          "Campus Analytics",
		RequiredSkills: []string{"Python", "Rust"},
		TeamSizeMin:    1,
		TeamSizeMax:    2,
	}
	app := models.Application{
		ID:            uuid.New(),
		ProjectID:     project.ID,
		ApplicantType: models.ApplicantIndividual,
		ApplicantID:   userID,
		Responses:     "I built the course scheduler.",
	}

	assembler := RankingAssembler{dir: dir}
	req, err := assembler.BuildRankRequest(context.Background(), project, []models.Application{app})
	require.NoError(t, err)

	require.Len(t, req.Applications, 1)
	summary := req.Applications[0]
	assert.Equal(t, app.ID, summary.ApplicationID)
	assert.Equal(t, "Dana Ruiz", summary.ApplicantName)
	assert.Equal(t, 1, summary.TeamSize)
	// Profile skills merged with granular rows, case-insensitive dedupe.
	assert.ElementsMatch(t, []string{"Python", "SQL"}, summary.Skills)
	assert.Equal(t, []string{"Python"}, summary.MatchedRequired)
	assert.Equal(t, []string{"Rust"}, summary.MissingRequired)
	assert.Equal(t, "I built the course scheduler.", summary.Responses)
}

func TestBuildRankRequest_TeamApplicantAggregatesSkills(t *testing.T) {
	alice, bob := uuid.New(), uuid.New()
	team := &models.Team{
		ID:        uuid.New(),
		Name:      "Night Owls",
		CreatorID: alice,
		Members: []models.TeamMember{
			{TeamID: uuid.New(), UserID: alice, Role: models.TeamRoleCreator},
			{TeamID: uuid.New(), UserID: bob, Role: models.TeamRoleMember},
		},
	}
	dir := fakeDirectory{
		profiles: map[uuid.UUID]*models.StudentProfile{
			alice: {UserID: alice, FullName: "Alice", Skills: []string{"JavaScript", "SQL"}},
			bob:   {UserID: bob, FullName: "Bob", Skills: []string{"SQL"}},
		},
		skills: map[uuid.UUID][]models.UserSkill{},
		teams:  map[uuid.UUID]*models.Team{team.ID: team},
	}

	project := models.Project{
		ID:             uuid.New(),
		Title:          "Backend Rewrite",
		RequiredSkills: []string{"Java", "Go"},
		TeamSizeMin:    2,
		TeamSizeMax:    4,
	}
	app := models.Application{
		ID:            uuid.New(),
		ProjectID:     project.ID,
		ApplicantType: models.ApplicantTeam,
		ApplicantID:   team.ID,
	}

	assembler := RankingAssembler{dir: dir}
	req, err := assembler.BuildRankRequest(context.Background(), project, []models.Application{app})
	require.NoError(t, err)

	require.Len(t, req.Applications, 1)
	summary := req.Applications[0]
	assert.Equal(t, "Night Owls", summary.ApplicantName)
	assert.Equal(t, 2, summary.TeamSize)
	// Union of member skills, most widely held first.
	assert.Equal(t, []string{"SQL", "JavaScript"}, summary.Skills)
	// The team path accepts substring containment: JavaScript covers Java.
	assert.Equal(t, []string{"Java"}, summary.MatchedRequired)
	assert.Equal(t, []string{"Go"}, summary.MissingRequired)
}

func TestBuildRankRequest_MissingTeamFails(t *testing.T) {
	dir := fakeDirectory{teams: map[uuid.UUID]*models.Team{}}
	project := models.Project{ID: uuid.New(), Title: "Orphaned"}
	app := models.Application{
		ID:            uuid.New(),
		ProjectID:     project.ID,
		ApplicantType: models.ApplicantTeam,
		ApplicantID:   uuid.New(),
	}

	assembler := RankingAssembler{dir: dir}
	_, err := assembler.BuildRankRequest(context.Background(), project, []models.Application{app})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing team")
}

func TestBuildRankRequest_CancelledContext(t *testing.T) {
	userID := uuid.New()
	dir := fakeDirectory{
		skills: map[uuid.UUID][]models.UserSkill{userID: {skillRow(userID, "Go")}},
	}
	app := models.Application{ID: uuid.New(), ApplicantType: models.ApplicantIndividual, ApplicantID: userID}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assembler := RankingAssembler{dir: dir}
	_, err := assembler.BuildRankRequest(ctx, models.Project{ID: uuid.New()}, []models.Application{app})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRankApplications_FakeRankerRoundTrip(t *testing.T) {
	alice, bob := uuid.New(), uuid.New()
	dir := fakeDirectory{
		profiles: map[uuid.UUID]*models.StudentProfile{
			alice: {UserID: alice, FullName: "Alice", Skills: []string{"Python"}},
			bob:   {UserID: bob, FullName: "Bob", Skills: []string{"SQL"}},
		},
		skills: map[uuid.UUID][]models.UserSkill{},
	}

	project := models.Project{
		ID:             uuid.New(),
		Title:          "Campus Analytics",
		RequiredSkills: []string{"Python", "SQL"},
		TeamSizeMin:    1,
		TeamSizeMax:    2,
	}
	applications := []models.Application{
		{ID: uuid.New(), ProjectID: project.ID, ApplicantType: models.ApplicantIndividual, ApplicantID: alice},
		{ID: uuid.New(), ProjectID: project.ID, ApplicantType: models.ApplicantIndividual, ApplicantID: bob},
	}

	assembler := RankingAssembler{dir: dir}
	req, err := assembler.BuildRankRequest(context.Background(), project, applications)
	require.NoError(t, err)

	ranker := &fakeRanker{result: &RankResult{
		BestApplicationID: applications[0].ID,
		Summary:           "Alice covers the core requirement.",
		Ranking: []RankedApplication{
			{ApplicationID: applications[0].ID, SuitabilityScore: 85},
			{ApplicationID: applications[1].ID, SuitabilityScore: 60},
		},
	}}

	result, err := ranker.RankApplications(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, applications[0].ID, result.BestApplicationID)

	// The ranker saw every assembled application with its skill profile.
	require.Len(t, ranker.lastRequest.Applications, 2)
	seen := map[uuid.UUID][]string{}
	for _, s := range ranker.lastRequest.Applications {
		seen[s.ApplicationID] = s.MatchedRequired
	}
	assert.Equal(t, []string{"Python"}, seen[applications[0].ID])
	assert.Equal(t, []string{"SQL"}, seen[applications[1].ID])
}
