package services

import (
	"context"
	"fmt"

	"github.com/campusmatch/backend/database"
	"github.com/campusmatch/backend/matching"
	"github.com/campusmatch/backend/models"
	"golang.org/x/sync/errgroup"
)

// RankingAssembler builds the RankRequest payload for the AI ranker:
// per-application skill sets (aggregated for teams) and matched/missing
// skills against the project's requirements.
type RankingAssembler struct {
	dir directory
}

func NewRankingAssembler(db database.Database) RankingAssembler {
	return RankingAssembler{dir: dbDirectory{db}}
}

// BuildRankRequest loads each application's skill profile and assembles
// the ranking payload. Applications are loaded concurrently; any single
// failure aborts the whole assembly. The repositories take no context,
// so it is consulted once per load rather than propagated.
//
// Skill matching here uses the substring policy, consistent with the
// team-facing ranking path.
func (a RankingAssembler) BuildRankRequest(ctx context.Context, project models.Project, applications []models.Application) (RankRequest, error) {
	req := RankRequest{
		ProjectID:       project.ID,
		ProjectTitle:    project.Title,
		RequiredSkills:  project.RequiredSkills,
		PreferredSkills: project.PreferredSkills,
		TeamSizeMin:     project.TeamSizeMin,
		TeamSizeMax:     project.TeamSizeMax,
		Applications:    make([]ApplicationSummary, len(applications)),
	}

	var g errgroup.Group
	for i, app := range applications {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			summary, err := a.summarizeApplication(app, project)
			if err != nil {
				return err
			}
			req.Applications[i] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return RankRequest{}, err
	}
	return req, nil
}

func (a RankingAssembler) summarizeApplication(app models.Application, project models.Project) (ApplicationSummary, error) {
	summary := ApplicationSummary{
		ApplicationID: app.ID,
		ApplicantType: app.ApplicantType,
		Responses:     app.Responses,
	}

	var skills []string
	switch app.ApplicantType {
	case models.ApplicantTeam:
		team, err := a.dir.teamByID(app.ApplicantID)
		if err != nil {
			return ApplicationSummary{}, fmt.Errorf("failed to load team %s: %w", app.ApplicantID, err)
		}
		if team == nil {
			return ApplicationSummary{}, fmt.Errorf("application %s refers to missing team %s", app.ID, app.ApplicantID)
		}
		summary.ApplicantName = team.Name
		summary.TeamSize = team.Size()

		memberSkills, err := teamSkillSets(a.dir, *team)
		if err != nil {
			return ApplicationSummary{}, err
		}
		for _, sc := range matching.AggregateTeamSkills(memberSkills) {
			skills = append(skills, sc.Skill)
		}
	default:
		userSkills, err := userSkillSet(a.dir, app.ApplicantID)
		if err != nil {
			return ApplicationSummary{}, err
		}
		skills = userSkills
		summary.TeamSize = 1
		if profile, err := a.dir.profileByUser(app.ApplicantID); err == nil && profile != nil {
			summary.ApplicantName = profile.FullName
		}
	}

	summary.Skills = skills
	summary.MatchedRequired = matching.MatchedSkills(matching.PolicySubstring, skills, project.RequiredSkills)
	summary.MissingRequired = matching.MissingSkills(matching.PolicySubstring, skills, project.RequiredSkills)
	return summary, nil
}
