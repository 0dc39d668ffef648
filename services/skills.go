package services

import (
	"fmt"

	"github.com/campusmatch/backend/database"
	"github.com/campusmatch/backend/matching"
	"github.com/campusmatch/backend/models"
	"github.com/google/uuid"
)

// directory is the subset of the persistence layer the skill and ranking
// services read from. database.Database backs it in production; tests
// substitute an in-memory fake.
type directory interface {
	profileByUser(userID uuid.UUID) (*models.StudentProfile, error)
	skillsByUser(userID uuid.UUID) ([]models.UserSkill, error)
	skillsByUsers(userIDs []uuid.UUID) (map[uuid.UUID][]models.UserSkill, error)
	teamByID(teamID uuid.UUID) (*models.Team, error)
}

type dbDirectory struct {
	db database.Database
}

func (d dbDirectory) profileByUser(userID uuid.UUID) (*models.StudentProfile, error) {
	return d.db.StudentProfileRepo().FindByUserID(userID)
}

func (d dbDirectory) skillsByUser(userID uuid.UUID) ([]models.UserSkill, error) {
	return d.db.UserSkillRepo().FindByUserID(userID)
}

func (d dbDirectory) skillsByUsers(userIDs []uuid.UUID) (map[uuid.UUID][]models.UserSkill, error) {
	return d.db.UserSkillRepo().FindByUserIDs(userIDs)
}

func (d dbDirectory) teamByID(teamID uuid.UUID) (*models.Team, error) {
	return d.db.TeamRepo().FindByID(teamID)
}

// UserSkillSet returns the canonical skill list for one user: the profile
// skill array merged with the granular per-skill rows, deduplicated
// case-insensitively. Every matching consumer reads skills through here.
func UserSkillSet(db database.Database, userID uuid.UUID) ([]string, error) {
	return userSkillSet(dbDirectory{db}, userID)
}

func userSkillSet(dir directory, userID uuid.UUID) ([]string, error) {
	skills, err := dir.skillsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load skills for user %s: %w", userID, err)
	}
	profile, err := dir.profileByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile for user %s: %w", userID, err)
	}
	if profile == nil {
		names := make([]string, 0, len(skills))
		for _, s := range skills {
			names = append(names, s.Name)
		}
		return matching.Dedupe(names), nil
	}
	return profile.CombinedSkills(skills), nil
}

// TeamSkillSets returns one combined skill list per team member, in
// member order.
func TeamSkillSets(db database.Database, team models.Team) ([][]string, error) {
	return teamSkillSets(dbDirectory{db}, team)
}

func teamSkillSets(dir directory, team models.Team) ([][]string, error) {
	memberIDs := make([]uuid.UUID, 0, len(team.Members))
	for _, m := range team.Members {
		memberIDs = append(memberIDs, m.UserID)
	}

	skillRows, err := dir.skillsByUsers(memberIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load team member skills: %w", err)
	}

	sets := make([][]string, 0, len(memberIDs))
	for _, id := range memberIDs {
		profile, err := dir.profileByUser(id)
		if err != nil {
			return nil, fmt.Errorf("failed to load profile for member %s: %w", id, err)
		}
		if profile != nil {
			sets = append(sets, profile.CombinedSkills(skillRows[id]))
			continue
		}
		names := make([]string, 0, len(skillRows[id]))
		for _, s := range skillRows[id] {
			names = append(names, s.Name)
		}
		sets = append(sets, names)
	}
	return sets, nil
}

// TeamSkillNames flattens the aggregated team profile into a skill list,
// most common skills first.
func TeamSkillNames(db database.Database, team models.Team) ([]string, error) {
	sets, err := TeamSkillSets(db, team)
	if err != nil {
		return nil, err
	}
	counts := matching.AggregateTeamSkills(sets)
	names := make([]string, 0, len(counts))
	for _, sc := range counts {
		names = append(names, sc.Skill)
	}
	return names, nil
}
