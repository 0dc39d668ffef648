package database

import (
	"errors"

	"github.com/campusmatch/backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeamRepo struct {
	db *gorm.DB
}

func NewTeamRepo(db *gorm.DB) *TeamRepo {
	return &TeamRepo{db}
}

// Add creates a team and its creator member row in one transaction.
func (r *TeamRepo) Add(team *models.Team) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}
		member := models.TeamMember{
			TeamID: team.ID,
			UserID: team.CreatorID,
			Role:   models.TeamRoleCreator,
		}
		if err := tx.Create(&member).Error; err != nil {
			return err
		}
		team.Members = append(team.Members, member)
		return nil
	})
}

// FindByID returns a team with its members preloaded, or nil if absent.
func (r *TeamRepo) FindByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("Members").First(&team, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// FindByUserID returns every team the user belongs to.
func (r *TeamRepo) FindByUserID(userID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Preload("Members").
		Joins("JOIN team_members ON team_members.team_id = teams.id").
		Where("team_members.user_id = ?", userID).
		Find(&teams).Error
	return teams, err
}

// AddMember inserts a member row.
func (r *TeamRepo) AddMember(member *models.TeamMember) error {
	return r.db.Create(member).Error
}

// RemoveMember deletes a member row.
func (r *TeamRepo) RemoveMember(teamID, userID uuid.UUID) error {
	return r.db.Where("team_id = ? AND user_id = ?", teamID, userID).Delete(&models.TeamMember{}).Error
}
