package database

import (
	"github.com/campusmatch/backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserSkillRepo struct {
	db *gorm.DB
}

func NewUserSkillRepo(db *gorm.DB) *UserSkillRepo {
	return &UserSkillRepo{db}
}

// FindByUserID returns all skill rows owned by a user.
func (r *UserSkillRepo) FindByUserID(userID uuid.UUID) ([]models.UserSkill, error) {
	var skills []models.UserSkill
	err := r.db.Where("user_id = ?", userID).Find(&skills).Error
	return skills, err
}

// FindByUserIDs returns skill rows for a set of users, grouped by owner.
// Used when aggregating a team's skill profile.
func (r *UserSkillRepo) FindByUserIDs(userIDs []uuid.UUID) (map[uuid.UUID][]models.UserSkill, error) {
	var skills []models.UserSkill
	if err := r.db.Where("user_id IN ?", userIDs).Find(&skills).Error; err != nil {
		return nil, err
	}
	grouped := make(map[uuid.UUID][]models.UserSkill, len(userIDs))
	for _, s := range skills {
		grouped[s.UserID] = append(grouped[s.UserID], s)
	}
	return grouped, nil
}

// Add inserts a new skill row.
func (r *UserSkillRepo) Add(skill *models.UserSkill) error {
	return r.db.Create(skill).Error
}

// Delete removes a skill row, scoped to its owner.
func (r *UserSkillRepo) Delete(id, userID uuid.UUID) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.UserSkill{}).Error
}
