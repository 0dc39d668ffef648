package database

import (
	"github.com/campusmatch/backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RecommendationRepo struct {
	db *gorm.DB
}

func NewRecommendationRepo(db *gorm.DB) *RecommendationRepo {
	return &RecommendationRepo{db}
}

// FindByUser returns the user's cached recommendations with projects
// preloaded, highest score first.
func (r *RecommendationRepo) FindByUser(userID uuid.UUID) ([]models.ProjectRecommendation, error) {
	var recommendations []models.ProjectRecommendation
	err := r.db.Preload("Project").
		Where("user_id = ?", userID).
		Order("match_score DESC").
		Find(&recommendations).Error
	return recommendations, err
}

// ReplaceForUser atomically swaps the user's cached recommendation rows.
// Recomputation always rewrites the full set, so stale rows from a
// previous skill set never survive a refresh.
func (r *RecommendationRepo) ReplaceForUser(userID uuid.UUID, recommendations []models.ProjectRecommendation) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.ProjectRecommendation{}).Error; err != nil {
			return err
		}
		if len(recommendations) == 0 {
			return nil
		}
		return tx.Create(&recommendations).Error
	})
}
