package database

import (
	"errors"

	"github.com/campusmatch/backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StudentProfileRepo struct {
	db *gorm.DB
}

func NewStudentProfileRepo(db *gorm.DB) *StudentProfileRepo {
	return &StudentProfileRepo{db}
}

// FindByUserID returns the profile for a user, or nil if none exists yet.
func (r *StudentProfileRepo) FindByUserID(userID uuid.UUID) (*models.StudentProfile, error) {
	var profile models.StudentProfile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Upsert creates the profile on first submission and overwrites it afterwards.
func (r *StudentProfileRepo) Upsert(profile *models.StudentProfile) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"full_name", "email", "academic_level", "field_of_study",
			"difficulty_preference", "skills", "interests",
		}),
	}).Create(profile).Error
}
