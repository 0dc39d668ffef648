package database

import (
	"errors"

	"github.com/campusmatch/backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationRepo struct {
	db *gorm.DB
}

func NewApplicationRepo(db *gorm.DB) *ApplicationRepo {
	return &ApplicationRepo{db}
}

// Add inserts a new application.
func (r *ApplicationRepo) Add(application *models.Application) error {
	return r.db.Create(application).Error
}

// FindByID returns an application, or nil if absent.
func (r *ApplicationRepo) FindByID(id uuid.UUID) (*models.Application, error) {
	var application models.Application
	err := r.db.First(&application, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &application, nil
}

// FindByProject returns all applications for one project.
func (r *ApplicationRepo) FindByProject(projectID uuid.UUID) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Where("project_id = ?", projectID).Find(&applications).Error
	return applications, err
}

// FindBySubmitter returns applications the user submitted, individually or
// on behalf of a team.
func (r *ApplicationRepo) FindBySubmitter(userID uuid.UUID) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Where("submitted_by = ?", userID).Find(&applications).Error
	return applications, err
}

// Exists reports whether this applicant already applied to the project.
func (r *ApplicationRepo) Exists(projectID, applicantID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Application{}).
		Where("project_id = ? AND applicant_id = ?", projectID, applicantID).
		Count(&count).Error
	return count > 0, err
}

// UpdateStatus sets the application status. Transitions are admin-driven
// and unrestricted.
func (r *ApplicationRepo) UpdateStatus(id uuid.UUID, status string) error {
	return r.db.Model(&models.Application{}).Where("id = ?", id).Update("status", status).Error
}
