package database

import (
	"errors"

	"github.com/campusmatch/backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns every project, including drafts and archived ones.
func (r *ProjectRepo) FindAll() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Find(&projects).Error
	return projects, err
}

// FindOpen returns published, unarchived projects. These are the projects
// visible to students and eligible for matching.
func (r *ProjectRepo) FindOpen() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Where("published = ? AND archived = ?", true, false).Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID, or nil if it does not exist.
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update updates an existing project in the database
func (r *ProjectRepo) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// SetPublished flips the publish flag.
func (r *ProjectRepo) SetPublished(id uuid.UUID, published bool) error {
	return r.db.Model(&models.Project{}).Where("id = ?", id).Update("published", published).Error
}

// SetArchived flips the archive flag. Archived projects are hidden from
// students and treated as immutable by the handlers.
func (r *ProjectRepo) SetArchived(id uuid.UUID, archived bool) error {
	return r.db.Model(&models.Project{}).Where("id = ?", id).Update("archived", archived).Error
}

// Delete removes a project from the database by id
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}
