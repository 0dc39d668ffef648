package database

import (
	"errors"

	"github.com/campusmatch/backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GradeRepo struct {
	db *gorm.DB
}

func NewGradeRepo(db *gorm.DB) *GradeRepo {
	return &GradeRepo{db}
}

// Add inserts a new grade row, unreleased.
func (r *GradeRepo) Add(grade *models.Grade) error {
	return r.db.Create(grade).Error
}

// FindByID returns a grade, or nil if absent.
func (r *GradeRepo) FindByID(id uuid.UUID) (*models.Grade, error) {
	var grade models.Grade
	err := r.db.First(&grade, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &grade, nil
}

// Release makes a grade visible to its student.
func (r *GradeRepo) Release(id uuid.UUID) error {
	return r.db.Model(&models.Grade{}).Where("id = ?", id).Update("released", true).Error
}

// FindReleasedByStudent returns the student-visible grades.
func (r *GradeRepo) FindReleasedByStudent(studentID uuid.UUID) ([]models.Grade, error) {
	var grades []models.Grade
	err := r.db.Where("student_id = ? AND released = ?", studentID, true).Find(&grades).Error
	return grades, err
}

// FindByProject returns every grade for a project, released or not.
func (r *GradeRepo) FindByProject(projectID uuid.UUID) ([]models.Grade, error) {
	var grades []models.Grade
	err := r.db.Where("project_id = ?", projectID).Find(&grades).Error
	return grades, err
}
