package models

import "github.com/google/uuid"

// Grade records a student's grade for a project. Students only see rows
// after an admin releases them.
type Grade struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ProjectID uuid.UUID `json:"project_id" db:"project_id" gorm:"type:uuid;not null;index:idx_grade_project;uniqueIndex:idx_grade_unique"`
	StudentID uuid.UUID `json:"student_id" db:"student_id" gorm:"type:uuid;not null;index:idx_grade_student;uniqueIndex:idx_grade_unique"`
	Grade     string    `json:"grade" db:"grade" gorm:"type:text;not null"`
	Feedback  string    `json:"feedback" db:"feedback" gorm:"type:text"`
	Released  bool      `json:"released" db:"released" gorm:"not null;default:false"`
	GradedBy  uuid.UUID `json:"graded_by" db:"graded_by" gorm:"type:uuid;not null"`
}
