package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Project difficulty levels.
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// Project represents an academic project students and teams can apply to.
// Lifecycle: created as a draft, published (visible to students), optionally
// archived (hidden and immutable).
type Project struct {
	ID              uuid.UUID                  `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title           string                     `json:"title" db:"title" gorm:"type:text;not null;unique"`
	Description     string                     `json:"description" db:"description" gorm:"type:text;not null"`
	Difficulty      string                     `json:"difficulty" db:"difficulty" gorm:"type:text;not null"`
	RequiredSkills  datatypes.JSONSlice[string] `json:"required_skills" db:"required_skills" gorm:"type:jsonb"`
	PreferredSkills datatypes.JSONSlice[string] `json:"preferred_skills" db:"preferred_skills" gorm:"type:jsonb"`
	TeamSizeMin     int                        `json:"team_size_min" db:"team_size_min" gorm:"not null;default:1"`
	TeamSizeMax     int                        `json:"team_size_max" db:"team_size_max" gorm:"not null;default:1"`
	Published       bool                       `json:"published" db:"published" gorm:"not null;default:false"`
	Archived        bool                       `json:"archived" db:"archived" gorm:"not null;default:false"`
	CreatedBy       uuid.UUID                  `json:"created_by" db:"created_by" gorm:"type:uuid"`
}

// IsOpen reports whether the project is visible and accepting applications.
func (p Project) IsOpen() bool {
	return p.Published && !p.Archived
}
