package models

import "github.com/google/uuid"

// UserSkill represents a single named skill owned by a user, with an
// optional 1-5 proficiency level.
type UserSkill struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	UserID      uuid.UUID `json:"user_id" db:"user_id" gorm:"type:uuid;not null;index:idx_user_skill_user;uniqueIndex:idx_user_skill_unique"`
	Name        string    `json:"name" db:"name" gorm:"type:text;not null;uniqueIndex:idx_user_skill_unique"`
	Proficiency int       `json:"proficiency" db:"proficiency" gorm:"not null;default:1"`
}
