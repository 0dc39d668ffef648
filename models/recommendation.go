package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SkillMatchDetails is the persisted JSON breakdown of a recommendation.
type SkillMatchDetails struct {
	MatchingSkills     []string `json:"matching_skills"`
	TotalProjectSkills int      `json:"total_project_skills"`
	UserSkills         []string `json:"user_skills"`
}

// ProjectRecommendation is a persisted student-to-project match score.
// Rows act as a cache keyed by (user, project) plus the hash of the skill
// set they were computed from; a hash mismatch marks the row stale.
type ProjectRecommendation struct {
	ID                uuid.UUID                             `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	UserID            uuid.UUID                             `json:"user_id" db:"user_id" gorm:"type:uuid;not null;index:idx_recommendation_user;uniqueIndex:idx_recommendation_unique"`
	ProjectID         uuid.UUID                             `json:"project_id" db:"project_id" gorm:"type:uuid;not null;uniqueIndex:idx_recommendation_unique"`
	MatchScore        float64                               `json:"match_score" db:"match_score" gorm:"not null"`
	Reasoning         string                                `json:"reasoning" db:"reasoning" gorm:"type:text"`
	SkillMatchDetails datatypes.JSONType[SkillMatchDetails] `json:"skill_match_details" db:"skill_match_details" gorm:"type:jsonb"`
	SkillSetHash      string                                `json:"skill_set_hash" db:"skill_set_hash" gorm:"type:text;not null"`

	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;references:ID"`
}
