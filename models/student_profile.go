package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Difficulty preference values accepted on a student profile.
const (
	PreferenceBeginner     = "beginner"
	PreferenceIntermediate = "intermediate"
	PreferenceAdvanced     = "advanced"
)

// StudentProfile represents a student's profile, one per user. The Skills
// array on the profile is the canonical skill source for matching; the
// per-skill UserSkill rows carry proficiency and are merged in through
// CombinedSkills so every consumer reads one skill set.
type StudentProfile struct {
	ID                   uuid.UUID                  `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	UserID               uuid.UUID                  `json:"user_id" db:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_student_profile_user"`
	FullName             string                     `json:"full_name" db:"full_name" gorm:"type:text;not null"`
	Email                string                     `json:"email" db:"email" gorm:"type:text;not null"`
	AcademicLevel        string                     `json:"academic_level" db:"academic_level" gorm:"type:text"`
	FieldOfStudy         string                     `json:"field_of_study" db:"field_of_study" gorm:"type:text"`
	DifficultyPreference string                     `json:"difficulty_preference" db:"difficulty_preference" gorm:"type:text"`
	Skills               datatypes.JSONSlice[string] `json:"skills" db:"skills" gorm:"type:jsonb"`
	Interests            datatypes.JSONSlice[string] `json:"interests" db:"interests" gorm:"type:jsonb"`
}

// CombinedSkills merges the profile's skill array with the user's granular
// skill rows, deduplicated case-insensitively. The first spelling seen wins.
func (p StudentProfile) CombinedSkills(userSkills []UserSkill) []string {
	seen := make(map[string]bool, len(p.Skills)+len(userSkills))
	combined := make([]string, 0, len(p.Skills)+len(userSkills))

	add := func(name string) {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		combined = append(combined, strings.TrimSpace(name))
	}

	for _, s := range p.Skills {
		add(s)
	}
	for _, us := range userSkills {
		add(us.Name)
	}
	return combined
}
