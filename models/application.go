package models

import "github.com/google/uuid"

// Applicant types. ApplicantID refers to a user or a team depending on this tag.
const (
	ApplicantIndividual = "individual"
	ApplicantTeam       = "team"
)

// Application statuses. Transitions are admin-driven; there is no automatic
// expiry.
const (
	ApplicationPending    = "pending"
	ApplicationApproved   = "approved"
	ApplicationWaitlisted = "waitlisted"
	ApplicationRejected   = "rejected"
)

// ValidApplicationStatus reports whether s is a recognized status value.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationPending, ApplicationApproved, ApplicationWaitlisted, ApplicationRejected:
		return true
	}
	return false
}

// Application links an applicant (a user or a team, disambiguated by
// ApplicantType) to a project.
type Application struct {
	ID            uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ProjectID     uuid.UUID `json:"project_id" db:"project_id" gorm:"type:uuid;not null;index:idx_application_project;uniqueIndex:idx_application_unique"`
	ApplicantType string    `json:"applicant_type" db:"applicant_type" gorm:"type:text;not null"`
	ApplicantID   uuid.UUID `json:"applicant_id" db:"applicant_id" gorm:"type:uuid;not null;uniqueIndex:idx_application_unique"`
	Responses     string    `json:"responses" db:"responses" gorm:"type:text"`
	Status        string    `json:"status" db:"status" gorm:"type:text;not null;default:'pending'"`
	SubmittedBy   uuid.UUID `json:"submitted_by" db:"submitted_by" gorm:"type:uuid;not null"`
}
