package models

import "github.com/google/uuid"

// Team member roles. The creator has elevated rights (invite, remove members).
const (
	TeamRoleCreator = "creator"
	TeamRoleMember  = "member"
)

// Invitation statuses.
const (
	InvitationPending  = "pending"
	InvitationAccepted = "accepted"
	InvitationDeclined = "declined"
)

// Team represents a student-created team. A team is a flat set of member
// rows; there are no nested sub-teams.
type Team struct {
	ID          uuid.UUID    `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name        string       `json:"name" db:"name" gorm:"type:text;not null"`
	Description string       `json:"description" db:"description" gorm:"type:text"`
	CreatorID   uuid.UUID    `json:"creator_id" db:"creator_id" gorm:"type:uuid;not null"`
	Members     []TeamMember `json:"members,omitempty" gorm:"foreignKey:TeamID;references:ID;constraint:OnDelete:CASCADE"`
}

// Size returns the current member count.
func (t Team) Size() int {
	return len(t.Members)
}

// HasMember reports whether userID is on the team.
func (t Team) HasMember(userID uuid.UUID) bool {
	for _, m := range t.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

// TeamMember links a user to a team with a role.
type TeamMember struct {
	ID     uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	TeamID uuid.UUID `json:"team_id" db:"team_id" gorm:"type:uuid;not null;index:idx_team_member_team;uniqueIndex:idx_team_member_unique"`
	UserID uuid.UUID `json:"user_id" db:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_member_unique"`
	Role   string    `json:"role" db:"role" gorm:"type:text;not null;default:'member'"`
}

// TeamInvitation invites a user to join a team. Accepting inserts a member
// row; declining only flips the status.
type TeamInvitation struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	TeamID    uuid.UUID `json:"team_id" db:"team_id" gorm:"type:uuid;not null;index:idx_team_invitation_team"`
	InviterID uuid.UUID `json:"inviter_id" db:"inviter_id" gorm:"type:uuid;not null"`
	InviteeID uuid.UUID `json:"invitee_id" db:"invitee_id" gorm:"type:uuid;not null;index:idx_team_invitation_invitee"`
	Status    string    `json:"status" db:"status" gorm:"type:text;not null;default:'pending'"`
}
