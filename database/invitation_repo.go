package database

import (
	"errors"

	"github.com/campusmatch/backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvitationRepo struct {
	db *gorm.DB
}

func NewInvitationRepo(db *gorm.DB) *InvitationRepo {
	return &InvitationRepo{db}
}

// Add inserts a new invitation in pending status.
func (r *InvitationRepo) Add(invitation *models.TeamInvitation) error {
	return r.db.Create(invitation).Error
}

// FindByID returns an invitation, or nil if absent.
func (r *InvitationRepo) FindByID(id uuid.UUID) (*models.TeamInvitation, error) {
	var invitation models.TeamInvitation
	err := r.db.First(&invitation, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// FindPendingByInvitee returns the caller's open invitations.
func (r *InvitationRepo) FindPendingByInvitee(inviteeID uuid.UUID) ([]models.TeamInvitation, error) {
	var invitations []models.TeamInvitation
	err := r.db.Where("invitee_id = ? AND status = ?", inviteeID, models.InvitationPending).
		Find(&invitations).Error
	return invitations, err
}

// HasPending reports whether an open invitation already exists for this
// team and invitee.
func (r *InvitationRepo) HasPending(teamID, inviteeID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.TeamInvitation{}).
		Where("team_id = ? AND invitee_id = ? AND status = ?", teamID, inviteeID, models.InvitationPending).
		Count(&count).Error
	return count > 0, err
}

// UpdateStatus marks an invitation accepted or declined.
func (r *InvitationRepo) UpdateStatus(id uuid.UUID, status string) error {
	return r.db.Model(&models.TeamInvitation{}).Where("id = ?", id).Update("status", status).Error
}
