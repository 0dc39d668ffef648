package api

import (
	"net/http"

	"github.com/campusmatch/backend/database"
	"github.com/campusmatch/backend/errs"
	"github.com/campusmatch/backend/matching"
	"github.com/campusmatch/backend/models"
	"github.com/campusmatch/backend/services"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type teamHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        database.Database
}

func newTeamHandler(db database.Database) teamHandler {
	logger := log.With().Str("handlerName", "teamHandler").Logger()

	return teamHandler{
		responder: NewResponder(logger),
		logger:    logger,
		db:        db,
	}
}

// createTeamRequest is the team creation payload.
type createTeamRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=2000"`
}

// inviteMemberRequest names the user to invite.
type inviteMemberRequest struct {
	InviteeID uuid.UUID `json:"invitee_id" validate:"required"`
}

// TeamSkillsResponse is the aggregated team skill profile.
type TeamSkillsResponse struct {
	TeamID uuid.UUID            `json:"team_id"`
	Size   int                  `json:"size"`
	Skills []matching.SkillCount `json:"skills"`
}

// loadTeamForMember fetches a team and checks the caller may view it.
// Admins may view any team.
func (h teamHandler) loadTeamForMember(r *http.Request, teamID uuid.UUID) (*models.Team, error) {
	team, err := h.db.TeamRepo().FindByID(teamID)
	if err != nil {
		return nil, wrapDatabaseError("find team", "team", err)
	}
	if team == nil {
		return nil, errs.NewNotFoundError("team not found")
	}

	userID, err := ctxGetUserID(r.Context())
	if err != nil {
		return nil, errs.NewUnauthorizedError("missing user identity")
	}
	if !team.HasMember(userID) && !ctxIsAdmin(r.Context()) {
		return nil, errs.NewForbiddenError("not a member of this team")
	}
	return team, nil
}

// createTeam creates a team with the caller as its creator
// @Summary Create team
// @Description Creates a team; the caller becomes its creator and first member
// @Tags Teams
// @Accept json
// @Produce json
// @Param team body createTeamRequest true "Team data"
// @Success 201 {object} models.Team "Created team"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid team data"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /team [post]
func (h teamHandler) createTeam() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("missing user identity"))
			return
		}

		var req createTeamRequest
		if apiErr := decodeAndValidate(r, &req); apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		team := models.Team{
			Name:        req.Name,
			Description: req.Description,
			CreatorID:   userID,
		}
		if err := h.db.TeamRepo().Add(&team); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create team", "team", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, team)
	}
}

// getMyTeams lists the caller's teams
// @Summary List my teams
// @Description Retrieves every team the authenticated user belongs to
// @Tags Teams
// @Produce json
// @Success 200 {array} models.Team "Teams with members"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /teams [get]
func (h teamHandler) getMyTeams() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("missing user identity"))
			return
		}

		teams, err := h.db.TeamRepo().FindByUserID(userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find teams", "teams", err))
			return
		}

		h.responder.WriteJSON(w, teams)
	}
}

// getTeam retrieves one team with its members
// @Summary Get team
// @Description Retrieves a team the caller belongs to; admins may view any team
// @Tags Teams
// @Produce json
// @Param teamID path string true "Team ID" format(uuid)
// @Success 200 {object} models.Team "Team with members"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid teamID"
// @Failure 403 {object} ErrorResponse "Forbidden - Not a member"
// @Failure 404 {object} ErrorResponse "Not Found - Team not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /team/{teamID} [get]
func (h teamHandler) getTeam() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID, err := uuid.Parse(chi.URLParam(r, "teamID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid teamID"))
			return
		}

		team, err := h.loadTeamForMember(r, teamID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, team)
	}
}

// inviteMember invites a user to the team
// @Summary Invite member
// @Description Creates a pending invitation; only the team creator may invite
// @Tags Teams
// @Accept json
// @Produce json
// @Param teamID path string true "Team ID" format(uuid)
// @Param invitation body inviteMemberRequest true "Invitee"
// @Success 201 {object} models.TeamInvitation "Created invitation"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid payload"
// @Failure 403 {object} ErrorResponse "Forbidden - Caller is not the creator"
// @Failure 404 {object} ErrorResponse "Not Found - Team not found"
// @Failure 409 {object} ErrorResponse "Conflict - Already a member or already invited"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /team/{teamID}/invite [post]
func (h teamHandler) inviteMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("missing user identity"))
			return
		}

		teamID, err := uuid.Parse(chi.URLParam(r, "teamID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid teamID"))
			return
		}

		var req inviteMemberRequest
		if apiErr := decodeAndValidate(r, &req); apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		team, err := h.db.TeamRepo().FindByID(teamID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find team", "team", err))
			return
		}
		if team == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("team not found"))
			return
		}
		if team.CreatorID != userID {
			h.responder.WriteError(w, errs.NewForbiddenError("only the team creator can invite members"))
			return
		}
		if team.HasMember(req.InviteeID) {
			h.responder.WriteError(w, errs.NewConflictError("user is already a team member"))
			return
		}

		pending, err := h.db.InvitationRepo().HasPending(teamID, req.InviteeID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("check invitations", "team invitation", err))
			return
		}
		if pending {
			h.responder.WriteError(w, errs.NewConflictError("user already has a pending invitation"))
			return
		}

		invitation := models.TeamInvitation{
			TeamID:    teamID,
			InviterID: userID,
			InviteeID: req.InviteeID,
			Status:    models.InvitationPending,
		}
		if err := h.db.InvitationRepo().Add(&invitation); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create invitation", "team invitation", err))
			return
		}

		// Email is best-effort and must not delay the response.
		go h.notifyInvitee(req.InviteeID, team.Name)

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, invitation)
	}
}

func (h teamHandler) notifyInvitee(inviteeID uuid.UUID, teamName string) {
	profile, err := h.db.StudentProfileRepo().FindByUserID(inviteeID)
	if err != nil || profile == nil || profile.Email == "" {
		h.logger.Warn().Str("inviteeID", inviteeID.String()).Msg("No email on file for invitee, skipping notification")
		return
	}
	if err := services.NotifyInvitation(profile.Email, teamName); err != nil {
		h.logger.Error().Err(errs.NewNotificationError(profile.Email, err)).Msg("Failed to send invitation email")
	}
}

// getMyInvitations lists the caller's pending invitations
// @Summary List my invitations
// @Description Retrieves the authenticated user's pending team invitations
// @Tags Teams
// @Produce json
// @Success 200 {array} models.TeamInvitation "Pending invitations"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /invitations [get]
func (h teamHandler) getMyInvitations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("missing user identity"))
			return
		}

		invitations, err := h.db.InvitationRepo().FindPendingByInvitee(userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find invitations", "team invitations", err))
			return
		}

		h.responder.WriteJSON(w, invitations)
	}
}

// acceptInvitation accepts a pending invitation
// @Summary Accept invitation
// @Description Accepts a pending invitation addressed to the caller and joins the team
// @Tags Teams
// @Produce json
// @Param invitationID path string true "Invitation ID" format(uuid)
// @Success 200 {object} models.TeamInvitation "Accepted invitation"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid invitationID"
// @Failure 403 {object} ErrorResponse "Forbidden - Invitation addressed to someone else"
// @Failure 404 {object} ErrorResponse "Not Found - Invitation not found"
// @Failure 409 {object} ErrorResponse "Conflict - Invitation already resolved"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /invitation/{invitationID}/accept [post]
func (h teamHandler) acceptInvitation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		invitation, apiErr := h.resolveInvitation(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		member := models.TeamMember{
			TeamID: invitation.TeamID,
			UserID: invitation.InviteeID,
			Role:   models.TeamRoleMember,
		}
		if err := h.db.TeamRepo().AddMember(&member); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("add team member", "team member", err))
			return
		}

		if err := h.db.InvitationRepo().UpdateStatus(invitation.ID, models.InvitationAccepted); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update invitation", "team invitation", err))
			return
		}

		invitation.Status = models.InvitationAccepted
		h.responder.WriteJSON(w, invitation)
	}
}

// declineInvitation declines a pending invitation
// @Summary Decline invitation
// @Description Declines a pending invitation addressed to the caller
// @Tags Teams
// @Produce json
// @Param invitationID path string true "Invitation ID" format(uuid)
// @Success 200 {object} models.TeamInvitation "Declined invitation"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid invitationID"
// @Failure 403 {object} ErrorResponse "Forbidden - Invitation addressed to someone else"
// @Failure 404 {object} ErrorResponse "Not Found - Invitation not found"
// @Failure 409 {object} ErrorResponse "Conflict - Invitation already resolved"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /invitation/{invitationID}/decline [post]
func (h teamHandler) declineInvitation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		invitation, apiErr := h.resolveInvitation(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		if err := h.db.InvitationRepo().UpdateStatus(invitation.ID, models.InvitationDeclined); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update invitation", "team invitation", err))
			return
		}

		invitation.Status = models.InvitationDeclined
		h.responder.WriteJSON(w, invitation)
	}
}

// resolveInvitation loads a pending invitation addressed to the caller.
func (h teamHandler) resolveInvitation(r *http.Request) (*models.TeamInvitation, error) {
	userID, err := ctxGetUserID(r.Context())
	if err != nil {
		return nil, errs.NewUnauthorizedError("missing user identity")
	}

	invitationID, err := uuid.Parse(chi.URLParam(r, "invitationID"))
	if err != nil {
		return nil, errs.NewBadRequestError("invalid invitationID")
	}

	invitation, err := h.db.InvitationRepo().FindByID(invitationID)
	if err != nil {
		return nil, wrapDatabaseError("find invitation", "team invitation", err)
	}
	if invitation == nil {
		return nil, errs.NewNotFoundError("invitation not found")
	}
	if invitation.InviteeID != userID {
		return nil, errs.NewForbiddenError("invitation is addressed to another user")
	}
	if invitation.Status != models.InvitationPending {
		return nil, errs.NewConflictError("invitation has already been resolved")
	}
	return invitation, nil
}

// removeMember removes a member from the team
// @Summary Remove member
// @Description Removes a member; only the team creator may remove, and the creator cannot be removed
// @Tags Teams
// @Produce json
// @Param teamID path string true "Team ID" format(uuid)
// @Param userID path string true "User ID" format(uuid)
// @Success 200 {object} map[string]string "Success message"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid IDs or removing the creator"
// @Failure 403 {object} ErrorResponse "Forbidden - Caller is not the creator"
// @Failure 404 {object} ErrorResponse "Not Found - Team or member not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /team/{teamID}/member/{userID} [delete]
func (h teamHandler) removeMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("missing user identity"))
			return
		}

		teamID, err := uuid.Parse(chi.URLParam(r, "teamID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid teamID"))
			return
		}
		memberID, err := uuid.Parse(chi.URLParam(r, "userID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid userID"))
			return
		}

		team, err := h.db.TeamRepo().FindByID(teamID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find team", "team", err))
			return
		}
		if team == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("team not found"))
			return
		}
		if team.CreatorID != callerID && !ctxIsAdmin(r.Context()) {
			h.responder.WriteError(w, errs.NewForbiddenError("only the team creator can remove members"))
			return
		}
		if memberID == team.CreatorID {
			h.responder.WriteError(w, errs.NewBadRequestError("the team creator cannot be removed"))
			return
		}
		if !team.HasMember(memberID) {
			h.responder.WriteError(w, errs.NewNotFoundError("user is not a team member"))
			return
		}

		if err := h.db.TeamRepo().RemoveMember(teamID, memberID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("remove team member", "team member", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "member removed successfully",
		})
	}
}

// getTeamSkills returns the team's aggregated skill profile
// @Summary Get team skills
// @Description Unions every member's skills into one profile with per-skill member counts
// @Tags Teams
// @Produce json
// @Param teamID path string true "Team ID" format(uuid)
// @Success 200 {object} TeamSkillsResponse "Aggregated skill profile"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid teamID"
// @Failure 403 {object} ErrorResponse "Forbidden - Not a member"
// @Failure 404 {object} ErrorResponse "Not Found - Team not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /team/{teamID}/skills [get]
func (h teamHandler) getTeamSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID, err := uuid.Parse(chi.URLParam(r, "teamID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid teamID"))
			return
		}

		team, loadErr := h.loadTeamForMember(r, teamID)
		if loadErr != nil {
			h.responder.WriteError(w, loadErr)
			return
		}

		sets, err := services.TeamSkillSets(h.db, *team)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("aggregate skills", "team skills", err))
			return
		}

		h.responder.WriteJSON(w, TeamSkillsResponse{
			TeamID: team.ID,
			Size:   team.Size(),
			Skills: matching.AggregateTeamSkills(sets),
		})
	}
}

// getProjectMatches ranks open projects for the team
// @Summary Get team project matches
// @Description Scores every open project against the team's aggregated skills and size
// @Tags Teams
// @Produce json
// @Param teamID path string true "Team ID" format(uuid)
// @Success 200 {array} matching.TeamProjectMatch "Ranked project matches"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid teamID"
// @Failure 403 {object} ErrorResponse "Forbidden - Not a member"
// @Failure 404 {object} ErrorResponse "Not Found - Team not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /team/{teamID}/project-matches [get]
func (h teamHandler) getProjectMatches() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID, err := uuid.Parse(chi.URLParam(r, "teamID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid teamID"))
			return
		}

		team, loadErr := h.loadTeamForMember(r, teamID)
		if loadErr != nil {
			h.responder.WriteError(w, loadErr)
			return
		}

		skills, err := services.TeamSkillNames(h.db, *team)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("aggregate skills", "team skills", err))
			return
		}

		projects, err := h.db.ProjectRepo().FindOpen()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find projects", "projects", err))
			return
		}

		h.responder.WriteJSON(w, matching.RankProjectsForTeam(skills, team.Size(), projects))
	}
}
