package api

import (
	"net/http"

	"github.com/campusmatch/backend/database"
	"github.com/campusmatch/backend/errs"
	"github.com/campusmatch/backend/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type skillHandler struct {
	responder Responder
	logger    zerolog.Logger
	skillRepo *database.UserSkillRepo
}

func newSkillHandler(skillRepo *database.UserSkillRepo) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()

	return skillHandler{
		responder: NewResponder(logger),
		logger:    logger,
		skillRepo: skillRepo,
	}
}

// addSkillRequest is the payload for adding one granular skill row.
type addSkillRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Proficiency int    `json:"proficiency" validate:"omitempty,min=1,max=5"`
}

// getSkills lists the caller's skill rows
// @Summary Get my skills
// @Description Retrieves the authenticated user's granular skill rows
// @Tags Skills
// @Produce json
// @Success 200 {array} models.UserSkill "Skill rows"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /skills [get]
func (h skillHandler) getSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("missing user identity"))
			return
		}

		skills, err := h.skillRepo.FindByUserID(userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find skills", "user skills", err))
			return
		}

		h.responder.WriteJSON(w, skills)
	}
}

// addSkill adds one skill row for the caller
// @Summary Add a skill
// @Description Adds a named skill with an optional 1-5 proficiency for the authenticated user
// @Tags Skills
// @Accept json
// @Produce json
// @Param skill body addSkillRequest true "Skill data"
// @Success 201 {object} models.UserSkill "Created skill row"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid skill data"
// @Failure 409 {object} ErrorResponse "Conflict - Skill already exists"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /skill [post]
func (h skillHandler) addSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("missing user identity"))
			return
		}

		var req addSkillRequest
		if apiErr := decodeAndValidate(r, &req); apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		if req.Proficiency == 0 {
			req.Proficiency = 1
		}

		skill := models.UserSkill{
			UserID:      userID,
			Name:        req.Name,
			Proficiency: req.Proficiency,
		}
		if err := h.skillRepo.Add(&skill); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create skill", "user skill", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, skill)
	}
}

// deleteSkill removes one of the caller's skill rows
// @Summary Delete a skill
// @Description Removes a skill row owned by the authenticated user
// @Tags Skills
// @Produce json
// @Param skillID path string true "Skill ID" format(uuid)
// @Success 200 {object} map[string]string "Success message"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid skillID"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /skill/{skillID} [delete]
func (h skillHandler) deleteSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("missing user identity"))
			return
		}

		skillID, err := uuid.Parse(chi.URLParam(r, "skillID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid skillID"))
			return
		}

		// Delete is scoped to the owner, so a foreign ID is a silent no-op.
		if err := h.skillRepo.Delete(skillID, userID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete skill", "user skill", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "skill deleted successfully",
		})
	}
}
