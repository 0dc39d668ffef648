package api

import (
	"net/http"

	"github.com/campusmatch/backend/database"
	"github.com/campusmatch/backend/errs"
	"github.com/campusmatch/backend/matching"
	"github.com/campusmatch/backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type profileHandler struct {
	responder   Responder
	logger      zerolog.Logger
	profileRepo *database.StudentProfileRepo
	skillRepo   *database.UserSkillRepo
}

func newProfileHandler(profileRepo *database.StudentProfileRepo, skillRepo *database.UserSkillRepo) profileHandler {
	logger := log.With().Str("handlerName", "profileHandler").Logger()

	return profileHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		profileRepo: profileRepo,
		skillRepo:   skillRepo,
	}
}

// upsertProfileRequest is the profile create/update payload.
type upsertProfileRequest struct {
	FullName             string   `json:"full_name" validate:"required"`
	Email                string   `json:"email" validate:"required,email"`
	AcademicLevel        string   `json:"academic_level"`
	FieldOfStudy         string   `json:"field_of_study"`
	DifficultyPreference string   `json:"difficulty_preference" validate:"omitempty,oneof=beginner intermediate advanced"`
	Skills               []string `json:"skills" validate:"dive,max=100"`
	Interests            []string `json:"interests" validate:"dive,max=100"`
}

// ProfileResponse is a profile together with the caller's granular skill rows.
type ProfileResponse struct {
	Profile models.StudentProfile `json:"profile"`
	Skills  []models.UserSkill    `json:"skills"`
}

// getProfile retrieves the caller's profile
// @Summary Get my profile
// @Description Retrieves the authenticated user's profile and skill rows
// @Tags Profile
// @Produce json
// @Success 200 {object} ProfileResponse "Profile with skills"
// @Failure 404 {object} ErrorResponse "Not Found - Profile not created yet"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /profile [get]
func (h profileHandler) getProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("missing user identity"))
			return
		}

		profile, err := h.profileRepo.FindByUserID(userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find profile", "student profile", err))
			return
		}
		if profile == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("profile not found"))
			return
		}

		skills, err := h.skillRepo.FindByUserID(userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find skills", "user skills", err))
			return
		}

		h.responder.WriteJSON(w, ProfileResponse{Profile: *profile, Skills: skills})
	}
}

// upsertProfile creates or replaces the caller's profile
// @Summary Upsert my profile
// @Description Creates the authenticated user's profile, or replaces it if one exists
// @Tags Profile
// @Accept json
// @Produce json
// @Param profile body upsertProfileRequest true "Profile data"
// @Success 200 {object} models.StudentProfile "Saved profile"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid profile data"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /profile [put]
func (h profileHandler) upsertProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("missing user identity"))
			return
		}

		var req upsertProfileRequest
		if apiErr := decodeAndValidate(r, &req); apiErr != nil {
			h.logger.Warn().Str("field", apiErr.Field).Msg("Rejected profile payload")
			h.responder.WriteError(w, apiErr)
			return
		}

		profile := models.StudentProfile{
			UserID:               userID,
			FullName:             req.FullName,
			Email:                req.Email,
			AcademicLevel:        req.AcademicLevel,
			FieldOfStudy:         req.FieldOfStudy,
			DifficultyPreference: req.DifficultyPreference,
			Skills:               matching.Dedupe(req.Skills),
			Interests:            matching.Dedupe(req.Interests),
		}

		if err := h.profileRepo.Upsert(&profile); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("upsert profile", "student profile", err))
			return
		}

		h.responder.WriteJSON(w, profile)
	}
}
