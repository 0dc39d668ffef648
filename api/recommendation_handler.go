package api

import (
	"net/http"

	"github.com/campusmatch/backend/database"
	"github.com/campusmatch/backend/errs"
	"github.com/campusmatch/backend/matching"
	"github.com/campusmatch/backend/models"
	"github.com/campusmatch/backend/services"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

type recommendationHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        database.Database
}

func newRecommendationHandler(db database.Database) recommendationHandler {
	logger := log.With().Str("handlerName", "recommendationHandler").Logger()

	return recommendationHandler{
		responder: NewResponder(logger),
		logger:    logger,
		db:        db,
	}
}

// getRecommendations returns the caller's project recommendations
// @Summary Get my recommendations
// @Description Returns cached recommendations when the caller's skill set is unchanged; recomputes otherwise or when ?refresh=true
// @Tags Recommendations
// @Produce json
// @Param refresh query bool false "Force recomputation"
// @Success 200 {array} models.ProjectRecommendation "Recommendations, highest score first"
// @Failure 404 {object} ErrorResponse "Not Found - Profile not created yet"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /recommendations [get]
func (h recommendationHandler) getRecommendations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("missing user identity"))
			return
		}

		profile, err := h.db.StudentProfileRepo().FindByUserID(userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find profile", "student profile", err))
			return
		}
		if profile == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("create a profile to receive recommendations"))
			return
		}

		skills, err := services.UserSkillSet(h.db, userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("load skills", "user skills", err))
			return
		}
		hash := matching.SkillSetHash(skills)

		if r.URL.Query().Get("refresh") != "true" {
			cached, err := h.db.RecommendationRepo().FindByUser(userID)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("find recommendations", "recommendations", err))
				return
			}
			if len(cached) > 0 && cached[0].SkillSetHash == hash {
				h.responder.WriteJSON(w, cached)
				return
			}
		}

		rows, err := h.recompute(userID, hash, skills, profile.DifficultyPreference)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, rows)
	}
}

// recompute scores every open project, replaces the cached rows and
// returns the fresh set.
func (h recommendationHandler) recompute(userID uuid.UUID, hash string, skills []string, difficultyPreference string) ([]models.ProjectRecommendation, error) {
	projects, err := h.db.ProjectRepo().FindOpen()
	if err != nil {
		return nil, wrapDatabaseError("find projects", "projects", err)
	}

	recommendations := matching.RecommendProjects(skills, difficultyPreference, projects)

	rows := make([]models.ProjectRecommendation, 0, len(recommendations))
	for _, rec := range recommendations {
		rows = append(rows, models.ProjectRecommendation{
			UserID:     userID,
			ProjectID:  rec.Project.ID,
			MatchScore: rec.MatchScore,
			Reasoning:  rec.Reasoning,
			SkillMatchDetails: datatypes.NewJSONType(models.SkillMatchDetails{
				MatchingSkills:     rec.MatchingSkills,
				TotalProjectSkills: rec.TotalProjectSkills,
				UserSkills:         skills,
			}),
			SkillSetHash: hash,
			Project:      rec.Project,
		})
	}

	if err := h.db.RecommendationRepo().ReplaceForUser(userID, rows); err != nil {
		return nil, wrapDatabaseError("replace recommendations", "recommendations", err)
	}

	h.logger.Info().
		Str("userID", userID.String()).
		Int("count", len(rows)).
		Msg("Recomputed recommendations")
	return rows, nil
}
