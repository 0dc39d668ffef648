package api

import (
	"net/http"

	"github.com/campusmatch/backend/database"
	"github.com/campusmatch/backend/errs"
	"github.com/campusmatch/backend/models"
	"github.com/campusmatch/backend/services"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type applicationHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        database.Database
	ranker    services.ApplicationRanker
	assembler services.RankingAssembler
}

func newApplicationHandler(db database.Database, ranker services.ApplicationRanker) applicationHandler {
	logger := log.With().Str("handlerName", "applicationHandler").Logger()

	return applicationHandler{
		responder: NewResponder(logger),
		logger:    logger,
		db:        db,
		ranker:    ranker,
		assembler: services.NewRankingAssembler(db),
	}
}

// applyRequest is the application submission payload. TeamID is required
// when applying as a team.
type applyRequest struct {
	ProjectID     uuid.UUID `json:"project_id" validate:"required"`
	ApplicantType string    `json:"applicant_type" validate:"required,oneof=individual team"`
	TeamID        uuid.UUID `json:"team_id" validate:"required_if=ApplicantType team"`
	Responses     string    `json:"responses" validate:"max=10000"`
}

// updateStatusRequest sets a new application status.
type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved waitlisted rejected"`
}

// ApplicationResponse is a submitted application plus a size-compatibility
// flag for team applications. Incompatible sizes warn, they do not block.
type ApplicationResponse struct {
	Application    models.Application `json:"application"`
	SizeCompatible bool               `json:"size_compatible"`
}

// applyTarget validates the project an application targets. Drafts and
// archived projects read as absent so applying cannot reveal them.
func applyTarget(project *models.Project) *errs.ApiErr {
	if project == nil || !project.IsOpen() {
		return errs.NewNotFoundError("project not found")
	}
	return nil
}

// apply submits an application to an open project
// @Summary Apply to a project
// @Description Submits an individual or team application; team applications require the caller to be the team creator
// @Tags Applications
// @Accept json
// @Produce json
// @Param application body applyRequest true "Application data"
// @Success 201 {object} ApplicationResponse "Submitted application"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid payload"
// @Failure 403 {object} ErrorResponse "Forbidden - Caller is not the team creator"
// @Failure 404 {object} ErrorResponse "Not Found - Project not open or team not found"
// @Failure 409 {object} ErrorResponse "Conflict - Duplicate application"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /application [post]
func (h applicationHandler) apply() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("missing user identity"))
			return
		}

		var req applyRequest
		if apiErr := decodeAndValidate(r, &req); apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		project, err := h.db.ProjectRepo().FindByID(req.ProjectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if apiErr := applyTarget(project); apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		applicantID := userID
		applicantSize := 1
		if req.ApplicantType == models.ApplicantTeam {
			team, err := h.db.TeamRepo().FindByID(req.TeamID)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("find team", "team", err))
				return
			}
			if team == nil {
				h.responder.WriteError(w, errs.NewNotFoundError("team not found"))
				return
			}
			if team.CreatorID != userID {
				h.responder.WriteError(w, errs.NewForbiddenError("only the team creator can apply on behalf of a team"))
				return
			}
			applicantID = team.ID
			applicantSize = team.Size()
		}

		exists, err := h.db.ApplicationRepo().Exists(req.ProjectID, applicantID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("check applications", "application", err))
			return
		}
		if exists {
			h.responder.WriteError(w, errs.NewConflictError("this applicant already applied to the project"))
			return
		}

		application := models.Application{
			ProjectID:     req.ProjectID,
			ApplicantType: req.ApplicantType,
			ApplicantID:   applicantID,
			Responses:     req.Responses,
			Status:        models.ApplicationPending,
			SubmittedBy:   userID,
		}
		if err := h.db.ApplicationRepo().Add(&application); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create application", "application", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, ApplicationResponse{
			Application:    application,
			SizeCompatible: applicantSize >= project.TeamSizeMin && applicantSize <= project.TeamSizeMax,
		})
	}
}

// getMyApplications lists applications the caller submitted
// @Summary List my applications
// @Description Retrieves applications submitted by the authenticated user, individually or for a team
// @Tags Applications
// @Produce json
// @Success 200 {array} models.Application "Applications"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /applications/mine [get]
func (h applicationHandler) getMyApplications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("missing user identity"))
			return
		}

		applications, err := h.db.ApplicationRepo().FindBySubmitter(userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find applications", "applications", err))
			return
		}

		h.responder.WriteJSON(w, applications)
	}
}

// getProjectApplications lists all applications for a project
// @Summary List project applications
// @Description Retrieves every application for the project named in the query
// @Tags Applications
// @Produce json
// @Param projectID query string true "Project ID" format(uuid)
// @Success 200 {array} models.Application "Applications"
// @Failure 400 {object} ErrorResponse "Bad Request - Missing or invalid projectID"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /applications [get]
func (h applicationHandler) getProjectApplications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(r.URL.Query().Get("projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("missing or invalid projectID"))
			return
		}

		applications, err := h.db.ApplicationRepo().FindByProject(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find applications", "applications", err))
			return
		}

		h.responder.WriteJSON(w, applications)
	}
}

// updateStatus sets an application's status
// @Summary Update application status
// @Description Sets a new status on an application; any transition is allowed
// @Tags Applications
// @Accept json
// @Produce json
// @Param applicationID path string true "Application ID" format(uuid)
// @Param status body updateStatusRequest true "New status"
// @Success 200 {object} models.Application "Updated application"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid payload"
// @Failure 404 {object} ErrorResponse "Not Found - Application not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /application/{applicationID}/status [put]
func (h applicationHandler) updateStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		applicationID, err := uuid.Parse(chi.URLParam(r, "applicationID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid applicationID"))
			return
		}

		var req updateStatusRequest
		if apiErr := decodeAndValidate(r, &req); apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		application, err := h.db.ApplicationRepo().FindByID(applicationID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find application", "application", err))
			return
		}
		if application == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("application not found"))
			return
		}

		if err := h.db.ApplicationRepo().UpdateStatus(applicationID, req.Status); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update application", "application", err))
			return
		}

		application.Status = req.Status
		h.responder.WriteJSON(w, application)
	}
}

// rankApplications asks the AI ranker to order a project's applications
// @Summary Rank applications
// @Description Assembles every application's skill profile and asks the AI ranker for a suitability ranking
// @Tags Applications
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} services.RankResult "Ranking"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid projectID or no applications"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 502 {object} ErrorResponse "Bad Gateway - Ranker failed or returned malformed output"
// @Failure 503 {object} ErrorResponse "Service Unavailable - Ranker not configured"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /project/{projectID}/rank-applications [post]
func (h applicationHandler) rankApplications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.ranker == nil {
			h.responder.WriteError(w, errs.NewApiErr(http.StatusServiceUnavailable, "application ranking is not configured"))
			return
		}

		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		project, err := h.db.ProjectRepo().FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		applications, err := h.db.ApplicationRepo().FindByProject(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find applications", "applications", err))
			return
		}
		if len(applications) == 0 {
			h.responder.WriteError(w, errs.NewBadRequestError("project has no applications to rank"))
			return
		}

		req, err := h.assembler.BuildRankRequest(r.Context(), *project, applications)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("assemble ranking payload", "applications", err))
			return
		}

		result, err := h.ranker.RankApplications(r.Context(), req)
		if err != nil {
			h.logger.Error().Err(err).Str("projectID", projectID.String()).Msg("Application ranking failed")
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, result)
	}
}
