package api

import (
	"net/http"

	"github.com/campusmatch/backend/database"
	"github.com/campusmatch/backend/errs"
	"github.com/campusmatch/backend/matching"
	"github.com/campusmatch/backend/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

// projectRequest is the create/update payload for a project.
type projectRequest struct {
	Title           string   `json:"title" validate:"required,max=200"`
	Description     string   `json:"description" validate:"required"`
	Difficulty      string   `json:"difficulty" validate:"required,oneof=Beginner Intermediate Advanced"`
	RequiredSkills  []string `json:"required_skills" validate:"dive,max=100"`
	PreferredSkills []string `json:"preferred_skills" validate:"dive,max=100"`
	TeamSizeMin     int      `json:"team_size_min" validate:"required,min=1"`
	TeamSizeMax     int      `json:"team_size_max" validate:"required,gtefield=TeamSizeMin"`
}

// ProjectCollection wraps a project listing.
type ProjectCollection struct {
	Projects []models.Project `json:"projects"`
	Total    int              `json:"total"`
}

// getProjects lists projects visible to the caller
// @Summary List projects
// @Description Students see open projects only; admins may pass ?all=true to include drafts and archived projects
// @Tags Projects
// @Produce json
// @Param all query bool false "Include drafts and archived projects (admin only)"
// @Success 200 {object} ProjectCollection "Project listing"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /projects [get]
func (h projectHandler) getProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			projects []models.Project
			err      error
		)
		if r.URL.Query().Get("all") == "true" && ctxIsAdmin(r.Context()) {
			projects, err = h.projectRepo.FindAll()
		} else {
			projects, err = h.projectRepo.FindOpen()
		}
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find projects", "projects", err))
			return
		}

		h.responder.WriteJSON(w, ProjectCollection{Projects: projects, Total: len(projects)})
	}
}

// getProject retrieves a specific project by ID
// @Summary Get project
// @Description Retrieves one project; students cannot see drafts or archived projects
// @Tags Projects
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} models.Project "Project details"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid projectID"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /project/{projectID} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}

		// Drafts and archived projects read as absent for students.
		if project == nil || (!project.IsOpen() && !ctxIsAdmin(r.Context())) {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// createProject creates a new draft project
// @Summary Create project
// @Description Creates a new project in draft state; it stays hidden until published
// @Tags Projects
// @Accept json
// @Produce json
// @Param project body projectRequest true "Project data"
// @Success 201 {object} models.Project "Created project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data"
// @Failure 409 {object} ErrorResponse "Conflict - Title already in use"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /project [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("missing user identity"))
			return
		}

		var req projectRequest
		if apiErr := decodeAndValidate(r, &req); apiErr != nil {
			h.logger.Warn().Str("field", apiErr.Field).Msg("Rejected project payload")
			h.responder.WriteError(w, apiErr)
			return
		}

		project := models.Project{
			Title:           req.Title,
			Description:     req.Description,
			Difficulty:      req.Difficulty,
			RequiredSkills:  matching.Dedupe(req.RequiredSkills),
			PreferredSkills: matching.Dedupe(req.PreferredSkills),
			TeamSizeMin:     req.TeamSizeMin,
			TeamSizeMax:     req.TeamSizeMax,
			CreatedBy:       userID,
		}

		if err := h.projectRepo.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create project", "project", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, project)
	}
}

// updateProject updates an existing project
// @Summary Update project
// @Description Updates a project's fields; archived projects are immutable
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Param project body projectRequest true "Updated project data"
// @Success 200 {object} models.Project "Updated project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 409 {object} ErrorResponse "Conflict - Project is archived"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /project/{projectID} [put]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		existing, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}
		if existing.Archived {
			h.responder.WriteError(w, errs.NewConflictError("archived projects cannot be modified"))
			return
		}

		var req projectRequest
		if apiErr := decodeAndValidate(r, &req); apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		existing.Title = req.Title
		existing.Description = req.Description
		existing.Difficulty = req.Difficulty
		existing.RequiredSkills = matching.Dedupe(req.RequiredSkills)
		existing.PreferredSkills = matching.Dedupe(req.PreferredSkills)
		existing.TeamSizeMin = req.TeamSizeMin
		existing.TeamSizeMax = req.TeamSizeMax

		if err := h.projectRepo.Update(existing); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update project", "project", err))
			return
		}

		h.responder.WriteJSON(w, existing)
	}
}

// publishProject makes a draft project visible to students
// @Summary Publish project
// @Description Marks a draft project as published, making it visible and open for applications
// @Tags Projects
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} models.Project "Published project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid projectID"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 409 {object} ErrorResponse "Conflict - Project is archived"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /project/{projectID}/publish [post]
func (h projectHandler) publishProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}
		if project.Archived {
			h.responder.WriteError(w, errs.NewConflictError("archived projects cannot be published"))
			return
		}

		if err := h.projectRepo.SetPublished(projectID, true); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("publish project", "project", err))
			return
		}

		project.Published = true
		h.responder.WriteJSON(w, project)
	}
}

// archiveProject hides a project and freezes it
// @Summary Archive project
// @Description Archives a project; archived projects are hidden from students and immutable
// @Tags Projects
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} models.Project "Archived project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid projectID"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /project/{projectID}/archive [post]
func (h projectHandler) archiveProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		if err := h.projectRepo.SetArchived(projectID, true); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("archive project", "project", err))
			return
		}

		project.Archived = true
		h.responder.WriteJSON(w, project)
	}
}

// deleteProject deletes a project by ID
// @Summary Delete project
// @Description Permanently removes a project
// @Tags Projects
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} map[string]string "Success message"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid projectID"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /project/{projectID} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		if err := h.projectRepo.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete project", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}
