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

type gradeHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        database.Database
}

func newGradeHandler(db database.Database) gradeHandler {
	logger := log.With().Str("handlerName", "gradeHandler").Logger()

	return gradeHandler{
		responder: NewResponder(logger),
		logger:    logger,
		db:        db,
	}
}

// createGradeRequest is the grade creation payload.
type createGradeRequest struct {
	ProjectID uuid.UUID `json:"project_id" validate:"required"`
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Grade     string    `json:"grade" validate:"required,max=10"`
	Feedback  string    `json:"feedback" validate:"max=10000"`
}

// createGrade records a grade for a student on a project
// @Summary Create grade
// @Description Records an unreleased grade; students cannot see it until released
// @Tags Grades
// @Accept json
// @Produce json
// @Param grade body createGradeRequest true "Grade data"
// @Success 201 {object} models.Grade "Created grade"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid grade data"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 409 {object} ErrorResponse "Conflict - Grade already exists for this student and project"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /grade [post]
func (h gradeHandler) createGrade() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		graderID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("missing user identity"))
			return
		}

		var req createGradeRequest
		if apiErr := decodeAndValidate(r, &req); apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		project, err := h.db.ProjectRepo().FindByID(req.ProjectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		grade := models.Grade{
			ProjectID: req.ProjectID,
			StudentID: req.StudentID,
			Grade:     req.Grade,
			Feedback:  req.Feedback,
			GradedBy:  graderID,
		}
		if err := h.db.GradeRepo().Add(&grade); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create grade", "grade", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, grade)
	}
}

// releaseGrade makes a grade visible to its student
// @Summary Release grade
// @Description Releases a grade to its student and sends a best-effort email notification
// @Tags Grades
// @Produce json
// @Param gradeID path string true "Grade ID" format(uuid)
// @Success 200 {object} models.Grade "Released grade"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid gradeID"
// @Failure 404 {object} ErrorResponse "Not Found - Grade not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /grade/{gradeID}/release [post]
func (h gradeHandler) releaseGrade() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gradeID, err := uuid.Parse(chi.URLParam(r, "gradeID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid gradeID"))
			return
		}

		grade, err := h.db.GradeRepo().FindByID(gradeID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find grade", "grade", err))
			return
		}
		if grade == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("grade not found"))
			return
		}

		if err := h.db.GradeRepo().Release(gradeID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("release grade", "grade", err))
			return
		}
		grade.Released = true

		// Email is best-effort and must not delay the response.
		go h.notifyStudent(grade.StudentID, grade.ProjectID)

		h.responder.WriteJSON(w, grade)
	}
}

func (h gradeHandler) notifyStudent(studentID, projectID uuid.UUID) {
	profile, err := h.db.StudentProfileRepo().FindByUserID(studentID)
	if err != nil || profile == nil || profile.Email == "" {
		h.logger.Warn().Str("studentID", studentID.String()).Msg("No email on file for student, skipping grade notification")
		return
	}

	title := "your project"
	if project, err := h.db.ProjectRepo().FindByID(projectID); err == nil && project != nil {
		title = project.Title
	}

	if err := services.NotifyGradeReleased(profile.Email, title); err != nil {
		h.logger.Error().Err(errs.NewNotificationError(profile.Email, err)).Msg("Failed to send grade notification")
	}
}

// getGrades lists grades visible to the caller
// @Summary List grades
// @Description Students get their released grades; admins pass ?projectID= to list every grade for a project
// @Tags Grades
// @Produce json
// @Param projectID query string false "Project ID (admin only)" format(uuid)
// @Success 200 {array} models.Grade "Grades"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid projectID"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /grades [get]
func (h gradeHandler) getGrades() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("missing user identity"))
			return
		}

		if projectIDStr := r.URL.Query().Get("projectID"); projectIDStr != "" && ctxIsAdmin(r.Context()) {
			projectID, err := uuid.Parse(projectIDStr)
			if err != nil {
				h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
				return
			}
			grades, err := h.db.GradeRepo().FindByProject(projectID)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("find grades", "grades", err))
				return
			}
			h.responder.WriteJSON(w, grades)
			return
		}

		grades, err := h.db.GradeRepo().FindReleasedByStudent(userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find grades", "grades", err))
			return
		}

		h.responder.WriteJSON(w, grades)
	}
}
