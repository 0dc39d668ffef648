package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes sets up all routes with authentication. Admin-only routes
// sit behind an additional role check.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)
		r.Use(ColoredHTTPLoggingMiddleware)

		// Profile and skills
		r.Get("/profile", handlers.profileHandler.getProfile())
		r.Put("/profile", handlers.profileHandler.upsertProfile())
		r.Get("/skills", handlers.skillHandler.getSkills())
		r.Post("/skill", handlers.skillHandler.addSkill())
		r.Delete("/skill/{skillID}", handlers.skillHandler.deleteSkill())

		// Projects (read side)
		r.Get("/projects", handlers.projectHandler.getProjects())
		r.Get("/project/{projectID}", handlers.projectHandler.getProject())

		// Personal project recommendations
		r.Get("/recommendations", handlers.recommendationHandler.getRecommendations())

		// Teams and invitations
		r.Post("/team", handlers.teamHandler.createTeam())
		r.Get("/teams", handlers.teamHandler.getMyTeams())
		r.Get("/team/{teamID}", handlers.teamHandler.getTeam())
		r.Post("/team/{teamID}/invite", handlers.teamHandler.inviteMember())
		r.Delete("/team/{teamID}/member/{userID}", handlers.teamHandler.removeMember())
		r.Get("/team/{teamID}/skills", handlers.teamHandler.getTeamSkills())
		r.Get("/team/{teamID}/project-matches", handlers.teamHandler.getProjectMatches())
		r.Get("/invitations", handlers.teamHandler.getMyInvitations())
		r.Post("/invitation/{invitationID}/accept", handlers.teamHandler.acceptInvitation())
		r.Post("/invitation/{invitationID}/decline", handlers.teamHandler.declineInvitation())

		// Applications
		r.Post("/application", handlers.applicationHandler.apply())
		r.Get("/applications/mine", handlers.applicationHandler.getMyApplications())

		// Grades (students see released rows only)
		r.Get("/grades", handlers.gradeHandler.getGrades())

		// Admin-only endpoints
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.requireAdmin)

			r.Post("/project", handlers.projectHandler.createProject())
			r.Put("/project/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/project/{projectID}", handlers.projectHandler.deleteProject())
			r.Post("/project/{projectID}/publish", handlers.projectHandler.publishProject())
			r.Post("/project/{projectID}/archive", handlers.projectHandler.archiveProject())

			r.Get("/applications", handlers.applicationHandler.getProjectApplications())
			r.Put("/application/{applicationID}/status", handlers.applicationHandler.updateStatus())
			r.Post("/project/{projectID}/rank-applications", handlers.applicationHandler.rankApplications())

			r.Post("/grade", handlers.gradeHandler.createGrade())
			r.Post("/grade/{gradeID}/release", handlers.gradeHandler.releaseGrade())
		})
	})
}
