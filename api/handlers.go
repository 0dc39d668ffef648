package api

import (
	"github.com/campusmatch/backend/database"
	"github.com/campusmatch/backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, ranker services.ApplicationRanker) *routeHandlers {
	return &routeHandlers{
		profileHandler:        newProfileHandler(database.StudentProfileRepo(), database.UserSkillRepo()),
		skillHandler:          newSkillHandler(database.UserSkillRepo()),
		projectHandler:        newProjectHandler(database.ProjectRepo()),
		teamHandler:           newTeamHandler(database),
		applicationHandler:    newApplicationHandler(database, ranker),
		recommendationHandler: newRecommendationHandler(database),
		gradeHandler:          newGradeHandler(database),
	}
}
