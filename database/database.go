package database

import (
	"gorm.io/gorm"
)

type Database struct {
	studentProfileRepo *StudentProfileRepo
	userSkillRepo      *UserSkillRepo
	projectRepo        *ProjectRepo
	teamRepo           *TeamRepo
	invitationRepo     *InvitationRepo
	applicationRepo    *ApplicationRepo
	recommendationRepo *RecommendationRepo
	gradeRepo          *GradeRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		studentProfileRepo: NewStudentProfileRepo(db),
		userSkillRepo:      NewUserSkillRepo(db),
		projectRepo:        NewProjectRepo(db),
		teamRepo:           NewTeamRepo(db),
		invitationRepo:     NewInvitationRepo(db),
		applicationRepo:    NewApplicationRepo(db),
		recommendationRepo: NewRecommendationRepo(db),
		gradeRepo:          NewGradeRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) StudentProfileRepo() *StudentProfileRepo {
	return d.studentProfileRepo
}

func (d Database) UserSkillRepo() *UserSkillRepo {
	return d.userSkillRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) TeamRepo() *TeamRepo {
	return d.teamRepo
}

func (d Database) InvitationRepo() *InvitationRepo {
	return d.invitationRepo
}

func (d Database) ApplicationRepo() *ApplicationRepo {
	return d.applicationRepo
}

func (d Database) RecommendationRepo() *RecommendationRepo {
	return d.recommendationRepo
}

func (d Database) GradeRepo() *GradeRepo {
	return d.gradeRepo
}
