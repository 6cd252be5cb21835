package services

import (
	"github.com/selim/gradebook/internal/app/repositories"
)

// Services holds all the service instances
type Services struct {
	CourseService       *CourseService
	ClassSectionService *ClassSectionService
	StudentService      *StudentService
	GradeService        *GradeService
}

// NewServices initializes all services over the given repositories
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		CourseService:       NewCourseService(repos.CourseRepository),
		ClassSectionService: NewClassSectionService(repos.ClassSectionRepository, repos.CourseRepository),
		StudentService:      NewStudentService(repos.StudentRepository, repos.GradeRepository),
		GradeService:        NewGradeService(repos.GradeRepository, repos.StudentRepository, repos.ClassSectionRepository),
	}
}
