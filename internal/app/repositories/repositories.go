package repositories

import (
	"github.com/selim/gradebook/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	CourseRepository       *CourseRepository
	ClassSectionRepository *ClassSectionRepository
	StudentRepository      *StudentRepository
	GradeRepository        *GradeRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		CourseRepository:       NewCourseRepository(database.Pool),
		ClassSectionRepository: NewClassSectionRepository(database.Pool),
		StudentRepository:      NewStudentRepository(database.Pool),
		GradeRepository:        NewGradeRepository(database),
	}
}
