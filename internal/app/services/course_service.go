package services

import (
	"context"
	"fmt"

	"github.com/selim/gradebook/internal/app/models"
	"github.com/selim/gradebook/internal/app/models/dto"
	"github.com/selim/gradebook/internal/app/repositories"
)

// courseRepository is the repository surface CourseService needs.
type courseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetAll(ctx context.Context, filter repositories.CourseFilter) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

// CourseService handles course-related operations
type CourseService struct {
	courseRepo courseRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo courseRepository) *CourseService {
	return &CourseService{courseRepo: courseRepo}
}

// CreateCourse creates a new course
func (s *CourseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	if err := validateDecimalPrecision(req.Credits, creditsMaxDigits, creditsScale, "credits"); err != nil {
		return nil, err
	}

	course := &models.Course{
		CourseID:   req.CourseID,
		CourseName: req.CourseName,
		Credits:    req.Credits,
		Hours:      req.Hours,
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// GetCourseByID retrieves a course by ID
func (s *CourseService) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// GetAllCourses retrieves all courses matching the filter
func (s *CourseService) GetAllCourses(ctx context.Context, filter repositories.CourseFilter) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// UpdateCourse updates an existing course
func (s *CourseService) UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	if err := validateDecimalPrecision(req.Credits, creditsMaxDigits, creditsScale, "credits"); err != nil {
		return nil, err
	}

	course := &models.Course{
		ID:         id,
		CourseID:   req.CourseID,
		CourseName: req.CourseName,
		Credits:    req.Credits,
		Hours:      req.Hours,
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// DeleteCourse deletes a course by ID
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) error {
	return s.courseRepo.Delete(ctx, id)
}
