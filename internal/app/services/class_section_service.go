package services

import (
	"context"
	"fmt"

	"github.com/selim/gradebook/internal/app/models"
	"github.com/selim/gradebook/internal/app/models/dto"
	"github.com/selim/gradebook/internal/app/repositories"
)

// classSectionRepository is the repository surface ClassSectionService needs.
type classSectionRepository interface {
	Create(ctx context.Context, section *models.ClassSection) error
	GetByID(ctx context.Context, id int64) (*models.ClassSection, error)
	GetAll(ctx context.Context, filter repositories.SectionFilter) ([]*models.ClassSection, error)
	Update(ctx context.Context, section *models.ClassSection) error
	Delete(ctx context.Context, id int64) error
}

// courseReader resolves course references of a section.
type courseReader interface {
	GetByID(ctx context.Context, id int64) (*models.Course, error)
}

// ClassSectionService handles class section-related operations
type ClassSectionService struct {
	sectionRepo classSectionRepository
	courseRepo  courseReader
}

// NewClassSectionService creates a new class section service instance
func NewClassSectionService(sectionRepo classSectionRepository, courseRepo courseReader) *ClassSectionService {
	return &ClassSectionService{
		sectionRepo: sectionRepo,
		courseRepo:  courseRepo,
	}
}

// CreateClassSection creates a new class section. The referenced course must
// already exist.
func (s *ClassSectionService) CreateClassSection(ctx context.Context, req *dto.CreateClassSectionRequest) (*models.ClassSection, error) {
	course, err := s.courseRepo.GetByID(ctx, req.Course)
	if err != nil {
		return nil, err
	}

	section := &models.ClassSection{
		SectionID:   req.SectionID,
		SectionName: req.SectionName,
		Semester:    req.Semester,
		Location:    req.Location,
		CourseID:    course.ID,
		CourseName:  course.CourseName,
	}

	if err := s.sectionRepo.Create(ctx, section); err != nil {
		return nil, err
	}

	return section, nil
}

// GetClassSectionByID retrieves a class section by ID
func (s *ClassSectionService) GetClassSectionByID(ctx context.Context, id int64) (*models.ClassSection, error) {
	return s.sectionRepo.GetByID(ctx, id)
}

// GetAllClassSections retrieves all class sections matching the filter
func (s *ClassSectionService) GetAllClassSections(ctx context.Context, filter repositories.SectionFilter) ([]*models.ClassSection, error) {
	sections, err := s.sectionRepo.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error retrieving class sections: %w", err)
	}
	return sections, nil
}

// UpdateClassSection updates an existing class section
func (s *ClassSectionService) UpdateClassSection(ctx context.Context, id int64, req *dto.UpdateClassSectionRequest) (*models.ClassSection, error) {
	course, err := s.courseRepo.GetByID(ctx, req.Course)
	if err != nil {
		return nil, err
	}

	section := &models.ClassSection{
		ID:          id,
		SectionID:   req.SectionID,
		SectionName: req.SectionName,
		Semester:    req.Semester,
		Location:    req.Location,
		CourseID:    course.ID,
		CourseName:  course.CourseName,
	}

	if err := s.sectionRepo.Update(ctx, section); err != nil {
		return nil, err
	}

	return section, nil
}

// DeleteClassSection deletes a class section by ID
func (s *ClassSectionService) DeleteClassSection(ctx context.Context, id int64) error {
	return s.sectionRepo.Delete(ctx, id)
}
