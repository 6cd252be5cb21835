package services

import (
	"context"
	"errors"

	"github.com/selim/gradebook/internal/app/models"
	"github.com/selim/gradebook/internal/app/models/dto"
	"github.com/selim/gradebook/internal/pkg/apperrors"
)

// gradeRepository is the repository surface GradeService needs.
type gradeRepository interface {
	Create(ctx context.Context, grade *models.Grade) error
	CreateBatch(ctx context.Context, grades []*models.Grade) error
	GetByID(ctx context.Context, id int64) (*models.Grade, error)
	GetAll(ctx context.Context) ([]*models.Grade, error)
	GetBySectionID(ctx context.Context, sectionID int64) ([]*models.Grade, error)
	ExistsForStudentSection(ctx context.Context, studentID, sectionID int64) (bool, error)
	Update(ctx context.Context, grade *models.Grade) error
	Delete(ctx context.Context, id int64) error
}

// studentReader resolves student references of a grade.
type studentReader interface {
	GetByID(ctx context.Context, id int64) (*models.Student, error)
}

// sectionReader resolves class section references of a grade.
type sectionReader interface {
	GetByID(ctx context.Context, id int64) (*models.ClassSection, error)
}

// GradeService handles grade-related operations
type GradeService struct {
	gradeRepo   gradeRepository
	studentRepo studentReader
	sectionRepo sectionReader
}

// NewGradeService creates a new grade service instance
func NewGradeService(gradeRepo gradeRepository, studentRepo studentReader, sectionRepo sectionReader) *GradeService {
	return &GradeService{
		gradeRepo:   gradeRepo,
		studentRepo: studentRepo,
		sectionRepo: sectionRepo,
	}
}

// CreateGrade creates a new grade and returns it with its display names
func (s *GradeService) CreateGrade(ctx context.Context, req *dto.CreateGradeRequest) (*models.Grade, error) {
	if err := validateDecimalPrecision(req.Score, scoreMaxDigits, scoreScale, "score"); err != nil {
		return nil, err
	}

	grade := &models.Grade{
		StudentID:      req.Student,
		ClassSectionID: req.ClassSection,
		Score:          req.Score,
	}

	if err := s.gradeRepo.Create(ctx, grade); err != nil {
		return nil, err
	}

	return s.gradeRepo.GetByID(ctx, grade.ID)
}

// GetGradeByID retrieves a grade by ID
func (s *GradeService) GetGradeByID(ctx context.Context, id int64) (*models.Grade, error) {
	return s.gradeRepo.GetByID(ctx, id)
}

// GetAllGrades retrieves all grades
func (s *GradeService) GetAllGrades(ctx context.Context) ([]*models.Grade, error) {
	return s.gradeRepo.GetAll(ctx)
}

// GetSectionGrades retrieves all grades of one class section. A section with
// no grades, or an unknown section id, yields an empty list.
func (s *GradeService) GetSectionGrades(ctx context.Context, sectionID int64) ([]*models.Grade, error) {
	return s.gradeRepo.GetBySectionID(ctx, sectionID)
}

// UpdateGrade updates an existing grade and returns it with its display names
func (s *GradeService) UpdateGrade(ctx context.Context, id int64, req *dto.UpdateGradeRequest) (*models.Grade, error) {
	if err := validateDecimalPrecision(req.Score, scoreMaxDigits, scoreScale, "score"); err != nil {
		return nil, err
	}

	grade := &models.Grade{
		ID:             id,
		StudentID:      req.Student,
		ClassSectionID: req.ClassSection,
		Score:          req.Score,
	}

	if err := s.gradeRepo.Update(ctx, grade); err != nil {
		return nil, err
	}

	return s.gradeRepo.GetByID(ctx, id)
}

// DeleteGrade deletes a grade by ID
func (s *GradeService) DeleteGrade(ctx context.Context, id int64) error {
	return s.gradeRepo.Delete(ctx, id)
}

// BulkCreateGrades creates all the given grades or none of them. Every item is
// validated first; when any item fails, the indexed validation errors come
// back and nothing is written.
func (s *GradeService) BulkCreateGrades(ctx context.Context, reqs []dto.CreateGradeRequest) ([]*models.Grade, []dto.BulkGradeItemError, error) {
	type pair struct {
		student int64
		section int64
	}

	itemErrors := make([]dto.BulkGradeItemError, 0)
	seen := make(map[pair]struct{})

	for i, req := range reqs {
		errs := make([]dto.ErrorDetail, 0)

		if err := validateDecimalPrecision(req.Score, scoreMaxDigits, scoreScale, "score"); err != nil {
			errs = append(errs, validationDetail(err))
		}

		refsOK := true
		if _, err := s.studentRepo.GetByID(ctx, req.Student); err != nil {
			if !errors.Is(err, apperrors.ErrResourceNotFound) {
				return nil, nil, err
			}
			errs = append(errs, *dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Student not found").WithField("student"))
			refsOK = false
		}
		if _, err := s.sectionRepo.GetByID(ctx, req.ClassSection); err != nil {
			if !errors.Is(err, apperrors.ErrResourceNotFound) {
				return nil, nil, err
			}
			errs = append(errs, *dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Class section not found").WithField("class_section"))
			refsOK = false
		}

		if refsOK {
			p := pair{student: req.Student, section: req.ClassSection}
			if _, dup := seen[p]; dup {
				errs = append(errs, validationDetail(apperrors.ErrDuplicateGrade))
			} else {
				exists, err := s.gradeRepo.ExistsForStudentSection(ctx, req.Student, req.ClassSection)
				if err != nil {
					return nil, nil, err
				}
				if exists {
					errs = append(errs, validationDetail(apperrors.ErrDuplicateGrade))
				} else {
					seen[p] = struct{}{}
				}
			}
		}

		if len(errs) > 0 {
			itemErrors = append(itemErrors, dto.BulkGradeItemError{Index: i, Errors: errs})
		}
	}

	if len(itemErrors) > 0 {
		return nil, itemErrors, nil
	}

	grades := make([]*models.Grade, 0, len(reqs))
	for _, req := range reqs {
		grades = append(grades, &models.Grade{
			StudentID:      req.Student,
			ClassSectionID: req.ClassSection,
			Score:          req.Score,
		})
	}

	if err := s.gradeRepo.CreateBatch(ctx, grades); err != nil {
		return nil, nil, err
	}

	created := make([]*models.Grade, 0, len(grades))
	for _, grade := range grades {
		full, err := s.gradeRepo.GetByID(ctx, grade.ID)
		if err != nil {
			return nil, nil, err
		}
		created = append(created, full)
	}

	return created, nil, nil
}

// validationDetail converts a validation error into its response detail form.
func validationDetail(err error) dto.ErrorDetail {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, custom.Message)
		if custom.Field != "" {
			detail = detail.WithField(custom.Field)
		}
		return *detail
	}
	return *dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())
}
