package services

import (
	"context"
	"fmt"

	"github.com/selim/gradebook/internal/app/models"
	"github.com/selim/gradebook/internal/app/models/dto"
)

// studentRepository is the repository surface StudentService needs.
type studentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
	Enroll(ctx context.Context, studentID, sectionID int64) error
}

// gradeReader fetches the grades of one student for the grade report.
type gradeReader interface {
	GetByStudentID(ctx context.Context, studentID int64) ([]*models.Grade, error)
}

// StudentService handles student-related operations
type StudentService struct {
	studentRepo studentRepository
	gradeRepo   gradeReader
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo studentRepository, gradeRepo gradeReader) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		gradeRepo:   gradeRepo,
	}
}

// CreateStudent creates a new student
func (s *StudentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	student := &models.Student{
		StudentID: req.StudentID,
		Name:      req.Name,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// GetStudentByID retrieves a student by ID
func (s *StudentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// GetAllStudents retrieves all students
func (s *StudentService) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// UpdateStudent updates an existing student
func (s *StudentService) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student := &models.Student{
		ID:        id,
		StudentID: req.StudentID,
		Name:      req.Name,
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// DeleteStudent deletes a student by ID
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	return s.studentRepo.Delete(ctx, id)
}

// EnrollStudent enrolls a student into a class section. Enrolling an already
// enrolled student succeeds without changes.
func (s *StudentService) EnrollStudent(ctx context.Context, req *dto.EnrollRequest) error {
	return s.studentRepo.Enroll(ctx, req.Student, req.ClassSection)
}

// GetGradeReport assembles the grade report of one student: the student's core
// fields plus all their grades in insertion order.
func (s *StudentService) GetGradeReport(ctx context.Context, id int64) (*dto.StudentGradeReport, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	grades, err := s.gradeRepo.GetByStudentID(ctx, student.ID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student grades: %w", err)
	}

	return &dto.StudentGradeReport{
		ID:        student.ID,
		StudentID: student.StudentID,
		Name:      student.Name,
		Grades:    grades,
	}, nil
}
