package services

import (
	"context"
	"errors"
	"testing"

	"github.com/selim/gradebook/internal/app/models"
	"github.com/selim/gradebook/internal/app/models/dto"
	"github.com/selim/gradebook/internal/pkg/apperrors"
	"github.com/shopspring/decimal"
)

type enrollment struct {
	student int64
	section int64
}

type fakeStudentRepo struct {
	nextID      int64
	students    map[int64]*models.Student
	sections    map[int64]bool
	enrollments map[enrollment]bool
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{
		students:    make(map[int64]*models.Student),
		sections:    make(map[int64]bool),
		enrollments: make(map[enrollment]bool),
	}
}

func (f *fakeStudentRepo) Create(_ context.Context, student *models.Student) error {
	for _, s := range f.students {
		if s.StudentID == student.StudentID {
			return apperrors.ErrStudentIDExists
		}
	}
	f.nextID++
	student.ID = f.nextID
	cp := *student
	f.students[student.ID] = &cp
	return nil
}

func (f *fakeStudentRepo) GetByID(_ context.Context, id int64) (*models.Student, error) {
	s, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeStudentRepo) GetAll(_ context.Context) ([]*models.Student, error) {
	out := make([]*models.Student, 0, len(f.students))
	for _, s := range f.students {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeStudentRepo) Update(_ context.Context, student *models.Student) error {
	if _, ok := f.students[student.ID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	cp := *student
	f.students[student.ID] = &cp
	return nil
}

func (f *fakeStudentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(f.students, id)
	return nil
}

func (f *fakeStudentRepo) Enroll(_ context.Context, studentID, sectionID int64) error {
	if _, ok := f.students[studentID]; !ok {
		return apperrors.ErrEnrollmentRefNotFound
	}
	if !f.sections[sectionID] {
		return apperrors.ErrEnrollmentRefNotFound
	}
	f.enrollments[enrollment{student: studentID, section: sectionID}] = true
	return nil
}

func TestCreateStudent(t *testing.T) {
	svc := NewStudentService(newFakeStudentRepo(), newFakeGradeRepo())

	student, err := svc.CreateStudent(context.Background(), &dto.CreateStudentRequest{
		StudentID: "2026001",
		Name:      "Ayse Demir",
	})
	if err != nil {
		t.Fatalf("CreateStudent failed: %v", err)
	}
	if student.ID == 0 || student.StudentID != "2026001" {
		t.Errorf("unexpected student: %+v", student)
	}
}

func TestCreateStudentDuplicateID(t *testing.T) {
	svc := NewStudentService(newFakeStudentRepo(), newFakeGradeRepo())
	ctx := context.Background()

	if _, err := svc.CreateStudent(ctx, &dto.CreateStudentRequest{StudentID: "2026001", Name: "Ayse Demir"}); err != nil {
		t.Fatalf("first CreateStudent failed: %v", err)
	}

	_, err := svc.CreateStudent(ctx, &dto.CreateStudentRequest{StudentID: "2026001", Name: "Mehmet Kaya"})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestEnrollStudent(t *testing.T) {
	repo := newFakeStudentRepo()
	repo.sections[5] = true
	svc := NewStudentService(repo, newFakeGradeRepo())
	ctx := context.Background()

	student, err := svc.CreateStudent(ctx, &dto.CreateStudentRequest{StudentID: "2026001", Name: "Ayse Demir"})
	if err != nil {
		t.Fatalf("CreateStudent failed: %v", err)
	}

	req := &dto.EnrollRequest{Student: student.ID, ClassSection: 5}
	if err := svc.EnrollStudent(ctx, req); err != nil {
		t.Fatalf("EnrollStudent failed: %v", err)
	}

	// Enrolling twice is a no-op, not an error
	if err := svc.EnrollStudent(ctx, req); err != nil {
		t.Fatalf("second EnrollStudent failed: %v", err)
	}

	if !repo.enrollments[enrollment{student: student.ID, section: 5}] {
		t.Error("enrollment not recorded")
	}
}

func TestEnrollStudentUnknownRefs(t *testing.T) {
	svc := NewStudentService(newFakeStudentRepo(), newFakeGradeRepo())

	err := svc.EnrollStudent(context.Background(), &dto.EnrollRequest{Student: 1, ClassSection: 5})
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
	if err.Error() != "Student or Class Section not found" {
		t.Errorf("unexpected error message: %q", err.Error())
	}
}

func TestGetGradeReport(t *testing.T) {
	studentRepo := newFakeStudentRepo()
	gradeRepo := newFakeGradeRepo()
	svc := NewStudentService(studentRepo, gradeRepo)
	ctx := context.Background()

	student, err := svc.CreateStudent(ctx, &dto.CreateStudentRequest{StudentID: "2026001", Name: "Ayse Demir"})
	if err != nil {
		t.Fatalf("CreateStudent failed: %v", err)
	}

	for _, sectionID := range []int64{10, 11} {
		grade := &models.Grade{
			StudentID:      student.ID,
			ClassSectionID: sectionID,
			Score:          decimal.RequireFromString("88.00"),
		}
		if err := gradeRepo.Create(ctx, grade); err != nil {
			t.Fatalf("seeding grade failed: %v", err)
		}
	}

	report, err := svc.GetGradeReport(ctx, student.ID)
	if err != nil {
		t.Fatalf("GetGradeReport failed: %v", err)
	}

	if report.StudentID != "2026001" || report.Name != "Ayse Demir" {
		t.Errorf("unexpected report header: %+v", report)
	}
	if len(report.Grades) != 2 {
		t.Fatalf("expected 2 grades, got %d", len(report.Grades))
	}
	if report.Grades[0].ID > report.Grades[1].ID {
		t.Error("grades not in insertion order")
	}
}

func TestGetGradeReportUnknownStudent(t *testing.T) {
	svc := NewStudentService(newFakeStudentRepo(), newFakeGradeRepo())

	_, err := svc.GetGradeReport(context.Background(), 42)
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}
