package services

import (
	"context"
	"errors"
	"testing"

	"github.com/selim/gradebook/internal/app/models"
	"github.com/selim/gradebook/internal/app/models/dto"
	"github.com/selim/gradebook/internal/app/repositories"
	"github.com/selim/gradebook/internal/pkg/apperrors"
	"github.com/shopspring/decimal"
)

type fakeCourseRepo struct {
	nextID  int64
	courses map[int64]*models.Course
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: make(map[int64]*models.Course)}
}

func (f *fakeCourseRepo) Create(_ context.Context, course *models.Course) error {
	for _, c := range f.courses {
		if c.CourseID == course.CourseID {
			return apperrors.ErrCourseIDExists
		}
	}
	f.nextID++
	course.ID = f.nextID
	cp := *course
	f.courses[course.ID] = &cp
	return nil
}

func (f *fakeCourseRepo) GetByID(_ context.Context, id int64) (*models.Course, error) {
	c, ok := f.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCourseRepo) GetAll(_ context.Context, _ repositories.CourseFilter) ([]*models.Course, error) {
	out := make([]*models.Course, 0, len(f.courses))
	for _, c := range f.courses {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeCourseRepo) Update(_ context.Context, course *models.Course) error {
	if _, ok := f.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	for id, c := range f.courses {
		if id != course.ID && c.CourseID == course.CourseID {
			return apperrors.ErrCourseIDExists
		}
	}
	cp := *course
	f.courses[course.ID] = &cp
	return nil
}

func (f *fakeCourseRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(f.courses, id)
	return nil
}

func newCourseRequest() *dto.CreateCourseRequest {
	return &dto.CreateCourseRequest{
		CourseID:   "CS101",
		CourseName: "Introduction to Computer Science",
		Credits:    decimal.RequireFromString("3.5"),
		Hours:      64,
	}
}

func TestCreateCourse(t *testing.T) {
	svc := NewCourseService(newFakeCourseRepo())

	course, err := svc.CreateCourse(context.Background(), newCourseRequest())
	if err != nil {
		t.Fatalf("CreateCourse failed: %v", err)
	}

	if course.ID == 0 {
		t.Error("expected course ID to be assigned")
	}
	if course.CourseID != "CS101" {
		t.Errorf("unexpected course_id: %s", course.CourseID)
	}
	if !course.Credits.Equal(decimal.RequireFromString("3.5")) {
		t.Errorf("unexpected credits: %s", course.Credits)
	}
}

func TestCreateCourseDuplicateCode(t *testing.T) {
	svc := NewCourseService(newFakeCourseRepo())
	ctx := context.Background()

	if _, err := svc.CreateCourse(ctx, newCourseRequest()); err != nil {
		t.Fatalf("first CreateCourse failed: %v", err)
	}

	req := newCourseRequest()
	req.CourseName = "Another Course"
	_, err := svc.CreateCourse(ctx, req)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}

	var custom *apperrors.CustomError
	if !errors.As(err, &custom) || custom.Field != "course_id" {
		t.Errorf("expected error on field course_id, got %v", err)
	}
}

func TestCreateCourseCreditsPrecision(t *testing.T) {
	svc := NewCourseService(newFakeCourseRepo())
	ctx := context.Background()

	cases := []struct {
		name    string
		credits string
	}{
		{"too many decimal places", "3.25"},
		{"too many digits", "100.0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := newCourseRequest()
			req.Credits = decimal.RequireFromString(tc.credits)

			_, err := svc.CreateCourse(ctx, req)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Fatalf("expected validation error for credits %s, got %v", tc.credits, err)
			}

			var custom *apperrors.CustomError
			if !errors.As(err, &custom) || custom.Field != "credits" {
				t.Errorf("expected error on field credits, got %v", err)
			}
		})
	}
}

func TestUpdateCourse(t *testing.T) {
	repo := newFakeCourseRepo()
	svc := NewCourseService(repo)
	ctx := context.Background()

	created, err := svc.CreateCourse(ctx, newCourseRequest())
	if err != nil {
		t.Fatalf("CreateCourse failed: %v", err)
	}

	updated, err := svc.UpdateCourse(ctx, created.ID, &dto.UpdateCourseRequest{
		CourseID:   "CS102",
		CourseName: "Data Structures",
		Credits:    decimal.RequireFromString("4.0"),
		Hours:      48,
	})
	if err != nil {
		t.Fatalf("UpdateCourse failed: %v", err)
	}

	if updated.CourseID != "CS102" || updated.Hours != 48 {
		t.Errorf("update not applied: %+v", updated)
	}

	stored, err := svc.GetCourseByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetCourseByID failed: %v", err)
	}
	if stored.CourseName != "Data Structures" {
		t.Errorf("unexpected stored course name: %s", stored.CourseName)
	}
}

func TestUpdateCourseNotFound(t *testing.T) {
	svc := NewCourseService(newFakeCourseRepo())

	_, err := svc.UpdateCourse(context.Background(), 42, &dto.UpdateCourseRequest{
		CourseID:   "CS101",
		CourseName: "Intro",
		Credits:    decimal.RequireFromString("3.0"),
		Hours:      32,
	})
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestDeleteCourse(t *testing.T) {
	svc := NewCourseService(newFakeCourseRepo())
	ctx := context.Background()

	created, err := svc.CreateCourse(ctx, newCourseRequest())
	if err != nil {
		t.Fatalf("CreateCourse failed: %v", err)
	}

	if err := svc.DeleteCourse(ctx, created.ID); err != nil {
		t.Fatalf("DeleteCourse failed: %v", err)
	}

	if _, err := svc.GetCourseByID(ctx, created.ID); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}

	if err := svc.DeleteCourse(ctx, created.ID); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestValidateDecimalPrecision(t *testing.T) {
	cases := []struct {
		value string
		ok    bool
	}{
		{"92.50", true},
		{"0", true},
		{"999.99", true},
		{"-999.99", true},
		{"92.555", false},
		{"1000.00", false},
	}

	for _, tc := range cases {
		err := validateDecimalPrecision(decimal.RequireFromString(tc.value), scoreMaxDigits, scoreScale, "score")
		if tc.ok && err != nil {
			t.Errorf("value %s: unexpected error %v", tc.value, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("value %s: expected error, got nil", tc.value)
		}
	}
}
