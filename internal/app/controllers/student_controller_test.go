package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/selim/gradebook/internal/app/models"
	"github.com/selim/gradebook/internal/app/models/dto"
	"github.com/selim/gradebook/internal/pkg/apperrors"
)

type stubStudentService struct {
	student  *models.Student
	students []*models.Student
	report   *dto.StudentGradeReport
	err      error
}

func (s *stubStudentService) CreateStudent(_ context.Context, _ *dto.CreateStudentRequest) (*models.Student, error) {
	return s.student, s.err
}

func (s *stubStudentService) GetStudentByID(_ context.Context, _ int64) (*models.Student, error) {
	return s.student, s.err
}

func (s *stubStudentService) GetAllStudents(_ context.Context) ([]*models.Student, error) {
	return s.students, s.err
}

func (s *stubStudentService) UpdateStudent(_ context.Context, _ int64, _ *dto.UpdateStudentRequest) (*models.Student, error) {
	return s.student, s.err
}

func (s *stubStudentService) DeleteStudent(_ context.Context, _ int64) error {
	return s.err
}

func (s *stubStudentService) EnrollStudent(_ context.Context, _ *dto.EnrollRequest) error {
	return s.err
}

func (s *stubStudentService) GetGradeReport(_ context.Context, _ int64) (*dto.StudentGradeReport, error) {
	return s.report, s.err
}

func newStudentRouter(svc StudentService) *gin.Engine {
	router := gin.New()
	ctrl := NewStudentController(svc)
	router.GET("/api/v1/students", ctrl.GetAllStudents)
	router.GET("/api/v1/students/:id", ctrl.GetStudentByID)
	router.POST("/api/v1/students", ctrl.CreateStudent)
	router.PUT("/api/v1/students/:id", ctrl.UpdateStudent)
	router.DELETE("/api/v1/students/:id", ctrl.DeleteStudent)
	router.POST("/api/v1/students/enroll", ctrl.EnrollStudent)
	router.GET("/api/v1/students/:id/grades", ctrl.GetStudentGrades)
	return router
}

func TestEnrollStudentSuccess(t *testing.T) {
	router := newStudentRouter(&stubStudentService{})

	payload := `{"student":1,"class_section":2}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/students/enroll", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	data, ok := body["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("missing data envelope: %v", body)
	}
	if data["message"] != "Student enrolled successfully" {
		t.Errorf("unexpected message: %v", data["message"])
	}
}

func TestEnrollStudentUnknownRefs(t *testing.T) {
	router := newStudentRouter(&stubStudentService{err: apperrors.ErrEnrollmentRefNotFound})

	payload := `{"student":1,"class_section":2}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/students/enroll", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	body := decodeBody(t, w)
	detail, ok := body["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("missing error detail: %v", body)
	}
	if detail["message"] != "Student or Class Section not found" {
		t.Errorf("unexpected message: %v", detail["message"])
	}
}

func TestEnrollStudentInvalidBody(t *testing.T) {
	router := newStudentRouter(&stubStudentService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/students/enroll", strings.NewReader(`{"student":1}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetStudentGrades(t *testing.T) {
	router := newStudentRouter(&stubStudentService{report: &dto.StudentGradeReport{
		ID:        1,
		StudentID: "2026001",
		Name:      "Ayse Demir",
		Grades:    []*models.Grade{},
	}})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/students/1/grades", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	data, ok := body["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("missing data envelope: %v", body)
	}
	if data["student_id"] != "2026001" {
		t.Errorf("unexpected student_id: %v", data["student_id"])
	}
	grades, ok := data["grades"].([]interface{})
	if !ok || len(grades) != 0 {
		t.Errorf("expected empty grades list, got %v", data["grades"])
	}
}

func TestGetStudentGradesUnknownStudent(t *testing.T) {
	router := newStudentRouter(&stubStudentService{err: apperrors.ErrStudentNotFound})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/students/42/grades", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
