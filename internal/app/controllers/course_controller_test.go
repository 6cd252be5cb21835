package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/selim/gradebook/internal/app/models"
	"github.com/selim/gradebook/internal/app/models/dto"
	"github.com/selim/gradebook/internal/app/repositories"
	"github.com/selim/gradebook/internal/pkg/apperrors"
	"github.com/shopspring/decimal"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubCourseService struct {
	course  *models.Course
	courses []*models.Course
	err     error

	lastFilter repositories.CourseFilter
}

func (s *stubCourseService) CreateCourse(_ context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.course, nil
}

func (s *stubCourseService) GetCourseByID(_ context.Context, _ int64) (*models.Course, error) {
	return s.course, s.err
}

func (s *stubCourseService) GetAllCourses(_ context.Context, filter repositories.CourseFilter) ([]*models.Course, error) {
	s.lastFilter = filter
	return s.courses, s.err
}

func (s *stubCourseService) UpdateCourse(_ context.Context, _ int64, _ *dto.UpdateCourseRequest) (*models.Course, error) {
	return s.course, s.err
}

func (s *stubCourseService) DeleteCourse(_ context.Context, _ int64) error {
	return s.err
}

func newCourseRouter(svc CourseService) *gin.Engine {
	router := gin.New()
	ctrl := NewCourseController(svc)
	router.POST("/api/v1/courses", ctrl.CreateCourse)
	router.GET("/api/v1/courses", ctrl.GetAllCourses)
	router.GET("/api/v1/courses/:id", ctrl.GetCourseByID)
	router.PUT("/api/v1/courses/:id", ctrl.UpdateCourse)
	router.DELETE("/api/v1/courses/:id", ctrl.DeleteCourse)
	return router
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestCreateCourseResponse(t *testing.T) {
	svc := &stubCourseService{course: &models.Course{
		ID:         1,
		CourseID:   "CS101",
		CourseName: "Introduction to Computer Science",
		Credits:    decimal.RequireFromString("3.5"),
		Hours:      64,
	}}
	router := newCourseRouter(svc)

	payload := `{"course_id":"CS101","course_name":"Introduction to Computer Science","credits":"3.5","hours":64}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/courses", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	data, ok := body["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("missing data envelope: %v", body)
	}
	if data["course_id"] != "CS101" {
		t.Errorf("unexpected course_id: %v", data["course_id"])
	}
	if data["credits"] != "3.5" {
		t.Errorf("expected credits as decimal string, got %v", data["credits"])
	}
}

func TestCreateCourseInvalidBody(t *testing.T) {
	router := newCourseRouter(&stubCourseService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/courses", strings.NewReader(`{"course_id":""}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetCourseInvalidID(t *testing.T) {
	router := newCourseRouter(&stubCourseService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/courses/abc", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetCourseNotFound(t *testing.T) {
	router := newCourseRouter(&stubCourseService{err: apperrors.ErrCourseNotFound})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/courses/42", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestGetAllCoursesForwardsFilters(t *testing.T) {
	svc := &stubCourseService{courses: []*models.Course{}}
	router := newCourseRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/courses?course_id=CS&course_name=intro", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if svc.lastFilter.CourseID != "CS" || svc.lastFilter.CourseName != "intro" {
		t.Errorf("filters not forwarded: %+v", svc.lastFilter)
	}

	body := decodeBody(t, w)
	data, ok := body["data"].([]interface{})
	if !ok {
		t.Fatalf("expected data to be a list, got %v", body["data"])
	}
	if len(data) != 0 {
		t.Errorf("expected empty list, got %v", data)
	}
}

func TestDeleteCourseNoContent(t *testing.T) {
	router := newCourseRouter(&stubCourseService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/courses/1", nil))

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
