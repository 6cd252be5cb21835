package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/selim/gradebook/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func runHandleAPIError(t *testing.T, err error) (int, map[string]interface{}) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, err)

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	return w.Code, body
}

func errorField(t *testing.T, body map[string]interface{}, key string) interface{} {
	t.Helper()
	detail, ok := body["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("missing error detail in body: %v", body)
	}
	return detail[key]
}

func TestHandleAPIErrorNotFound(t *testing.T) {
	status, body := runHandleAPIError(t, apperrors.ErrCourseNotFound)

	if status != http.StatusNotFound {
		t.Errorf("expected 404, got %d", status)
	}
	if code := errorField(t, body, "code"); code != "RES_001" {
		t.Errorf("expected code RES_001, got %v", code)
	}
	if msg := errorField(t, body, "message"); msg != "Course not found" {
		t.Errorf("unexpected message: %v", msg)
	}
}

func TestHandleAPIErrorUniqueness(t *testing.T) {
	status, body := runHandleAPIError(t, apperrors.ErrCourseIDExists)

	if status != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", status)
	}
	if code := errorField(t, body, "code"); code != "VAL_001" {
		t.Errorf("expected code VAL_001, got %v", code)
	}
	if field := errorField(t, body, "field"); field != "course_id" {
		t.Errorf("expected field course_id, got %v", field)
	}
}

func TestHandleAPIErrorBadRequest(t *testing.T) {
	status, body := runHandleAPIError(t, apperrors.NewBadRequestError("Section ID is required"))

	if status != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", status)
	}
	if code := errorField(t, body, "code"); code != "REQ_001" {
		t.Errorf("expected code REQ_001, got %v", code)
	}
}

func TestHandleAPIErrorUnknown(t *testing.T) {
	status, body := runHandleAPIError(t, errors.New("pool exhausted"))

	if status != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", status)
	}
	if msg := errorField(t, body, "message"); msg != "Internal server error" {
		t.Errorf("internal detail must not leak, got %v", msg)
	}
}
