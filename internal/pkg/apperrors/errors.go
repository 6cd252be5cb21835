package apperrors

import "errors"

// Common error kinds. Specific errors wrap one of these so the error
// middleware can map them to an HTTP status with errors.Is.
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrConflict         = errors.New("conflict")
	ErrBadRequest       = errors.New("bad request")
)

// Not-found errors per entity
var (
	ErrCourseNotFound  = NewResourceNotFoundError("Course not found")
	ErrSectionNotFound = NewResourceNotFoundError("Class section not found")
	ErrStudentNotFound = NewResourceNotFoundError("Student not found")
	ErrGradeNotFound   = NewResourceNotFoundError("Grade not found")

	// ErrEnrollmentRefNotFound deliberately does not say which of the two
	// references was missing.
	ErrEnrollmentRefNotFound = NewResourceNotFoundError("Student or Class Section not found")
)

// Uniqueness violations
var (
	ErrCourseIDExists  = NewValidationError("course with this course_id already exists", "course_id")
	ErrSectionIDExists = NewValidationError("class section with this section_id already exists", "section_id")
	ErrStudentIDExists = NewValidationError("student with this student_id already exists", "student_id")
	ErrDuplicateGrade  = NewValidationError("grade for this student and class section already exists", "student, class_section")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Field   string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewValidationError creates a new custom error for a failed field validation
func NewValidationError(message, field string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Field:   field,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}
