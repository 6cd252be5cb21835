package dto

import "github.com/selim/gradebook/internal/app/models"

// CreateStudentRequest represents student creation data
type CreateStudentRequest struct {
	StudentID string `json:"student_id" binding:"required,max=20"`
	Name      string `json:"name" binding:"required,max=100"`
}

// UpdateStudentRequest represents student update data
type UpdateStudentRequest struct {
	StudentID string `json:"student_id" binding:"required,max=20"`
	Name      string `json:"name" binding:"required,max=100"`
}

// EnrollRequest represents a request to enroll a student into a class section.
// Both references are surrogate row ids, not the external code strings.
type EnrollRequest struct {
	Student      int64 `json:"student" binding:"required,gt=0"`
	ClassSection int64 `json:"class_section" binding:"required,gt=0"`
}

// StudentGradeReport is the student grade report payload: the student's core
// fields plus all their grades in insertion order.
type StudentGradeReport struct {
	ID        int64           `json:"id"`
	StudentID string          `json:"student_id"`
	Name      string          `json:"name"`
	Grades    []*models.Grade `json:"grades"`
}
