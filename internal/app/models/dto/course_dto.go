package dto

import "github.com/shopspring/decimal"

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	CourseID   string          `json:"course_id" binding:"required,max=20"`
	CourseName string          `json:"course_name" binding:"required,max=100"`
	Credits    decimal.Decimal `json:"credits" binding:"required"`
	Hours      int             `json:"hours" binding:"required"`
}

// UpdateCourseRequest represents course update data
type UpdateCourseRequest struct {
	CourseID   string          `json:"course_id" binding:"required,max=20"`
	CourseName string          `json:"course_name" binding:"required,max=100"`
	Credits    decimal.Decimal `json:"credits" binding:"required"`
	Hours      int             `json:"hours" binding:"required"`
}
