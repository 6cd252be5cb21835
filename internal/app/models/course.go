package models

import "github.com/shopspring/decimal"

// Course represents a course in the catalog.
type Course struct {
	ID         int64           `json:"id" db:"id" example:"1"`
	CourseID   string          `json:"course_id" db:"course_id" example:"CS101"` // External course code, unique
	CourseName string          `json:"course_name" db:"course_name" example:"Intro to CS"`
	Credits    decimal.Decimal `json:"credits" db:"credits" example:"3.0"` // One fractional digit, max 3 digits
	Hours      int             `json:"hours" db:"hours" example:"45"`
}
