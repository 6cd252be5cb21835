package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Grade represents a student's score in a class section. At most one grade
// exists per (student, class section) pair.
type Grade struct {
	ID             int64           `json:"id" db:"id" example:"1"`
	StudentID      int64           `json:"student" db:"student_id" example:"1"`
	ClassSectionID int64           `json:"class_section" db:"class_section_id" example:"1"`
	Score          decimal.Decimal `json:"score" db:"score" example:"92.50"` // Two fractional digits, max 5 digits
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at" db:"updated_at"`

	// Display fields denormalized through student and section -> course at read time
	StudentName string `json:"student_name" db:"student_name" example:"Alice"`
	SectionName string `json:"section_name" db:"section_name" example:"Intro to CS - Section A"`
	CourseName  string `json:"course_name" db:"course_name" example:"Intro to CS"`
}
