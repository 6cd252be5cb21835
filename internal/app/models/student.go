package models

// Student represents a student record.
type Student struct {
	ID        int64  `json:"id" db:"id" example:"1"`
	StudentID string `json:"student_id" db:"student_id" example:"S001"` // Unique student number
	Name      string `json:"name" db:"name" example:"Alice"`
}
