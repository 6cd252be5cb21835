package models

// ClassSection represents a scheduled offering of a course.
type ClassSection struct {
	ID          int64  `json:"id" db:"id" example:"1"`
	SectionID   string `json:"section_id" db:"section_id" example:"CS101-A"` // Unique section code
	SectionName string `json:"section_name" db:"section_name" example:"Intro to CS - Section A"`
	Semester    string `json:"semester" db:"semester" example:"Fall2024"`
	Location    string `json:"location" db:"location" example:"Building 2, Room 104"`
	CourseID    int64  `json:"course" db:"course_id" example:"1"` // Owning course

	// CourseName is denormalized from the owning course at read time
	CourseName string `json:"course_name" db:"course_name" example:"Intro to CS"`
}
