package dto

// CreateClassSectionRequest represents class section creation data
type CreateClassSectionRequest struct {
	SectionID   string `json:"section_id" binding:"required,max=20"`
	SectionName string `json:"section_name" binding:"required,max=100"`
	Semester    string `json:"semester" binding:"required,max=20"`
	Location    string `json:"location" binding:"required,max=100"`
	Course      int64  `json:"course" binding:"required,gt=0"`
}

// UpdateClassSectionRequest represents class section update data
type UpdateClassSectionRequest struct {
	SectionID   string `json:"section_id" binding:"required,max=20"`
	SectionName string `json:"section_name" binding:"required,max=100"`
	Semester    string `json:"semester" binding:"required,max=20"`
	Location    string `json:"location" binding:"required,max=100"`
	Course      int64  `json:"course" binding:"required,gt=0"`
}
