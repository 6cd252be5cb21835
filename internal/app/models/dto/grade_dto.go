package dto

import "github.com/shopspring/decimal"

// CreateGradeRequest represents grade creation data
type CreateGradeRequest struct {
	Student      int64           `json:"student" binding:"required,gt=0"`
	ClassSection int64           `json:"class_section" binding:"required,gt=0"`
	Score        decimal.Decimal `json:"score" binding:"required"`
}

// UpdateGradeRequest represents grade update data
type UpdateGradeRequest struct {
	Student      int64           `json:"student" binding:"required,gt=0"`
	ClassSection int64           `json:"class_section" binding:"required,gt=0"`
	Score        decimal.Decimal `json:"score" binding:"required"`
}

// BulkGradeItemError carries the validation errors of one item of a bulk
// grade create, indexed to its position in the request body.
type BulkGradeItemError struct {
	Index  int           `json:"index"`
	Errors []ErrorDetail `json:"errors"`
}
