package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/selim/gradebook/internal/app/models"
	"github.com/selim/gradebook/internal/app/models/dto"
	"github.com/selim/gradebook/internal/middleware"
)

// GradeService is the service surface GradeController needs.
type GradeService interface {
	CreateGrade(ctx context.Context, req *dto.CreateGradeRequest) (*models.Grade, error)
	GetGradeByID(ctx context.Context, id int64) (*models.Grade, error)
	GetAllGrades(ctx context.Context) ([]*models.Grade, error)
	GetSectionGrades(ctx context.Context, sectionID int64) ([]*models.Grade, error)
	UpdateGrade(ctx context.Context, id int64, req *dto.UpdateGradeRequest) (*models.Grade, error)
	DeleteGrade(ctx context.Context, id int64) error
	BulkCreateGrades(ctx context.Context, reqs []dto.CreateGradeRequest) ([]*models.Grade, []dto.BulkGradeItemError, error)
}

// GradeController handles grade-related operations
type GradeController struct {
	gradeService GradeService
}

// NewGradeController creates a new GradeController
func NewGradeController(gradeService GradeService) *GradeController {
	return &GradeController{gradeService: gradeService}
}

// CreateGrade handles grade creation
// @Summary Create a new grade
// @Description Creates a new grade for a student in a class section
// @Tags grades
// @Accept json
// @Produce json
// @Param request body dto.CreateGradeRequest true "Grade information"
// @Success 201 {object} dto.APIResponse{data=models.Grade} "Grade created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student or class section not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grades [post]
func (c *GradeController) CreateGrade(ctx *gin.Context) {
	var req dto.CreateGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, "Invalid grade data", err)
		return
	}

	grade, err := c.gradeService.CreateGrade(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      grade,
		Timestamp: time.Now(),
	})
}

// GetGradeByID retrieves a grade by ID
// @Summary Get grade by ID
// @Description Retrieves a specific grade by its ID
// @Tags grades
// @Accept json
// @Produce json
// @Param id path int true "Grade ID"
// @Success 200 {object} dto.APIResponse{data=models.Grade} "Grade retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid grade ID"
// @Failure 404 {object} dto.ErrorResponse "Grade not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grades/{id} [get]
func (c *GradeController) GetGradeByID(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid grade ID")
		errorDetail = errorDetail.WithDetails("Grade ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	grade, err := c.gradeService.GetGradeByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      grade,
		Timestamp: time.Now(),
	})
}

// GetAllGrades retrieves all grades
// @Summary Get all grades
// @Description Retrieves a list of all grades
// @Tags grades
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Grade} "Grades retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grades [get]
func (c *GradeController) GetAllGrades(ctx *gin.Context) {
	grades, err := c.gradeService.GetAllGrades(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      grades,
		Timestamp: time.Now(),
	})
}

// GetSectionGrades retrieves all grades of one class section
// @Summary Get section grades
// @Description Retrieves all grades recorded for a class section. The section query parameter is required.
// @Tags grades
// @Accept json
// @Produce json
// @Param section query int true "Class section ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Grade} "Section grades retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid section ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grades/section-grades [get]
func (c *GradeController) GetSectionGrades(ctx *gin.Context) {
	sectionStr := ctx.Query("section")
	if sectionStr == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeBadRequest, "Section ID is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	sectionID, err := strconv.ParseInt(sectionStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid section ID")
		errorDetail = errorDetail.WithDetails("Section ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	grades, err := c.gradeService.GetSectionGrades(ctx, sectionID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      grades,
		Timestamp: time.Now(),
	})
}

// BulkCreateGrades creates several grades at once
// @Summary Bulk create grades
// @Description Creates all the given grades in a single transaction. If any item fails validation, nothing is created and the per-item errors come back indexed.
// @Tags grades
// @Accept json
// @Produce json
// @Param request body []dto.CreateGradeRequest true "Grades to create"
// @Success 201 {object} dto.APIResponse{data=[]models.Grade} "Grades created successfully"
// @Failure 400 {object} dto.ErrorResponse "Validation failed for one or more items"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grades/bulk-create [post]
func (c *GradeController) BulkCreateGrades(ctx *gin.Context) {
	var reqs []dto.CreateGradeRequest
	if err := ctx.ShouldBindJSON(&reqs); err != nil {
		middleware.HandleBindingError(ctx, "Invalid grade data", err)
		return
	}

	grades, itemErrors, err := c.gradeService.BulkCreateGrades(ctx, reqs)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if len(itemErrors) > 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")
		errorDetail = errorDetail.WithDetails(itemErrors)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      grades,
		Timestamp: time.Now(),
	})
}

// UpdateGrade updates an existing grade
// @Summary Update a grade
// @Description Updates an existing grade with the provided information
// @Tags grades
// @Accept json
// @Produce json
// @Param id path int true "Grade ID"
// @Param request body dto.UpdateGradeRequest true "Updated grade information"
// @Success 200 {object} dto.APIResponse{data=models.Grade} "Grade updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Grade not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grades/{id} [put]
func (c *GradeController) UpdateGrade(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid grade ID")
		errorDetail = errorDetail.WithDetails("Grade ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, "Invalid grade data", err)
		return
	}

	grade, err := c.gradeService.UpdateGrade(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      grade,
		Timestamp: time.Now(),
	})
}

// DeleteGrade deletes a grade
// @Summary Delete a grade
// @Description Deletes an existing grade by its ID
// @Tags grades
// @Accept json
// @Produce json
// @Param id path int true "Grade ID"
// @Success 204 "Grade deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid grade ID"
// @Failure 404 {object} dto.ErrorResponse "Grade not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grades/{id} [delete]
func (c *GradeController) DeleteGrade(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid grade ID")
		errorDetail = errorDetail.WithDetails("Grade ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.gradeService.DeleteGrade(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
