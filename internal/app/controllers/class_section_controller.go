package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/selim/gradebook/internal/app/models"
	"github.com/selim/gradebook/internal/app/models/dto"
	"github.com/selim/gradebook/internal/app/repositories"
	"github.com/selim/gradebook/internal/middleware"
)

// ClassSectionService is the service surface ClassSectionController needs.
type ClassSectionService interface {
	CreateClassSection(ctx context.Context, req *dto.CreateClassSectionRequest) (*models.ClassSection, error)
	GetClassSectionByID(ctx context.Context, id int64) (*models.ClassSection, error)
	GetAllClassSections(ctx context.Context, filter repositories.SectionFilter) ([]*models.ClassSection, error)
	UpdateClassSection(ctx context.Context, id int64, req *dto.UpdateClassSectionRequest) (*models.ClassSection, error)
	DeleteClassSection(ctx context.Context, id int64) error
}

// ClassSectionController handles class section-related operations
type ClassSectionController struct {
	sectionService ClassSectionService
}

// NewClassSectionController creates a new ClassSectionController
func NewClassSectionController(sectionService ClassSectionService) *ClassSectionController {
	return &ClassSectionController{sectionService: sectionService}
}

// CreateClassSection handles class section creation
// @Summary Create a new class section
// @Description Creates a new class section under an existing course
// @Tags class-sections
// @Accept json
// @Produce json
// @Param request body dto.CreateClassSectionRequest true "Class section information"
// @Success 201 {object} dto.APIResponse{data=models.ClassSection} "Class section created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /class-sections [post]
func (c *ClassSectionController) CreateClassSection(ctx *gin.Context) {
	var req dto.CreateClassSectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, "Invalid class section data", err)
		return
	}

	section, err := c.sectionService.CreateClassSection(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      section,
		Timestamp: time.Now(),
	})
}

// GetClassSectionByID retrieves a class section by ID
// @Summary Get class section by ID
// @Description Retrieves a specific class section by its ID
// @Tags class-sections
// @Accept json
// @Produce json
// @Param id path int true "Class section ID"
// @Success 200 {object} dto.APIResponse{data=models.ClassSection} "Class section retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid class section ID"
// @Failure 404 {object} dto.ErrorResponse "Class section not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /class-sections/{id} [get]
func (c *ClassSectionController) GetClassSectionByID(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid class section ID")
		errorDetail = errorDetail.WithDetails("Class section ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	section, err := c.sectionService.GetClassSectionByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      section,
		Timestamp: time.Now(),
	})
}

// GetAllClassSections retrieves all class sections
// @Summary Get all class sections
// @Description Retrieves a list of all class sections, optionally filtered by course or semester
// @Tags class-sections
// @Accept json
// @Produce json
// @Param course query string false "Filter by course code or name (substring, case-insensitive)"
// @Param semester query string false "Filter by semester (substring, case-insensitive)"
// @Success 200 {object} dto.APIResponse{data=[]models.ClassSection} "Class sections retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /class-sections [get]
func (c *ClassSectionController) GetAllClassSections(ctx *gin.Context) {
	filter := repositories.SectionFilter{
		Course:   ctx.Query("course"),
		Semester: ctx.Query("semester"),
	}

	sections, err := c.sectionService.GetAllClassSections(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      sections,
		Timestamp: time.Now(),
	})
}

// UpdateClassSection updates an existing class section
// @Summary Update a class section
// @Description Updates an existing class section with the provided information
// @Tags class-sections
// @Accept json
// @Produce json
// @Param id path int true "Class section ID"
// @Param request body dto.UpdateClassSectionRequest true "Updated class section information"
// @Success 200 {object} dto.APIResponse{data=models.ClassSection} "Class section updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Class section not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /class-sections/{id} [put]
func (c *ClassSectionController) UpdateClassSection(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid class section ID")
		errorDetail = errorDetail.WithDetails("Class section ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateClassSectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, "Invalid class section data", err)
		return
	}

	section, err := c.sectionService.UpdateClassSection(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      section,
		Timestamp: time.Now(),
	})
}

// DeleteClassSection deletes a class section
// @Summary Delete a class section
// @Description Deletes an existing class section by its ID
// @Tags class-sections
// @Accept json
// @Produce json
// @Param id path int true "Class section ID"
// @Success 204 "Class section deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid class section ID"
// @Failure 404 {object} dto.ErrorResponse "Class section not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /class-sections/{id} [delete]
func (c *ClassSectionController) DeleteClassSection(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid class section ID")
		errorDetail = errorDetail.WithDetails("Class section ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.sectionService.DeleteClassSection(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
