package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/selim/gradebook/internal/app/controllers"
	"github.com/selim/gradebook/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	sectionController *controllers.ClassSectionController,
	studentController *controllers.StudentController,
	gradeController *controllers.GradeController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Course routes
	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.POST("", courseController.CreateCourse)
		courses.PUT("/:id", courseController.UpdateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)
	}

	// Class section routes
	sections := v1.Group("/class-sections")
	{
		sections.GET("", sectionController.GetAllClassSections)
		sections.GET("/:id", sectionController.GetClassSectionByID)
		sections.POST("", sectionController.CreateClassSection)
		sections.PUT("/:id", sectionController.UpdateClassSection)
		sections.DELETE("/:id", sectionController.DeleteClassSection)
	}

	// Student routes. The enroll route is static and must not collide with the
	// :id parameter routes.
	students := v1.Group("/students")
	{
		students.GET("", studentController.GetAllStudents)
		students.GET("/:id", studentController.GetStudentByID)
		students.POST("", studentController.CreateStudent)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
		students.POST("/enroll", studentController.EnrollStudent)
		students.GET("/:id/grades", studentController.GetStudentGrades)
	}

	// Grade routes
	grades := v1.Group("/grades")
	{
		grades.GET("", gradeController.GetAllGrades)
		grades.GET("/section-grades", gradeController.GetSectionGrades)
		grades.GET("/:id", gradeController.GetGradeByID)
		grades.POST("", gradeController.CreateGrade)
		grades.POST("/bulk-create", gradeController.BulkCreateGrades)
		grades.PUT("/:id", gradeController.UpdateGrade)
		grades.DELETE("/:id", gradeController.DeleteGrade)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
