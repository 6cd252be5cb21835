package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/selim/gradebook/internal/app/models"
	"github.com/selim/gradebook/internal/pkg/apperrors"
	"github.com/selim/gradebook/internal/pkg/dberrors"
	"github.com/selim/gradebook/internal/pkg/logger"
)

// CourseFilter holds the optional course list filters. Empty fields are not
// applied; present fields combine conjunctively.
type CourseFilter struct {
	CourseID   string
	CourseName string
}

// CourseRepository handles course database operations
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// courseListQuery builds the filtered course list statement. Each present
// filter adds a case-insensitive substring predicate.
func courseListQuery(sb squirrel.StatementBuilderType, filter CourseFilter) (string, []interface{}, error) {
	sel := sb.Select("id", "course_id", "course_name", "credits", "hours").
		From("courses").
		OrderBy("id")

	cond := squirrel.And{}
	if filter.CourseID != "" {
		cond = append(cond, squirrel.ILike{"course_id": "%" + filter.CourseID + "%"})
	}
	if filter.CourseName != "" {
		cond = append(cond, squirrel.ILike{"course_name": "%" + filter.CourseName + "%"})
	}
	if len(cond) > 0 {
		sel = sel.Where(cond)
	}

	return sel.ToSql()
}

// Create creates a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Insert("courses").
		Columns("course_id", "course_name", "credits", "hours").
		Values(course.CourseID, course.CourseName, course.Credits, course.Hours).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create course SQL")
		return fmt.Errorf("failed to build create course query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&course.ID); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "courses_course_id_key") {
			return apperrors.ErrCourseIDExists
		}
		logger.Error().Err(err).Msg("Error executing create course query")
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	sql, args, err := r.sb.Select("id", "course_id", "course_name", "credits", "hours").
		From("courses").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	var course models.Course
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&course.ID,
		&course.CourseID,
		&course.CourseName,
		&course.Credits,
		&course.Hours,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

// GetAll retrieves all courses matching the filter
func (r *CourseRepository) GetAll(ctx context.Context, filter CourseFilter) ([]*models.Course, error) {
	sql, args, err := courseListQuery(r.sb, filter)
	if err != nil {
		logger.Error().Err(err).Msg("Error building list courses SQL")
		return nil, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	courses := make([]*models.Course, 0)
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.CourseID,
			&course.CourseName,
			&course.Credits,
			&course.Hours,
		); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// Update updates an existing course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Update("courses").
		Set("course_id", course.CourseID).
		Set("course_name", course.CourseName).
		Set("credits", course.Credits).
		Set("hours", course.Hours).
		Where(squirrel.Eq{"id": course.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "courses_course_id_key") {
			return apperrors.ErrCourseIDExists
		}
		logger.Error().Err(err).Msg("Error executing update course query")
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete deletes a course by ID. Sections of the course and their grades go
// with it through the ON DELETE CASCADE chain.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete course query")
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}
