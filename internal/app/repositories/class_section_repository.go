package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/selim/gradebook/internal/app/models"
	"github.com/selim/gradebook/internal/pkg/apperrors"
	"github.com/selim/gradebook/internal/pkg/dberrors"
	"github.com/selim/gradebook/internal/pkg/logger"
)

// SectionFilter holds the optional class section list filters. Course matches
// a substring of the related course's course_id or course_name; Semester
// matches a substring of the section's semester label.
type SectionFilter struct {
	Course   string
	Semester string
}

// ClassSectionRepository handles class section database operations
type ClassSectionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewClassSectionRepository creates a new ClassSectionRepository
func NewClassSectionRepository(db *pgxpool.Pool) *ClassSectionRepository {
	return &ClassSectionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// sectionSelect builds the base section select joined to the owning course so
// course_name is filled in at read time.
func sectionSelect(sb squirrel.StatementBuilderType) squirrel.SelectBuilder {
	return sb.Select(
		"cs.id", "cs.section_id", "cs.section_name", "cs.semester", "cs.location",
		"cs.course_id", "c.course_name",
	).
		From("class_sections cs").
		Join("courses c ON cs.course_id = c.id")
}

// sectionListQuery builds the filtered section list statement. The course
// filter matches either the course code or the course name (OR); both filters
// combine conjunctively when present.
func sectionListQuery(sb squirrel.StatementBuilderType, filter SectionFilter) (string, []interface{}, error) {
	sel := sectionSelect(sb).OrderBy("cs.id")

	cond := squirrel.And{}
	if filter.Course != "" {
		course := "%" + strings.TrimSpace(filter.Course) + "%"
		cond = append(cond, squirrel.Or{
			squirrel.ILike{"c.course_id": course},
			squirrel.ILike{"c.course_name": course},
		})
	}
	if filter.Semester != "" {
		cond = append(cond, squirrel.ILike{"cs.semester": "%" + strings.TrimSpace(filter.Semester) + "%"})
	}
	if len(cond) > 0 {
		sel = sel.Where(cond)
	}

	return sel.ToSql()
}

func scanSection(row pgx.Row, section *models.ClassSection) error {
	return row.Scan(
		&section.ID,
		&section.SectionID,
		&section.SectionName,
		&section.Semester,
		&section.Location,
		&section.CourseID,
		&section.CourseName,
	)
}

// Create creates a new class section
func (r *ClassSectionRepository) Create(ctx context.Context, section *models.ClassSection) error {
	sql, args, err := r.sb.Insert("class_sections").
		Columns("section_id", "section_name", "semester", "location", "course_id").
		Values(section.SectionID, section.SectionName, section.Semester, section.Location, section.CourseID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create class section SQL")
		return fmt.Errorf("failed to build create class section query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&section.ID); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "class_sections_section_id_key") {
			return apperrors.ErrSectionIDExists
		}
		if dberrors.IsForeignKeyViolation(err, "class_sections_course_id_fkey") {
			return apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Msg("Error executing create class section query")
		return fmt.Errorf("error creating class section: %w", err)
	}

	return nil
}

// GetByID retrieves a class section by ID
func (r *ClassSectionRepository) GetByID(ctx context.Context, id int64) (*models.ClassSection, error) {
	sql, args, err := sectionSelect(r.sb).
		Where(squirrel.Eq{"cs.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get class section query: %w", err)
	}

	var section models.ClassSection
	if err := scanSection(r.db.QueryRow(ctx, sql, args...), &section); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSectionNotFound
		}
		return nil, fmt.Errorf("error retrieving class section: %w", err)
	}

	return &section, nil
}

// GetAll retrieves all class sections matching the filter
func (r *ClassSectionRepository) GetAll(ctx context.Context, filter SectionFilter) ([]*models.ClassSection, error) {
	sql, args, err := sectionListQuery(r.sb, filter)
	if err != nil {
		logger.Error().Err(err).Msg("Error building list class sections SQL")
		return nil, fmt.Errorf("failed to build list class sections query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing class sections: %w", err)
	}
	defer rows.Close()

	sections := make([]*models.ClassSection, 0)
	for rows.Next() {
		var section models.ClassSection
		if err := scanSection(rows, &section); err != nil {
			return nil, err
		}
		sections = append(sections, &section)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sections, nil
}

// Update updates an existing class section
func (r *ClassSectionRepository) Update(ctx context.Context, section *models.ClassSection) error {
	sql, args, err := r.sb.Update("class_sections").
		Set("section_id", section.SectionID).
		Set("section_name", section.SectionName).
		Set("semester", section.Semester).
		Set("location", section.Location).
		Set("course_id", section.CourseID).
		Where(squirrel.Eq{"id": section.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update class section query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "class_sections_section_id_key") {
			return apperrors.ErrSectionIDExists
		}
		if dberrors.IsForeignKeyViolation(err, "class_sections_course_id_fkey") {
			return apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Msg("Error executing update class section query")
		return fmt.Errorf("error updating class section: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSectionNotFound
	}

	return nil
}

// Delete deletes a class section by ID. Grades and enrollment rows of the
// section are removed by the ON DELETE CASCADE constraints.
func (r *ClassSectionRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("class_sections").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete class section query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete class section query")
		return fmt.Errorf("error deleting class section: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSectionNotFound
	}

	return nil
}
