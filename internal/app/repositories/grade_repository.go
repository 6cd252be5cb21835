package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/selim/gradebook/internal/app/models"
	"github.com/selim/gradebook/internal/db"
	"github.com/selim/gradebook/internal/pkg/apperrors"
	"github.com/selim/gradebook/internal/pkg/dberrors"
	"github.com/selim/gradebook/internal/pkg/logger"
)

// GradeRepository handles grade database operations
type GradeRepository struct {
	database *db.PostgresDB
	sb       squirrel.StatementBuilderType
}

// NewGradeRepository creates a new GradeRepository
func NewGradeRepository(database *db.PostgresDB) *GradeRepository {
	return &GradeRepository{
		database: database,
		sb:       squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// gradeSelect builds the base grade select joined to the student, section and
// course tables so the denormalized display names come back in one query.
func gradeSelect(sb squirrel.StatementBuilderType) squirrel.SelectBuilder {
	return sb.Select(
		"g.id", "g.student_id", "g.class_section_id", "g.score",
		"g.created_at", "g.updated_at",
		"s.name AS student_name", "cs.section_name", "c.course_name",
	).
		From("grades g").
		Join("students s ON g.student_id = s.id").
		Join("class_sections cs ON g.class_section_id = cs.id").
		Join("courses c ON cs.course_id = c.id")
}

func scanGrade(row pgx.Row, grade *models.Grade) error {
	return row.Scan(
		&grade.ID,
		&grade.StudentID,
		&grade.ClassSectionID,
		&grade.Score,
		&grade.CreatedAt,
		&grade.UpdatedAt,
		&grade.StudentName,
		&grade.SectionName,
		&grade.CourseName,
	)
}

func (r *GradeRepository) mapWriteError(err error) error {
	if dberrors.IsDuplicateConstraintError(err, "grades_student_section_key") {
		return apperrors.ErrDuplicateGrade
	}
	if dberrors.IsForeignKeyViolation(err, "grades_student_id_fkey") {
		return apperrors.ErrStudentNotFound
	}
	if dberrors.IsForeignKeyViolation(err, "grades_class_section_id_fkey") {
		return apperrors.ErrSectionNotFound
	}
	return err
}

// Create creates a new grade
func (r *GradeRepository) Create(ctx context.Context, grade *models.Grade) error {
	sql, args, err := r.sb.Insert("grades").
		Columns("student_id", "class_section_id", "score").
		Values(grade.StudentID, grade.ClassSectionID, grade.Score).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create grade SQL")
		return fmt.Errorf("failed to build create grade query: %w", err)
	}

	err = r.database.Pool.QueryRow(ctx, sql, args...).
		Scan(&grade.ID, &grade.CreatedAt, &grade.UpdatedAt)
	if err != nil {
		if mapped := r.mapWriteError(err); mapped != err {
			return mapped
		}
		logger.Error().Err(err).Msg("Error executing create grade query")
		return fmt.Errorf("error creating grade: %w", err)
	}

	return nil
}

// CreateBatch inserts all the given grades in a single transaction. Either
// every grade is created or none are. Each grade's ID and timestamps are
// filled in on success.
func (r *GradeRepository) CreateBatch(ctx context.Context, grades []*models.Grade) error {
	if len(grades) == 0 {
		return nil
	}

	return r.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		for _, grade := range grades {
			sql, args, err := r.sb.Insert("grades").
				Columns("student_id", "class_section_id", "score").
				Values(grade.StudentID, grade.ClassSectionID, grade.Score).
				Suffix("RETURNING id, created_at, updated_at").
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build create grade query: %w", err)
			}

			err = tx.QueryRow(ctx, sql, args...).
				Scan(&grade.ID, &grade.CreatedAt, &grade.UpdatedAt)
			if err != nil {
				if mapped := r.mapWriteError(err); mapped != err {
					return mapped
				}
				logger.Error().Err(err).Msg("Error executing batch create grade query")
				return fmt.Errorf("error creating grade: %w", err)
			}
		}
		return nil
	})
}

// GetByID retrieves a grade by ID with its display names
func (r *GradeRepository) GetByID(ctx context.Context, id int64) (*models.Grade, error) {
	sql, args, err := gradeSelect(r.sb).
		Where(squirrel.Eq{"g.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get grade query: %w", err)
	}

	var grade models.Grade
	if err := scanGrade(r.database.Pool.QueryRow(ctx, sql, args...), &grade); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGradeNotFound
		}
		return nil, fmt.Errorf("error retrieving grade: %w", err)
	}

	return &grade, nil
}

func (r *GradeRepository) queryGrades(ctx context.Context, sel squirrel.SelectBuilder) ([]*models.Grade, error) {
	sql, args, err := sel.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list grades SQL")
		return nil, fmt.Errorf("failed to build list grades query: %w", err)
	}

	rows, err := r.database.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing grades: %w", err)
	}
	defer rows.Close()

	grades := make([]*models.Grade, 0)
	for rows.Next() {
		var grade models.Grade
		if err := scanGrade(rows, &grade); err != nil {
			return nil, err
		}
		grades = append(grades, &grade)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return grades, nil
}

// GetAll retrieves all grades in insertion order
func (r *GradeRepository) GetAll(ctx context.Context) ([]*models.Grade, error) {
	return r.queryGrades(ctx, gradeSelect(r.sb).OrderBy("g.id"))
}

// GetByStudentID retrieves all grades of one student in insertion order
func (r *GradeRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Grade, error) {
	return r.queryGrades(ctx, gradeSelect(r.sb).
		Where(squirrel.Eq{"g.student_id": studentID}).
		OrderBy("g.id"))
}

// GetBySectionID retrieves all grades of one class section in insertion order
func (r *GradeRepository) GetBySectionID(ctx context.Context, sectionID int64) ([]*models.Grade, error) {
	return r.queryGrades(ctx, gradeSelect(r.sb).
		Where(squirrel.Eq{"g.class_section_id": sectionID}).
		OrderBy("g.id"))
}

// ExistsForStudentSection reports whether a grade already exists for the given
// student and class section pair.
func (r *GradeRepository) ExistsForStudentSection(ctx context.Context, studentID, sectionID int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("grades").
		Where(squirrel.Eq{"student_id": studentID, "class_section_id": sectionID}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build grade exists query: %w", err)
	}

	var one int
	err = r.database.Pool.QueryRow(ctx, sql, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error checking grade existence: %w", err)
	}

	return true, nil
}

// Update updates an existing grade and refreshes its updated_at timestamp.
// created_at never changes after insert.
func (r *GradeRepository) Update(ctx context.Context, grade *models.Grade) error {
	sql, args, err := r.sb.Update("grades").
		Set("student_id", grade.StudentID).
		Set("class_section_id", grade.ClassSectionID).
		Set("score", grade.Score).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": grade.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update grade query: %w", err)
	}

	cmdTag, err := r.database.Pool.Exec(ctx, sql, args...)
	if err != nil {
		if mapped := r.mapWriteError(err); mapped != err {
			return mapped
		}
		logger.Error().Err(err).Msg("Error executing update grade query")
		return fmt.Errorf("error updating grade: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGradeNotFound
	}

	return nil
}

// Delete deletes a grade by ID
func (r *GradeRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("grades").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete grade query: %w", err)
	}

	cmdTag, err := r.database.Pool.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete grade query")
		return fmt.Errorf("error deleting grade: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGradeNotFound
	}

	return nil
}
