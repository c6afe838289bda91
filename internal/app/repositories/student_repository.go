package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/selim/lostfound/internal/app/models"
	"github.com/selim/lostfound/internal/pkg/apperrors"
	"github.com/selim/lostfound/internal/pkg/dberrors"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

// Create inserts a new student row. The primary key doubles as the duplicate
// check backstop; a unique violation maps to ErrStudentAlreadyExists.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := squirrel.Insert("students").
		Columns("student_id", "name", "email", "phone", "password_hash").
		Values(student.StudentID, student.Name, student.Email, student.Phone, student.PasswordHash).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrStudentAlreadyExists
		}
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// GetByStudentID retrieves a student by campus identifier. Returns nil, nil
// when no row matches.
func (r *StudentRepository) GetByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	query := squirrel.Select("student_id", "name", "email", "phone", "password_hash", "created_at").
		From("students").
		Where("student_id = ?", studentID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var student models.Student
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&student.StudentID,
		&student.Name,
		&student.Email,
		&student.Phone,
		&student.PasswordHash,
		&student.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &student, nil
}

// UpdatePasswordHash replaces a student's stored credential hash.
func (r *StudentRepository) UpdatePasswordHash(ctx context.Context, studentID, passwordHash string) error {
	query := squirrel.Update("students").
		Set("password_hash", passwordHash).
		Where("student_id = ?", studentID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}
