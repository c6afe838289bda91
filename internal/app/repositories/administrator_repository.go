package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/selim/lostfound/internal/app/models"
	"github.com/selim/lostfound/internal/pkg/dberrors"
)

// AdministratorRepository handles database operations for staff accounts
type AdministratorRepository struct {
	db *pgxpool.Pool
}

// NewAdministratorRepository creates a new AdministratorRepository
func NewAdministratorRepository(db *pgxpool.Pool) *AdministratorRepository {
	return &AdministratorRepository{db: db}
}

// GetByEmail retrieves an administrator by email. Returns nil, nil when no
// row matches.
func (r *AdministratorRepository) GetByEmail(ctx context.Context, email string) (*models.Administrator, error) {
	query := squirrel.Select("id", "email", "password_hash").
		From("administrators").
		Where("email = ?", email).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var admin models.Administrator
	err = r.db.QueryRow(ctx, sql, args...).Scan(&admin.ID, &admin.Email, &admin.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &admin, nil
}

// GetByID retrieves an administrator by row id. Returns nil, nil when no
// row matches.
func (r *AdministratorRepository) GetByID(ctx context.Context, id int64) (*models.Administrator, error) {
	query := squirrel.Select("id", "email", "password_hash").
		From("administrators").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var admin models.Administrator
	err = r.db.QueryRow(ctx, sql, args...).Scan(&admin.ID, &admin.Email, &admin.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &admin, nil
}

// Create inserts a new administrator account. Used by the seeder; duplicate
// emails are reported so the caller can treat an existing row as success.
func (r *AdministratorRepository) Create(ctx context.Context, admin *models.Administrator) (int64, error) {
	query := squirrel.Insert("administrators").
		Columns("email", "password_hash").
		Values(admin.Email, admin.PasswordHash).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, ErrAdministratorExists
		}
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return id, nil
}

// ErrAdministratorExists reports a duplicate administrator email on Create.
var ErrAdministratorExists = errors.New("administrator already exists")
