package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/selim/lostfound/internal/app/models"
)

// ClaimRepository handles database operations for claims
type ClaimRepository struct {
	db *pgxpool.Pool
}

// NewClaimRepository creates a new ClaimRepository
func NewClaimRepository(db *pgxpool.Pool) *ClaimRepository {
	return &ClaimRepository{db: db}
}

// Create inserts a new claim row.
func (r *ClaimRepository) Create(ctx context.Context, claim *models.Claim) (int64, error) {
	query := squirrel.Insert("claims").
		Columns("student_name", "student_id", "item_id", "phone", "reason", "status").
		Values(claim.StudentName, claim.StudentID, claim.ItemID, claim.Phone, claim.Reason, claim.Status).
		Suffix("RETURNING id, claim_time").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id, &claim.ClaimTime); err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return id, nil
}

// GetByID retrieves a claim by ID. Returns nil, nil when no row matches.
func (r *ClaimRepository) GetByID(ctx context.Context, id int64) (*models.Claim, error) {
	query := squirrel.Select("id", "student_name", "student_id", "item_id", "phone", "reason", "status", "claim_time", "created_at").
		From("claims").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var claim models.Claim
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&claim.ID,
		&claim.StudentName,
		&claim.StudentID,
		&claim.ItemID,
		&claim.Phone,
		&claim.Reason,
		&claim.Status,
		&claim.ClaimTime,
		&claim.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &claim, nil
}

// FirstByItemID retrieves the earliest claim filed against an item, if any.
func (r *ClaimRepository) FirstByItemID(ctx context.Context, itemID int64) (*models.Claim, error) {
	query := squirrel.Select("id", "student_name", "student_id", "item_id", "phone", "reason", "status", "claim_time", "created_at").
		From("claims").
		Where("item_id = ?", itemID).
		OrderBy("id ASC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var claim models.Claim
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&claim.ID,
		&claim.StudentName,
		&claim.StudentID,
		&claim.ItemID,
		&claim.Phone,
		&claim.Reason,
		&claim.Status,
		&claim.ClaimTime,
		&claim.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &claim, nil
}

// UpdateStatus sets a claim's review status.
func (r *ClaimRepository) UpdateStatus(ctx context.Context, id int64, status models.ReviewStatus) error {
	query := squirrel.Update("claims").
		Set("status", status).
		Where("id = ?", id).
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
		return pgx.ErrNoRows
	}

	return nil
}

// ListAll retrieves every claim newest-first, joined with the item name and
// the registered student name for the review queue.
func (r *ClaimRepository) ListAll(ctx context.Context) ([]models.ClaimSummary, error) {
	query := squirrel.Select(
		"c.id", "c.item_id", "i.name AS item_name",
		"c.student_id", "s.name AS student_name",
		"c.status", "c.created_at").
		From("claims c").
		Join("items i ON i.id = c.item_id").
		Join("students s ON s.student_id = c.student_id").
		OrderBy("c.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var summaries []models.ClaimSummary
	for rows.Next() {
		var s models.ClaimSummary
		err := rows.Scan(
			&s.ID,
			&s.ItemID,
			&s.ItemName,
			&s.StudentID,
			&s.StudentName,
			&s.Status,
			&s.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		summaries = append(summaries, s)
	}

	return summaries, nil
}
