package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/selim/lostfound/internal/app/models"
	"github.com/selim/lostfound/internal/db"
)

// ItemRepository handles database operations for found items
type ItemRepository struct {
	db *db.PostgresDB
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(database *db.PostgresDB) *ItemRepository {
	return &ItemRepository{db: database}
}

// Search retrieves a page of items whose name contains keyword (all items
// when keyword is empty), ordered by pickup_time descending. pickup_time is
// free text, so the ordering is lexical. The total matching count comes back
// via a window function so one round trip serves list and pagination both.
func (r *ItemRepository) Search(ctx context.Context, keyword string, offset uint64, limit int) ([]models.LostItem, int64, error) {
	query := squirrel.Select("id", "name", "description", "pickup_time", "location", "status", "image_ref", "created_at", "COUNT(*) OVER()").
		From("items").
		PlaceholderFormat(squirrel.Dollar)

	if keyword != "" {
		query = query.Where("name LIKE ?", "%"+keyword+"%")
	}

	query = query.OrderBy("pickup_time DESC").
		Limit(uint64(limit)).
		Offset(offset)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var items []models.LostItem
	var total int64

	for rows.Next() {
		var item models.LostItem
		err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Description,
			&item.PickupTime,
			&item.Location,
			&item.Status,
			&item.ImageRef,
			&item.CreatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		items = append(items, item)
	}

	// An out-of-range page returns no rows and therefore no window count;
	// fetch the total separately so page math stays correct.
	if len(items) == 0 {
		countQuery := squirrel.Select("COUNT(*)").From("items").PlaceholderFormat(squirrel.Dollar)
		if keyword != "" {
			countQuery = countQuery.Where("name LIKE ?", "%"+keyword+"%")
		}
		sql, args, err := countQuery.ToSql()
		if err != nil {
			return nil, 0, fmt.Errorf("error building SQL: %w", err)
		}
		if err := r.db.Pool.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("error executing count query: %w", err)
		}
	}

	return items, total, nil
}

// GetByID retrieves an item by ID. Returns nil, nil when no row matches.
func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*models.LostItem, error) {
	query := squirrel.Select("id", "name", "description", "pickup_time", "location", "status", "image_ref", "created_at").
		From("items").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var item models.LostItem
	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.PickupTime,
		&item.Location,
		&item.Status,
		&item.ImageRef,
		&item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &item, nil
}

// Create inserts a new item row with the default pending status.
func (r *ItemRepository) Create(ctx context.Context, item *models.LostItem) (int64, error) {
	query := squirrel.Insert("items").
		Columns("name", "description", "pickup_time", "location", "status", "image_ref").
		Values(item.Name, item.Description, item.PickupTime, item.Location, item.Status, item.ImageRef).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	if err := r.db.Pool.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return id, nil
}

// DeleteWithClaims removes an item and every claim referencing it inside a
// single transaction. Reports how many claims went with the item.
func (r *ItemRepository) DeleteWithClaims(ctx context.Context, id int64) (claimsDeleted int64, err error) {
	err = r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		claimsSQL, claimsArgs, err := squirrel.Delete("claims").
			Where("item_id = ?", id).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("error building SQL: %w", err)
		}

		claimsResult, err := tx.Exec(ctx, claimsSQL, claimsArgs...)
		if err != nil {
			return fmt.Errorf("error deleting claims: %w", err)
		}
		claimsDeleted = claimsResult.RowsAffected()

		itemSQL, itemArgs, err := squirrel.Delete("items").
			Where("id = ?", id).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("error building SQL: %w", err)
		}

		itemResult, err := tx.Exec(ctx, itemSQL, itemArgs...)
		if err != nil {
			return fmt.Errorf("error deleting item: %w", err)
		}
		if itemResult.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return claimsDeleted, nil
}
