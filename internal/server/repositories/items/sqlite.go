package items

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // pure Go driver, no CGO

	"github.com/akarpovs/stockkeeper/internal/common"
	"github.com/akarpovs/stockkeeper/internal/dbx"
	"github.com/akarpovs/stockkeeper/internal/server/models"
)

// SQLiteRepository implements Repository over SQLite.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) WithTx(tx dbx.DBTX) Repository {
	return &SQLiteRepository{db: tx}
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.Item, error) {
	query := `SELECT id, name, description, quantity, created_by, created_at
	          FROM items ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		var it models.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.Quantity, &it.CreatedBy, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *SQLiteRepository) Get(ctx context.Context, id string) (*models.Item, error) {
	query := `SELECT id, name, description, quantity, created_by, created_at
	          FROM items WHERE id = ?`

	it := &models.Item{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&it.ID, &it.Name, &it.Description, &it.Quantity, &it.CreatedBy, &it.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return it, nil
}

func (r *SQLiteRepository) Upsert(ctx context.Context, item *models.Item) error {
	query := `INSERT INTO items (id, name, description, quantity, created_by, created_at)
	          VALUES (?, ?, ?, ?, ?, ?)
	          ON CONFLICT(id) DO UPDATE SET
	              name = excluded.name,
	              description = excluded.description,
	              quantity = excluded.quantity,
	              created_by = excluded.created_by,
	              created_at = excluded.created_at`

	_, err := r.db.ExecContext(ctx, query,
		item.ID, item.Name, item.Description, item.Quantity, item.CreatedBy, item.CreatedAt)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	return nil
}

var _ Repository = (*SQLiteRepository)(nil)
