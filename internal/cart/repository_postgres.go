package cart

import (
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listCartItemsQuery = `
		SELECT "productId", quantity
		FROM cart_items
		WHERE "userId" = $1
		ORDER BY "itemId"
	`
	deleteCartItemsQuery = `
		DELETE FROM cart_items WHERE "userId" = $1
	`
	insertCartItemsQuery = `
		INSERT INTO cart_items ("userId", "productId", quantity)
		SELECT $1, pid, qty
		FROM unnest($2::int[], $3::int[]) AS t(pid, qty)
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListCartItems(userID string) ([]RemoteItem, error) {
	rows, err := r.db.Query(listCartItemsQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]RemoteItem, 0)
	for rows.Next() {
		var it RemoteItem
		if err := rows.Scan(&it.ProductID, &it.Quantity); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) DeleteAllCartItems(userID string) error {
	_, err := r.db.Exec(deleteCartItemsQuery, userID)
	return err
}

func (r *PostgresRepository) InsertCartItems(userID string, items []RemoteItem) error {
	if len(items) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(items))
	qtys := make([]int64, 0, len(items))
	for _, it := range items {
		ids = append(ids, int64(it.ProductID))
		qtys = append(qtys, int64(it.Quantity))
	}
	_, err := r.db.Exec(insertCartItemsQuery, userID, pq.Array(ids), pq.Array(qtys))
	return err
}
