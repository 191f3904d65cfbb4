package repos

import (
	"database/sql"
	"strings"
	"time"

	"stackboard/internal/domain"

	"github.com/jmoiron/sqlx"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

const orderCols = `id, user_id, product_id, quantity, total_price, status, created_at`

func (r *OrderRepo) List(f domain.OrderFilter) ([]domain.Order, error) {
	where := []string{}
	args := []any{}
	if f.UserID != nil {
		where = append(where, `user_id = ?`)
		args = append(args, *f.UserID)
	}
	if f.Status != "" {
		where = append(where, `status = ?`)
		args = append(args, f.Status)
	}

	q := `SELECT ` + orderCols + ` FROM orders`
	if len(where) > 0 {
		q += ` WHERE ` + strings.Join(where, ` AND `)
	}
	q += ` ORDER BY id`

	out := []domain.Order{}
	err := r.db.Select(&out, q, args...)
	return out, err
}

// Place runs the compound order-creation inside one transaction: resolve
// user and product, check stock, insert the order with the current unit
// price snapshotted into total_price, and decrement the product's stock.
// Any failure rolls the whole operation back.
func (r *OrderRepo) Place(userID, productID int64, quantity int) (domain.Order, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return domain.Order{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var n int
	if err := tx.Get(&n, `SELECT COUNT(*) FROM users WHERE id = ?`, userID); err != nil {
		return domain.Order{}, err
	}
	if n == 0 {
		return domain.Order{}, ErrUserNotFound
	}

	var p domain.Product
	if err := tx.Get(&p, `SELECT `+productCols+` FROM products WHERE id = ?`, productID); err != nil {
		if err == sql.ErrNoRows {
			return domain.Order{}, ErrProductNotFound
		}
		return domain.Order{}, err
	}
	if p.Stock < quantity {
		return domain.Order{}, ErrInsufficientStock
	}

	createdAt := time.Now().UTC().Format(time.RFC3339)
	total := p.Price * float64(quantity)
	res, err := tx.Exec(`INSERT INTO orders(user_id,product_id,quantity,total_price,status,created_at)
	  VALUES(?,?,?,?,'pending',?)`, userID, productID, quantity, total, createdAt)
	if err != nil {
		return domain.Order{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Order{}, err
	}

	// The guard re-checks stock so the decrement can never go negative.
	dec, err := tx.Exec(`UPDATE products SET stock = stock - ? WHERE id = ? AND stock >= ?`,
		quantity, productID, quantity)
	if err != nil {
		return domain.Order{}, err
	}
	if affected, _ := dec.RowsAffected(); affected == 0 {
		return domain.Order{}, ErrInsufficientStock
	}

	if err := tx.Commit(); err != nil {
		return domain.Order{}, err
	}
	return domain.Order{
		ID: id, UserID: userID, ProductID: productID, Quantity: quantity,
		TotalPrice: total, Status: "pending", CreatedAt: createdAt,
	}, nil
}

func (r *OrderRepo) Stats() (domain.OrderStats, error) {
	var s domain.OrderStats
	err := r.db.Get(&s, `
	  SELECT COUNT(*) AS total,
	         COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0) AS pending,
	         COALESCE(SUM(total_price), 0) AS total_revenue
	  FROM orders`)
	return s, err
}
