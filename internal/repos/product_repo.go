package repos

import (
	"strings"

	"stackboard/internal/domain"

	"github.com/jmoiron/sqlx"
)

// LowStockThreshold marks products counted as "low stock" by analytics.
const LowStockThreshold = 20

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `id, name, price, category, stock, description`

func (r *ProductRepo) List(f domain.ProductFilter) ([]domain.Product, error) {
	where := []string{}
	args := []any{}
	if f.Category != "" {
		where = append(where, `LOWER(category) = LOWER(?)`)
		args = append(args, f.Category)
	}
	if f.MinPrice != nil {
		where = append(where, `price >= ?`)
		args = append(args, *f.MinPrice)
	}
	if f.MaxPrice != nil {
		where = append(where, `price <= ?`)
		args = append(args, *f.MaxPrice)
	}

	q := `SELECT ` + productCols + ` FROM products`
	if len(where) > 0 {
		q += ` WHERE ` + strings.Join(where, ` AND `)
	}
	switch f.Sort {
	case "price_asc":
		q += ` ORDER BY price ASC, id`
	case "price_desc":
		q += ` ORDER BY price DESC, id`
	case "name":
		q += ` ORDER BY name COLLATE NOCASE, id`
	default:
		q += ` ORDER BY id`
	}
	if f.Limit > 0 {
		q += ` LIMIT ?`
		args = append(args, f.Limit)
	}

	out := []domain.Product{}
	err := r.db.Select(&out, q, args...)
	return out, err
}

func (r *ProductRepo) ByID(id int64) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT `+productCols+` FROM products WHERE id = ?`, id)
	return p, err
}

func (r *ProductRepo) Create(name string, price float64, category string, stock int, description string) (domain.Product, error) {
	res, err := r.db.Exec(`INSERT INTO products(name,price,category,stock,description) VALUES(?,?,?,?,?)`,
		name, price, category, stock, description)
	if err != nil {
		return domain.Product{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Product{}, err
	}
	return domain.Product{ID: id, Name: name, Price: price, Category: category, Stock: stock, Description: description}, nil
}

func (r *ProductRepo) Stats() (domain.ProductStats, error) {
	var s domain.ProductStats
	err := r.db.Get(&s, `
	  SELECT COUNT(*) AS total,
	         COUNT(DISTINCT category) AS categories,
	         COALESCE(SUM(price * stock), 0) AS total_value,
	         COALESCE(SUM(CASE WHEN stock < ? THEN 1 ELSE 0 END), 0) AS low_stock
	  FROM products`, LowStockThreshold)
	return s, err
}

// Search matches the query as a case-insensitive substring of name,
// description, or category.
func (r *ProductRepo) Search(q string) ([]domain.Product, error) {
	out := []domain.Product{}
	q = strings.ToLower(q)
	err := r.db.Select(&out, `
	  SELECT `+productCols+` FROM products
	  WHERE INSTR(LOWER(name), ?) > 0
	     OR INSTR(LOWER(description), ?) > 0
	     OR INSTR(LOWER(category), ?) > 0
	  ORDER BY id`, q, q, q)
	return out, err
}
