package domain

type User struct {
	ID        int64  `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Email     string `db:"email" json:"email"`
	Role      string `db:"role" json:"role"` // user | admin
	CreatedAt string `db:"created_at" json:"createdAt"`
}

type Product struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Price       float64 `db:"price" json:"price"`
	Category    string  `db:"category" json:"category"`
	Stock       int     `db:"stock" json:"stock"`
	Description string  `db:"description" json:"description"`
}

type Task struct {
	ID         int64  `db:"id" json:"id"`
	Title      string `db:"title" json:"title"`
	Completed  bool   `db:"completed" json:"completed"`
	Priority   string `db:"priority" json:"priority"` // low | medium | high
	AssignedTo *int64 `db:"assigned_to" json:"assignedTo"`
	CreatedAt  string `db:"created_at" json:"createdAt"`
}

type Order struct {
	ID         int64   `db:"id" json:"id"`
	UserID     int64   `db:"user_id" json:"userId"`
	ProductID  int64   `db:"product_id" json:"productId"`
	Quantity   int     `db:"quantity" json:"quantity"`
	TotalPrice float64 `db:"total_price" json:"totalPrice"`
	Status     string  `db:"status" json:"status"`
	CreatedAt  string  `db:"created_at" json:"createdAt"`
}

// ProductFilter narrows a product listing; zero values mean "no filter".
type ProductFilter struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
	Sort     string // price_asc | price_desc | name
	Limit    int
}

// TaskFilter narrows a task listing.
type TaskFilter struct {
	Completed  *bool
	Priority   string
	AssignedTo *int64
}

// OrderFilter narrows an order listing.
type OrderFilter struct {
	UserID *int64
	Status string
}
