package domain

// Analytics is a full recomputation over the current store; nothing is cached.
type Analytics struct {
	Users     UserStats    `json:"users"`
	Products  ProductStats `json:"products"`
	Orders    OrderStats   `json:"orders"`
	Tasks     TaskStats    `json:"tasks"`
	Timestamp string       `json:"timestamp"`
}

type UserStats struct {
	Total   int `db:"total" json:"total"`
	Admins  int `db:"admins" json:"admins"`
	Regular int `db:"regular" json:"regular"`
}

type ProductStats struct {
	Total      int     `db:"total" json:"total"`
	Categories int     `db:"categories" json:"categories"`
	TotalValue float64 `db:"total_value" json:"totalValue"`
	LowStock   int     `db:"low_stock" json:"lowStock"`
}

type OrderStats struct {
	Total        int     `db:"total" json:"total"`
	Pending      int     `db:"pending" json:"pending"`
	TotalRevenue float64 `db:"total_revenue" json:"totalRevenue"`
}

type TaskStats struct {
	Total        int `db:"total" json:"total"`
	Completed    int `db:"completed" json:"completed"`
	Pending      int `db:"pending" json:"pending"`
	HighPriority int `db:"high_priority" json:"highPriority"`
}
