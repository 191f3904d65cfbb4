package repos

import (
	"errors"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Business-rule errors surfaced by repos; handlers map them to status codes.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrDuplicateEmail    = errors.New("email already exists")
)

// OpenDB opens the backing store. The default DSN is ":memory:", so the
// store lives and dies with the process. A single connection serializes
// every read-modify-write sequence, which stands in for the original
// runtime's implicit single-threaded atomicity.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	// No unique index on email: uniqueness is checked at creation only.
	// No foreign keys: deleting a user leaves dangling assignedTo/userId
	// references, resolved as "Unknown" by clients.
	schema := `
CREATE TABLE IF NOT EXISTS users(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  email TEXT NOT NULL,
  role TEXT NOT NULL DEFAULT 'user' CHECK (role IN ('user','admin')),
  created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS products(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  price NUMERIC NOT NULL CHECK (price >= 0),
  category TEXT NOT NULL,
  stock INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
  description TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS tasks(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  title TEXT NOT NULL,
  completed INTEGER NOT NULL DEFAULT 0,
  priority TEXT NOT NULL DEFAULT 'medium' CHECK (priority IN ('low','medium','high')),
  assigned_to INTEGER,
  created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS orders(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id INTEGER NOT NULL,
  product_id INTEGER NOT NULL,
  quantity INTEGER NOT NULL CHECK (quantity >= 1),
  total_price NUMERIC NOT NULL,
  status TEXT NOT NULL DEFAULT 'pending',
  created_at TEXT NOT NULL
);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM users`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo users/products/tasks")
	now := time.Now().UTC().Format(time.RFC3339)

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO users(id,name,email,role,created_at) VALUES
	  (1,'John Doe','john@example.com','admin',?),
	  (2,'Jane Smith','jane@example.com','user',?),
	  (3,'Bob Johnson','bob@example.com','user',?)`, now, now, now)

	tx.MustExec(`INSERT INTO products(id,name,price,category,stock,description) VALUES
	  (1,'Laptop',999.99,'Electronics',50,'High-performance laptop'),
	  (2,'Smartphone',699.99,'Electronics',100,'Latest smartphone model'),
	  (3,'Headphones',199.99,'Electronics',75,'Wireless noise-canceling headphones'),
	  (4,'Coffee Maker',89.99,'Home',30,'Automatic coffee maker'),
	  (5,'Book',14.99,'Education',200,'Programming fundamentals book')`)

	tx.MustExec(`INSERT INTO tasks(id,title,completed,priority,assigned_to,created_at) VALUES
	  (1,'Complete project setup',0,'high',1,?),
	  (2,'Write documentation',1,'medium',2,?),
	  (3,'Test API endpoints',0,'high',3,?)`, now, now, now)

	return tx.Commit()
}
