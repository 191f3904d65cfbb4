package repos

import (
	"database/sql"
	"strings"
	"time"

	"stackboard/internal/domain"

	"github.com/jmoiron/sqlx"
)

type UserRepo struct{ db *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{db: db} }

const userCols = `id, name, email, role, created_at`

func (r *UserRepo) List(role string, limit int) ([]domain.User, error) {
	q := `SELECT ` + userCols + ` FROM users`
	args := []any{}
	if role != "" {
		q += ` WHERE role = ?`
		args = append(args, role)
	}
	q += ` ORDER BY id`
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	out := []domain.User{}
	err := r.db.Select(&out, q, args...)
	return out, err
}

func (r *UserRepo) ByID(id int64) (domain.User, error) {
	var u domain.User
	err := r.db.Get(&u, `SELECT `+userCols+` FROM users WHERE id = ?`, id)
	return u, err
}

func (r *UserRepo) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM users`)
	return n, err
}

// Page returns one page of users in insertion order.
func (r *UserRepo) Page(offset, limit int) ([]domain.User, error) {
	out := []domain.User{}
	err := r.db.Select(&out, `SELECT `+userCols+` FROM users ORDER BY id LIMIT ? OFFSET ?`, limit, offset)
	return out, err
}

func (r *UserRepo) EmailExists(email string) (bool, error) {
	var n int
	if err := r.db.Get(&n, `SELECT COUNT(*) FROM users WHERE email = ?`, email); err != nil {
		return false, err
	}
	return n > 0, nil
}

// Create inserts a user after the creation-time duplicate-email check.
func (r *UserRepo) Create(name, email, role string) (domain.User, error) {
	exists, err := r.EmailExists(email)
	if err != nil {
		return domain.User{}, err
	}
	if exists {
		return domain.User{}, ErrDuplicateEmail
	}

	createdAt := time.Now().UTC().Format(time.RFC3339)
	res, err := r.db.Exec(`INSERT INTO users(name,email,role,created_at) VALUES(?,?,?,?)`,
		name, email, role, createdAt)
	if err != nil {
		return domain.User{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.User{}, err
	}
	return domain.User{ID: id, Name: name, Email: email, Role: role, CreatedAt: createdAt}, nil
}

// Update applies a field-by-field patch; nil fields are preserved.
func (r *UserRepo) Update(id int64, p domain.UserPatch) (domain.User, error) {
	set := []string{}
	args := []any{}
	if p.Name != nil {
		set = append(set, "name = ?")
		args = append(args, *p.Name)
	}
	if p.Email != nil {
		set = append(set, "email = ?")
		args = append(args, *p.Email)
	}
	if p.Role != nil {
		set = append(set, "role = ?")
		args = append(args, *p.Role)
	}
	if len(set) == 0 {
		return r.ByID(id)
	}
	args = append(args, id)
	res, err := r.db.Exec(`UPDATE users SET `+strings.Join(set, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return domain.User{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.User{}, sql.ErrNoRows
	}
	return r.ByID(id)
}

// Delete removes a user and returns the removed row. Tasks and orders that
// reference the user are intentionally left untouched.
func (r *UserRepo) Delete(id int64) (domain.User, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return domain.User{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var u domain.User
	if err := tx.Get(&u, `SELECT `+userCols+` FROM users WHERE id = ?`, id); err != nil {
		return domain.User{}, err
	}
	if _, err := tx.Exec(`DELETE FROM users WHERE id = ?`, id); err != nil {
		return domain.User{}, err
	}
	return u, tx.Commit()
}

func (r *UserRepo) Stats() (domain.UserStats, error) {
	var s domain.UserStats
	err := r.db.Get(&s, `
	  SELECT COUNT(*) AS total,
	         COALESCE(SUM(CASE WHEN role = 'admin' THEN 1 ELSE 0 END), 0) AS admins,
	         COALESCE(SUM(CASE WHEN role = 'user'  THEN 1 ELSE 0 END), 0) AS regular
	  FROM users`)
	return s, err
}

// Search matches the query as a case-insensitive substring of name or email.
func (r *UserRepo) Search(q string) ([]domain.User, error) {
	out := []domain.User{}
	q = strings.ToLower(q)
	err := r.db.Select(&out, `
	  SELECT `+userCols+` FROM users
	  WHERE INSTR(LOWER(name), ?) > 0 OR INSTR(LOWER(email), ?) > 0
	  ORDER BY id`, q, q)
	return out, err
}
