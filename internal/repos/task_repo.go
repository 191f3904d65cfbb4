package repos

import (
	"database/sql"
	"strings"
	"time"

	"stackboard/internal/domain"

	"github.com/jmoiron/sqlx"
)

type TaskRepo struct{ db *sqlx.DB }

func NewTaskRepo(db *sqlx.DB) *TaskRepo { return &TaskRepo{db: db} }

const taskCols = `id, title, completed, priority, assigned_to, created_at`

func (r *TaskRepo) List(f domain.TaskFilter) ([]domain.Task, error) {
	where := []string{}
	args := []any{}
	if f.Completed != nil {
		where = append(where, `completed = ?`)
		args = append(args, *f.Completed)
	}
	if f.Priority != "" {
		where = append(where, `priority = ?`)
		args = append(args, f.Priority)
	}
	if f.AssignedTo != nil {
		where = append(where, `assigned_to = ?`)
		args = append(args, *f.AssignedTo)
	}

	q := `SELECT ` + taskCols + ` FROM tasks`
	if len(where) > 0 {
		q += ` WHERE ` + strings.Join(where, ` AND `)
	}
	q += ` ORDER BY id`

	out := []domain.Task{}
	err := r.db.Select(&out, q, args...)
	return out, err
}

func (r *TaskRepo) ByID(id int64) (domain.Task, error) {
	var t domain.Task
	err := r.db.Get(&t, `SELECT `+taskCols+` FROM tasks WHERE id = ?`, id)
	return t, err
}

func (r *TaskRepo) Create(title, priority string, assignedTo *int64) (domain.Task, error) {
	createdAt := time.Now().UTC().Format(time.RFC3339)
	res, err := r.db.Exec(`INSERT INTO tasks(title,completed,priority,assigned_to,created_at) VALUES(?,0,?,?,?)`,
		title, priority, assignedTo, createdAt)
	if err != nil {
		return domain.Task{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}
	return domain.Task{ID: id, Title: title, Completed: false, Priority: priority, AssignedTo: assignedTo, CreatedAt: createdAt}, nil
}

// Update applies a field-by-field patch; nil fields are preserved.
// An explicit assignedTo null clears the assignment.
func (r *TaskRepo) Update(id int64, p domain.TaskPatch) (domain.Task, error) {
	set := []string{}
	args := []any{}
	if p.Title != nil {
		set = append(set, "title = ?")
		args = append(args, *p.Title)
	}
	if p.Completed != nil {
		set = append(set, "completed = ?")
		args = append(args, *p.Completed)
	}
	if p.Priority != nil {
		set = append(set, "priority = ?")
		args = append(args, *p.Priority)
	}
	if p.AssignedTo.Set {
		set = append(set, "assigned_to = ?")
		args = append(args, p.AssignedTo.Value)
	}
	if len(set) == 0 {
		return r.ByID(id)
	}
	args = append(args, id)
	res, err := r.db.Exec(`UPDATE tasks SET `+strings.Join(set, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return domain.Task{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Task{}, sql.ErrNoRows
	}
	return r.ByID(id)
}

// Counts returns the store-wide completed/pending split, reported alongside
// every task listing regardless of filters.
func (r *TaskRepo) Counts() (completed, pending int, err error) {
	var s domain.TaskStats
	if s, err = r.Stats(); err != nil {
		return 0, 0, err
	}
	return s.Completed, s.Pending, nil
}

func (r *TaskRepo) Stats() (domain.TaskStats, error) {
	var s domain.TaskStats
	err := r.db.Get(&s, `
	  SELECT COUNT(*) AS total,
	         COALESCE(SUM(CASE WHEN completed = 1 THEN 1 ELSE 0 END), 0) AS completed,
	         COALESCE(SUM(CASE WHEN completed = 0 THEN 1 ELSE 0 END), 0) AS pending,
	         COALESCE(SUM(CASE WHEN priority = 'high' THEN 1 ELSE 0 END), 0) AS high_priority
	  FROM tasks`)
	return s, err
}

// Search matches the query as a case-insensitive substring of the title.
func (r *TaskRepo) Search(q string) ([]domain.Task, error) {
	out := []domain.Task{}
	err := r.db.Select(&out, `
	  SELECT `+taskCols+` FROM tasks
	  WHERE INSTR(LOWER(title), ?) > 0
	  ORDER BY id`, strings.ToLower(q))
	return out, err
}
