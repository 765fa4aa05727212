package repo

import (
	"context"

	dom "github.com/gustavokauee/TaskFlex/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TaskRepo interface {
	Create(ctx context.Context, t dom.Task) (dom.Task, error)
	GetByID(ctx context.Context, id int64) (dom.Task, error)
	ListByUser(ctx context.Context, userID int64) ([]dom.Task, error)
	Update(ctx context.Context, id int64, patch dom.Task) (dom.Task, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type PGTaskRepo struct {
	db *pgxpool.Pool
}

func NewPGTaskRepo(db *pgxpool.Pool) *PGTaskRepo {
	return &PGTaskRepo{db: db}
}

func (r *PGTaskRepo) Create(ctx context.Context, t dom.Task) (dom.Task, error) {
	query := `
		INSERT INTO tasks (title, description, due_date, priority, completed, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, title, description, due_date, priority, completed, user_id, created_at, updated_at`
	var out dom.Task
	err := r.db.QueryRow(ctx, query, t.Title, t.Description, t.DueDate, t.Priority, t.Completed, t.UserID).Scan(
		&out.ID, &out.Title, &out.Description, &out.DueDate, &out.Priority,
		&out.Completed, &out.UserID, &out.CreatedAt, &out.UpdatedAt,
	)
	return out, err
}

func (r *PGTaskRepo) GetByID(ctx context.Context, id int64) (dom.Task, error) {
	query := `
		SELECT id, title, description, due_date, priority, completed, user_id, created_at, updated_at
		FROM tasks WHERE id = $1`
	var t dom.Task
	err := r.db.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Title, &t.Description, &t.DueDate, &t.Priority,
		&t.Completed, &t.UserID, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func (r *PGTaskRepo) ListByUser(ctx context.Context, userID int64) ([]dom.Task, error) {
	query := `
		SELECT id, title, description, due_date, priority, completed, user_id, created_at, updated_at
		FROM tasks WHERE user_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Task
	for rows.Next() {
		var t dom.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.DueDate, &t.Priority,
			&t.Completed, &t.UserID, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *PGTaskRepo) Update(ctx context.Context, id int64, patch dom.Task) (dom.Task, error) {
	query := `
		UPDATE tasks SET title = $2, description = $3, due_date = $4, priority = $5, completed = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING id, title, description, due_date, priority, completed, user_id, created_at, updated_at`
	var t dom.Task
	err := r.db.QueryRow(ctx, query, id, patch.Title, patch.Description, patch.DueDate, patch.Priority, patch.Completed).Scan(
		&t.ID, &t.Title, &t.Description, &t.DueDate, &t.Priority,
		&t.Completed, &t.UserID, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

// Delete removes the row. Returns false when no row matched the id.
func (r *PGTaskRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
