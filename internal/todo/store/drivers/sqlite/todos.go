package sqlite

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/store"
	"github.com/jmoiron/sqlx"
)

var todoColumns = []string{"id", "title", "description", "status", "owner_id", "created_at", "updated_at"}

type todoRow struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Status      string    `db:"status"`
	OwnerID     string    `db:"owner_id"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// mapTodo refuses rows whose status is not a canonical name.
func mapTodo(row todoRow) (domain.Todo, error) {
	st := domain.TodoStatus(row.Status)
	if !st.Valid() {
		return domain.Todo{}, fmt.Errorf("todo %d: %w: %q", row.ID, domain.ErrInvalidStatus, row.Status)
	}
	return domain.Todo{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Status:      st,
		OwnerID:     row.OwnerID,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}

type todosRepo struct {
	db sqlx.ExtContext
}

func (r *todosRepo) CreateTodo(ctx context.Context, t domain.Todo) (domain.Todo, error) {
	now := time.Now().UTC()
	t.CreatedAt, t.UpdatedAt = now, now
	if t.Status == "" {
		t.Status = domain.TodoPending
	}

	query, args, err := psql.Insert("todos").
		Columns("title", "description", "status", "owner_id", "created_at", "updated_at").
		Values(t.Title, t.Description, string(t.Status), t.OwnerID, t.CreatedAt, t.UpdatedAt).
		ToSql()
	if err != nil {
		return domain.Todo{}, err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return domain.Todo{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Todo{}, err
	}
	t.ID = id
	return t, nil
}

func (r *todosRepo) GetTodo(ctx context.Context, id int64, scope domain.Scope) (domain.Todo, error) {
	query, args, err := psql.Select(todoColumns...).
		From("todos").
		Where(sq.And{sq.Eq{"id": id}, scopePredicate(scope)}).
		ToSql()
	if err != nil {
		return domain.Todo{}, err
	}

	var row todoRow
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		return domain.Todo{}, mapNotFound(err)
	}
	return mapTodo(row)
}

func (r *todosRepo) ListTodos(ctx context.Context, scope domain.Scope) ([]domain.Todo, error) {
	query, args, err := psql.Select(todoColumns...).
		From("todos").
		Where(scopePredicate(scope)).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []todoRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, err
	}

	todos := make([]domain.Todo, len(rows))
	for i, row := range rows {
		if todos[i], err = mapTodo(row); err != nil {
			return nil, err
		}
	}
	return todos, nil
}

func (r *todosRepo) UpdateTodo(ctx context.Context, t domain.Todo, scope domain.Scope) (domain.Todo, error) {
	query, args, err := psql.Update("todos").
		Set("title", t.Title).
		Set("description", t.Description).
		Set("status", string(t.Status)).
		Set("updated_at", time.Now().UTC()).
		Where(sq.And{sq.Eq{"id": t.ID}, scopePredicate(scope)}).
		ToSql()
	if err != nil {
		return domain.Todo{}, err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return domain.Todo{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return domain.Todo{}, err
	}
	if n == 0 {
		return domain.Todo{}, store.ErrNotFound
	}
	return r.GetTodo(ctx, t.ID, scope)
}

func (r *todosRepo) DeleteTodo(ctx context.Context, id int64, scope domain.Scope) (bool, error) {
	query, args, err := psql.Delete("todos").
		Where(sq.And{sq.Eq{"id": id}, scopePredicate(scope)}).
		ToSql()
	if err != nil {
		return false, err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
