package sqlite

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/jmoiron/sqlx"
)

type roleRow struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func mapRole(row roleRow) domain.Role {
	return domain.Role{
		ID:        row.ID,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

type rolesRepo struct {
	db sqlx.ExtContext
}

func (r *rolesRepo) GetRoleByName(ctx context.Context, name string) (domain.Role, error) {
	query, args, err := psql.Select("id", "name", "created_at", "updated_at").
		From("roles").
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return domain.Role{}, err
	}

	var row roleRow
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		return domain.Role{}, mapNotFound(err)
	}
	return mapRole(row), nil
}

func (r *rolesRepo) CreateRole(ctx context.Context, role domain.Role) error {
	now := time.Now().UTC()
	query, args, err := psql.Insert("roles").
		Columns("id", "name", "created_at", "updated_at").
		Values(role.ID, role.Name, now, now).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return mapConstraint(err)
}

func (r *rolesRepo) ListUserRoles(ctx context.Context, userID string) ([]string, error) {
	query, args, err := psql.Select("r.name").
		From("user_roles ur").
		Join("roles r ON r.id = ur.role_id").
		Where(sq.Eq{"ur.user_id": userID}).
		OrderBy("r.name").
		ToSql()
	if err != nil {
		return nil, err
	}

	names := []string{}
	if err := sqlx.SelectContext(ctx, r.db, &names, query, args...); err != nil {
		return nil, err
	}
	return names, nil
}

func (r *rolesRepo) AddUserRole(ctx context.Context, userID, roleID string) error {
	query, args, err := psql.Insert("user_roles").
		Options("OR IGNORE").
		Columns("user_id", "role_id", "created_at").
		Values(userID, roleID, time.Now().UTC()).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *rolesRepo) UserHasRole(ctx context.Context, userID, roleName string) (bool, error) {
	query, args, err := psql.Select("COUNT(1)").
		From("user_roles ur").
		Join("roles r ON r.id = ur.role_id").
		Where(sq.Eq{"ur.user_id": userID, "r.name": roleName}).
		ToSql()
	if err != nil {
		return false, err
	}

	var n int
	if err := sqlx.GetContext(ctx, r.db, &n, query, args...); err != nil {
		return false, err
	}
	return n > 0, nil
}
