package sqlite

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/jmoiron/sqlx"
)

var userColumns = []string{
	"id", "email", "normalized_email", "username", "password_hash",
	"first_name", "last_name", "gender", "age", "phone_number",
	"created_at", "updated_at",
}

type userRow struct {
	ID              string    `db:"id"`
	Email           string    `db:"email"`
	NormalizedEmail string    `db:"normalized_email"`
	Username        string    `db:"username"`
	PasswordHash    string    `db:"password_hash"`
	FirstName       string    `db:"first_name"`
	LastName        string    `db:"last_name"`
	Gender          string    `db:"gender"`
	Age             int       `db:"age"`
	PhoneNumber     string    `db:"phone_number"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func mapUser(row userRow) domain.User {
	return domain.User{
		ID:              row.ID,
		Email:           row.Email,
		NormalizedEmail: row.NormalizedEmail,
		Username:        row.Username,
		PasswordHash:    row.PasswordHash,
		FirstName:       row.FirstName,
		LastName:        row.LastName,
		Gender:          row.Gender,
		Age:             row.Age,
		PhoneNumber:     row.PhoneNumber,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}

type usersRepo struct {
	db sqlx.ExtContext
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = u.CreatedAt
	}
	if u.NormalizedEmail == "" {
		u.NormalizedEmail = domain.NormalizeEmail(u.Email)
	}
	if u.Username == "" {
		u.Username = u.Email
	}

	query, args, err := psql.Insert("users").
		Columns(userColumns...).
		Values(
			u.ID, u.Email, u.NormalizedEmail, u.Username, u.PasswordHash,
			u.FirstName, u.LastName, u.Gender, u.Age, u.PhoneNumber,
			u.CreatedAt, u.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return mapConstraint(err)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	query, args, err := psql.Select(userColumns...).
		From("users").
		Where(sq.Eq{"normalized_email": domain.NormalizeEmail(email)}).
		Limit(1).
		ToSql()
	if err != nil {
		return domain.User{}, err
	}

	var row userRow
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}
