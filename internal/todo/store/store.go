package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Drivers implement it and expose
// sub-repositories so a transaction can hand out the same repos bound to
// itself.
type Store interface {
	Users() Users
	Roles() Roles
	Todos() Todos

	ApplyMigrations() error

	// Tx starts a read/write transaction. The caller MUST Commit or Rollback.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise. Inside fn only tx may be used.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error

	// Optimize runs the driver's routine maintenance.
	Optimize(ctx context.Context) error
}

// Tx is a transactional store. Nested transactions are not supported.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts u. ErrAlreadyExists if the normalized email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByEmail matches case-insensitively.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
}

type Roles interface {
	GetRoleByName(ctx context.Context, name string) (domain.Role, error)

	// CreateRole inserts r. ErrAlreadyExists if the name is taken.
	CreateRole(ctx context.Context, r domain.Role) error

	// ListUserRoles returns role names held by userID, sorted.
	ListUserRoles(ctx context.Context, userID string) ([]string, error)

	// AddUserRole grants roleID to userID. Granting twice is a no-op.
	AddUserRole(ctx context.Context, userID, roleID string) error

	UserHasRole(ctx context.Context, userID, roleName string) (bool, error)
}

type Todos interface {
	// CreateTodo inserts t and returns it with the assigned id.
	CreateTodo(ctx context.Context, t domain.Todo) (domain.Todo, error)

	// GetTodo returns ErrNotFound when id does not exist or is outside scope.
	GetTodo(ctx context.Context, id int64, scope domain.Scope) (domain.Todo, error)

	// ListTodos returns every todo within scope ordered by id.
	ListTodos(ctx context.Context, scope domain.Scope) ([]domain.Todo, error)

	// UpdateTodo replaces title, description and status of t.ID within scope.
	// The owner is never changed.
	UpdateTodo(ctx context.Context, t domain.Todo, scope domain.Scope) (domain.Todo, error)

	// DeleteTodo reports whether a row within scope was removed.
	DeleteTodo(ctx context.Context, id int64, scope domain.Scope) (bool, error)
}
