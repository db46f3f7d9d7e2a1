package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/store"
	"github.com/aussiebroadwan/todo/internal/todo/store/drivers/sqlite"
	"github.com/aussiebroadwan/todo/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func seedUser(t *testing.T, s store.Store, email string) domain.User {
	t.Helper()

	u := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: "hash",
		FirstName:    "First",
		LastName:     "Last",
		Gender:       "Other",
		Age:          30,
	}
	require.NoError(t, s.Users().CreateUser(context.Background(), u))
	return u
}

func TestMigrationsAreIdempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(context.Background()))
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	u := seedUser(t, s, "Jane@Example.com")

	got, err := s.Users().GetUserByEmail(ctx, "jane@example.COM")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.Equal(t, "Jane@Example.com", got.Email)
	require.Equal(t, "Jane@Example.com", got.Username)
	require.Equal(t, "JANE@EXAMPLE.COM", got.NormalizedEmail)
	require.Equal(t, 30, got.Age)
	require.False(t, got.CreatedAt.IsZero())

	_, err = s.Users().GetUserByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	dup := u
	dup.ID = idx.New().String()
	dup.Email = "JANE@example.com"
	err = s.Users().CreateUser(ctx, dup)
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestRoles(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	u := seedUser(t, s, "a@example.com")

	_, err := s.Roles().GetRoleByName(ctx, domain.RoleAdmin)
	require.ErrorIs(t, err, store.ErrNotFound)

	admin := domain.Role{ID: idx.New().String(), Name: domain.RoleAdmin}
	require.NoError(t, s.Roles().CreateRole(ctx, admin))
	require.ErrorIs(t, s.Roles().CreateRole(ctx, domain.Role{ID: idx.New().String(), Name: domain.RoleAdmin}), store.ErrAlreadyExists)

	def := domain.Role{ID: idx.New().String(), Name: domain.RoleDefault}
	require.NoError(t, s.Roles().CreateRole(ctx, def))

	has, err := s.Roles().UserHasRole(ctx, u.ID, domain.RoleAdmin)
	require.NoError(t, err)
	require.False(t, has)

	require.NoError(t, s.Roles().AddUserRole(ctx, u.ID, def.ID))
	require.NoError(t, s.Roles().AddUserRole(ctx, u.ID, admin.ID))
	require.NoError(t, s.Roles().AddUserRole(ctx, u.ID, admin.ID), "re-grant is a no-op")

	roles, err := s.Roles().ListUserRoles(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, []string{domain.RoleAdmin, domain.RoleDefault}, roles)

	has, err = s.Roles().UserHasRole(ctx, u.ID, domain.RoleAdmin)
	require.NoError(t, err)
	require.True(t, has)

	none, err := s.Roles().ListUserRoles(ctx, "missing")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestTodosScoped(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	alice := seedUser(t, s, "alice@example.com")
	bob := seedUser(t, s, "bob@example.com")

	a1, err := s.Todos().CreateTodo(ctx, domain.Todo{Title: "a1", OwnerID: alice.ID})
	require.NoError(t, err)
	require.Equal(t, domain.TodoPending, a1.Status)
	b1, err := s.Todos().CreateTodo(ctx, domain.Todo{Title: "b1", Description: "d", OwnerID: bob.ID})
	require.NoError(t, err)
	require.Greater(t, b1.ID, a1.ID)

	asAlice := domain.OwnedBy(alice.ID)
	all := domain.AllTodos()

	t.Run("get", func(t *testing.T) {
		got, err := s.Todos().GetTodo(ctx, a1.ID, asAlice)
		require.NoError(t, err)
		require.Equal(t, "a1", got.Title)
		require.Equal(t, alice.ID, got.OwnerID)

		_, err = s.Todos().GetTodo(ctx, b1.ID, asAlice)
		require.ErrorIs(t, err, store.ErrNotFound)

		_, err = s.Todos().GetTodo(ctx, b1.ID+100, all)
		require.ErrorIs(t, err, store.ErrNotFound)

		got, err = s.Todos().GetTodo(ctx, b1.ID, all)
		require.NoError(t, err)
		require.Equal(t, "d", got.Description)
	})

	t.Run("list", func(t *testing.T) {
		mine, err := s.Todos().ListTodos(ctx, asAlice)
		require.NoError(t, err)
		require.Len(t, mine, 1)
		require.Equal(t, a1.ID, mine[0].ID)

		everything, err := s.Todos().ListTodos(ctx, all)
		require.NoError(t, err)
		require.Len(t, everything, 2)

		nothing, err := s.Todos().ListTodos(ctx, domain.Scope{})
		require.NoError(t, err)
		require.Empty(t, nothing)
	})

	t.Run("update keeps owner", func(t *testing.T) {
		upd := domain.Todo{ID: b1.ID, Title: "b1*", Status: domain.TodoCompleted, OwnerID: alice.ID}

		_, err := s.Todos().UpdateTodo(ctx, upd, asAlice)
		require.ErrorIs(t, err, store.ErrNotFound)

		got, err := s.Todos().UpdateTodo(ctx, upd, all)
		require.NoError(t, err)
		require.Equal(t, "b1*", got.Title)
		require.Equal(t, "", got.Description)
		require.Equal(t, domain.TodoCompleted, got.Status)
		require.Equal(t, bob.ID, got.OwnerID)
	})

	t.Run("delete", func(t *testing.T) {
		ok, err := s.Todos().DeleteTodo(ctx, b1.ID, asAlice)
		require.NoError(t, err)
		require.False(t, ok)

		ok, err = s.Todos().DeleteTodo(ctx, a1.ID, asAlice)
		require.NoError(t, err)
		require.True(t, ok)

		ok, err = s.Todos().DeleteTodo(ctx, a1.ID, all)
		require.NoError(t, err)
		require.False(t, ok)
	})
}

func TestTodoStatusCheckConstraint(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	u := seedUser(t, s, "c@example.com")

	_, err := s.Todos().CreateTodo(ctx, domain.Todo{Title: "x", Status: "Archived", OwnerID: u.ID})
	require.Error(t, err)

	_, err = s.Todos().CreateTodo(ctx, domain.Todo{Title: "x", OwnerID: "no-such-user"})
	require.Error(t, err, "owner must reference a user")
}

func TestWithTx(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	u := seedUser(t, s, "tx@example.com")

	boom := errors.New("boom")
	err := s.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Todos().CreateTodo(ctx, domain.Todo{Title: "rolled back", OwnerID: u.ID}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	todos, err := s.Todos().ListTodos(ctx, domain.AllTodos())
	require.NoError(t, err)
	require.Empty(t, todos)

	err = s.WithTx(ctx, func(tx store.Tx) error {
		_, err := tx.Todos().CreateTodo(ctx, domain.Todo{Title: "kept", OwnerID: u.ID})
		return err
	})
	require.NoError(t, err)

	todos, err = s.Todos().ListTodos(ctx, domain.AllTodos())
	require.NoError(t, err)
	require.Len(t, todos, 1)

	err = s.WithTx(ctx, func(tx store.Tx) error {
		return tx.WithTx(ctx, func(store.Tx) error { return nil })
	})
	require.Error(t, err, "nested transactions are rejected")
}
