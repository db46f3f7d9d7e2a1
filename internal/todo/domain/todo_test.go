package domain_test

import (
	"testing"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/stretchr/testify/require"
)

func TestParseTodoStatus(t *testing.T) {
	t.Parallel()

	cases := map[string]domain.TodoStatus{
		"Pending":    domain.TodoPending,
		"pending":    domain.TodoPending,
		"COMPLETED":  domain.TodoCompleted,
		"inprogress": domain.TodoInProgress,
		"Overdue":    domain.TodoOverdue,
		"cAnCeLlEd":  domain.TodoCancelled,
	}
	for in, want := range cases {
		got, err := domain.ParseTodoStatus(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got)
	}

	for _, bad := range []string{"", "Done", "In Progress", "5"} {
		_, err := domain.ParseTodoStatus(bad)
		require.ErrorIs(t, err, domain.ErrInvalidStatus, bad)
	}
}

func TestTodoStatusNamesRoundTrip(t *testing.T) {
	t.Parallel()

	for _, st := range domain.TodoStatuses {
		require.True(t, st.Valid())
		got, err := domain.ParseTodoStatus(st.String())
		require.NoError(t, err)
		require.Equal(t, st, got)
	}
	require.False(t, domain.TodoStatus("").Valid())
	require.False(t, domain.TodoStatus("Archived").Valid())
	require.False(t, domain.TodoStatus("pending").Valid())
}

func TestScope(t *testing.T) {
	t.Parallel()

	mine := domain.Todo{ID: 1, OwnerID: "alice"}
	theirs := domain.Todo{ID: 2, OwnerID: "bob"}

	admin := domain.ScopeFor("alice", true)
	require.True(t, admin.All())
	require.True(t, admin.Allows(mine))
	require.True(t, admin.Allows(theirs))

	owner := domain.ScopeFor("alice", false)
	require.False(t, owner.All())
	require.Equal(t, "alice", owner.OwnerID())
	require.True(t, owner.Allows(mine))
	require.False(t, owner.Allows(theirs))

	var zero domain.Scope
	require.False(t, zero.Allows(mine))
	require.False(t, zero.Allows(domain.Todo{}))
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	require.Equal(t, "JANE@EXAMPLE.COM", domain.NormalizeEmail(" Jane@Example.com "))
	require.Equal(t, domain.NormalizeEmail("a@b.c"), domain.NormalizeEmail("A@B.C"))
}
