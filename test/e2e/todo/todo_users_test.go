package todo_test

import (
	"testing"

	"github.com/aussiebroadwan/todo/pkg/todosdk"
	"github.com/stretchr/testify/require"
)

// TestSeededAccounts verifies the seed file was applied on startup.
func TestSeededAccounts(t *testing.T) {
	client := todosdk.NewClient(setupTodoContainer(t))

	admin := loginAdmin(t, client)
	require.Equal(t, adminEmail, admin.User().Email)
	require.NotEmpty(t, admin.Token())

	def, err := client.Login(t.Context(), defaultEmail, defaultPassword)
	require.NoError(t, err)
	require.Equal(t, defaultEmail, def.User().Email)
}

func TestRegistration(t *testing.T) {
	client := todosdk.NewClient(setupTodoContainer(t))
	ctx := t.Context()

	user, err := client.Register(ctx, newUser("jane@example.com"))
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, "jane@example.com", user.Email)

	_, err = client.Register(ctx, newUser("JANE@EXAMPLE.COM"))
	require.True(t, todosdk.IsStatus(err, 400), "duplicate email ignoring case: %v", err)
	require.ErrorContains(t, err, "already taken")

	weak := newUser("weak@example.com")
	weak.Password = "password"
	_, err = client.Register(ctx, weak)
	require.True(t, todosdk.IsStatus(err, 400))
	require.ErrorContains(t, err, "uppercase")
	require.ErrorContains(t, err, "digit")
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	client := todosdk.NewClient(setupTodoContainer(t))
	ctx := t.Context()

	_, errWrongPassword := client.Login(ctx, adminEmail, "Wrong@123")
	_, errUnknownEmail := client.Login(ctx, "nobody@example.com", adminPassword)

	require.True(t, todosdk.IsUnauthorized(errWrongPassword))
	require.True(t, todosdk.IsUnauthorized(errUnknownEmail))
	require.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())
}

func TestAssignRoleRequiresAdmin(t *testing.T) {
	client := todosdk.NewClient(setupTodoContainer(t))
	ctx := t.Context()

	jane := registerAndLogin(t, client, "jane@example.com")
	err := jane.AssignRole(ctx, "jane@example.com", "Admin")
	require.True(t, todosdk.IsForbidden(err), "got %v", err)

	admin := loginAdmin(t, client)
	require.NoError(t, admin.AssignRole(ctx, "jane@example.com", "Admin"))
	require.NoError(t, admin.AssignRole(ctx, "jane@example.com", "Admin"), "re-grant is a no-op")

	err = admin.AssignRole(ctx, "ghost@example.com", "Admin")
	require.True(t, todosdk.IsStatus(err, 400))
	require.ErrorContains(t, err, "does not exist")
}
