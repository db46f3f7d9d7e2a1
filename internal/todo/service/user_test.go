package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/service"
	"github.com/stretchr/testify/require"
)

func TestRegisterGrantsDefaultRole(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	u := e.register(t, "jane@example.com")
	require.NotEmpty(t, u.ID)
	require.Equal(t, "jane@example.com", u.Username)
	require.NotEqual(t, "Secret#1", u.PasswordHash)

	roles, err := e.store.Roles().ListUserRoles(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, []string{domain.RoleDefault}, roles)
}

func TestRegisterDuplicateEmailIgnoresCase(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	first := e.register(t, "jane@example.com")

	dup := registration("JANE@Example.COM")
	dup.FirstName = "Imposter"
	_, err := e.users.Register(ctx, dup)

	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, []string{"Email 'JANE@Example.COM' is already taken."}, verr.Reasons)

	got, err := e.store.Users().GetUserByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	require.Equal(t, first.ID, got.ID)
	require.Equal(t, "Jane", got.FirstName)
}

func TestRegisterCollectsAllReasons(t *testing.T) {
	e := newEnv(t)

	in := registration("not-an-email")
	in.Password = "abc"
	in.FirstName = ""
	in.Age = 200

	_, err := e.users.Register(context.Background(), in)
	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)

	require.Contains(t, verr.Reasons, "Email 'not-an-email' is invalid.")
	require.Contains(t, verr.Reasons, "FirstName is required.")
	require.Contains(t, verr.Reasons, "Age must be at most 150.")
	require.Contains(t, verr.Reasons, "Passwords must be at least 6 characters.")
	require.Contains(t, verr.Reasons, "Passwords must have at least one digit ('0'-'9').")
	require.Contains(t, verr.Reasons, "Passwords must have at least one uppercase ('A'-'Z').")
	require.Contains(t, verr.Reasons, "Passwords must have at least one non alphanumeric character.")
	require.NotContains(t, verr.Reasons, "Passwords must have at least one lowercase ('a'-'z').")
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	u := e.register(t, "jane@example.com")

	t.Run("success", func(t *testing.T) {
		before := time.Now().Add(-time.Second)
		res, err := e.users.Login(ctx, "JANE@example.com", "Secret#1")
		require.NoError(t, err)
		require.Equal(t, u.ID, res.User.ID)
		require.Equal(t, []string{domain.RoleDefault}, res.Roles)

		claims, err := e.verifier.Verify(res.Token)
		require.NoError(t, err)
		require.Equal(t, u.ID, claims.Subject)
		require.Equal(t, "jane@example.com", claims.Email)
		require.Equal(t, "jane@example.com", claims.Name)
		require.Equal(t, []string{domain.RoleDefault}, claims.Roles)
		require.NotEmpty(t, claims.ID)

		issued := claims.IssuedAt.Time
		require.False(t, issued.Before(before.Truncate(time.Second)))
		require.Equal(t, issued.Add(24*time.Hour), claims.ExpiresAt.Time)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		_, errWrong := e.users.Login(ctx, "jane@example.com", "Wrong#1")
		_, errUnknown := e.users.Login(ctx, "nobody@example.com", "Secret#1")

		require.ErrorIs(t, errWrong, service.ErrInvalidCredentials)
		require.ErrorIs(t, errUnknown, service.ErrInvalidCredentials)
		require.Equal(t, errWrong.Error(), errUnknown.Error())
	})
}

func TestAssignRole(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	u := e.register(t, "jane@example.com")

	require.NoError(t, e.users.AssignRole(ctx, "Jane@Example.com", "Auditor"))
	require.NoError(t, e.users.AssignRole(ctx, "jane@example.com", "Auditor"), "re-grant is a no-op")

	roles, err := e.store.Roles().ListUserRoles(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"Auditor", domain.RoleDefault}, roles)

	err = e.users.AssignRole(ctx, "ghost@example.com", domain.RoleAdmin)
	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	require.True(t, errors.Is(err, service.ErrUserNotFound))

	err = e.users.AssignRole(ctx, "jane@example.com", "")
	require.ErrorAs(t, err, &verr)
	require.Equal(t, []string{"RoleName is required."}, verr.Reasons)
}

func TestTokenRolesAreFixedAtLogin(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.register(t, "jane@example.com")

	before, err := e.users.Login(ctx, "jane@example.com", "Secret#1")
	require.NoError(t, err)

	require.NoError(t, e.users.AssignRole(ctx, "jane@example.com", domain.RoleAdmin))

	claims, err := e.verifier.Verify(before.Token)
	require.NoError(t, err)
	require.Equal(t, []string{domain.RoleDefault}, claims.Roles)

	after, err := e.users.Login(ctx, "jane@example.com", "Secret#1")
	require.NoError(t, err)
	require.Equal(t, []string{domain.RoleAdmin, domain.RoleDefault}, after.Roles)

	claims, err = e.verifier.Verify(after.Token)
	require.NoError(t, err)
	require.Equal(t, []string{domain.RoleAdmin, domain.RoleDefault}, claims.Roles)
}

func TestFindByEmail(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	u := e.register(t, "jane@example.com")

	got, err := e.users.FindByEmail(ctx, "JANE@EXAMPLE.COM")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	_, err = e.users.FindByEmail(ctx, "x@example.com")
	require.ErrorIs(t, err, service.ErrUserNotFound)
}
