package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/todo/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestNewAccessClaims(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	roles := []string{"Default", "Admin"}

	c := jwtx.NewAccessClaims("user-1", "a@example.com", "a@example.com", roles, 24*time.Hour, "todo-api", []string{"todo-clients"}, now)

	require.Equal(t, "user-1", c.Subject)
	require.Equal(t, "todo-api", c.Issuer)
	require.Equal(t, jwt.ClaimStrings{"todo-clients"}, c.Audience)
	require.Equal(t, now.Add(24*time.Hour), c.ExpiresAt.Time)
	require.NotEmpty(t, c.ID)
	require.True(t, c.HasRole("Admin"))
	require.False(t, c.HasRole("admin"))

	// The claim set owns its role slice.
	roles[0] = "Mutated"
	require.Equal(t, []string{"Default", "Admin"}, c.Roles)
}

func TestValidateIssuer(t *testing.T) {
	c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Issuer: "todo-api"}}

	require.NoError(t, c.ValidateIssuer("todo-api"))
	require.NoError(t, c.ValidateIssuer(""))
	require.ErrorIs(t, c.ValidateIssuer("other"), jwtx.ErrIssuer)
}

func TestValidateAudience(t *testing.T) {
	c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Audience: []string{"web", "cli"}}}

	require.NoError(t, c.ValidateAudience([]string{"web"}))
	require.NoError(t, c.ValidateAudience([]string{"foo", "cli"}))
	require.NoError(t, c.ValidateAudience(nil))
	require.ErrorIs(t, c.ValidateAudience([]string{"admin"}), jwtx.ErrAudience)
}
