package service_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/service"
	"github.com/aussiebroadwan/todo/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuerExpiry(t *testing.T) {
	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierHS256(testSecret, "iss", []string{"aud"})
	require.NoError(t, err)

	now := time.Now().Add(-time.Hour).Truncate(time.Second)
	issuer := &service.TokenIssuer{
		Signer:   signer,
		Issuer:   "iss",
		Audience: []string{"aud"},
		Now:      func() time.Time { return now },
	}

	user := domain.User{ID: "u1", Email: "a@b.c", Username: "a@b.c"}
	tok, err := issuer.Issue(user, []string{"Admin", "Default"})
	require.NoError(t, err)

	claims, err := verifier.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, "u1", claims.Subject)
	require.Equal(t, []string{"Admin", "Default"}, claims.Roles)
	require.True(t, claims.IssuedAt.Time.Equal(now))
	require.True(t, claims.ExpiresAt.Time.Equal(now.Add(24*time.Hour)))

	other, err := jwtx.NewVerifierHS256(testSecret, "someone-else", []string{"aud"})
	require.NoError(t, err)
	_, err = other.Verify(tok)
	require.ErrorIs(t, err, jwtx.ErrIssuer)
}
