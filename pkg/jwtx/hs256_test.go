package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/todo/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func newPair(t *testing.T, issuer string, aud []string) (*jwtx.HS256Signer, *jwtx.HS256Verifier) {
	t.Helper()
	s, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)
	v, err := jwtx.NewVerifierHS256(testSecret, issuer, aud)
	require.NoError(t, err)
	return s, v
}

func TestHS256RoundTrip(t *testing.T) {
	s, v := newPair(t, "todo-api", []string{"todo-clients"})
	require.Equal(t, "HS256", s.Alg())

	claims := jwtx.NewAccessClaims("u1", "u1@example.com", "u1@example.com", []string{"Default"}, time.Hour, "todo-api", []string{"todo-clients"}, time.Now())
	token, err := s.Sign(claims)
	require.NoError(t, err)

	got, err := v.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "u1", got.Subject)
	require.Equal(t, "u1@example.com", got.Email)
	require.Equal(t, []string{"Default"}, got.Roles)
}

func TestHS256RejectsShortSecret(t *testing.T) {
	_, err := jwtx.NewSignerHS256([]byte("short"))
	require.ErrorIs(t, err, jwtx.ErrWeakSecret)

	_, err = jwtx.NewVerifierHS256([]byte("short"), "", nil)
	require.ErrorIs(t, err, jwtx.ErrWeakSecret)
}

func TestHS256VerifyFailures(t *testing.T) {
	s, v := newPair(t, "todo-api", []string{"todo-clients"})
	now := time.Now()

	t.Run("wrong secret", func(t *testing.T) {
		other, err := jwtx.NewSignerHS256([]byte(strings.Repeat("x", 32)))
		require.NoError(t, err)
		token, err := other.Sign(jwtx.NewAccessClaims("u1", "", "", nil, time.Hour, "todo-api", []string{"todo-clients"}, now))
		require.NoError(t, err)

		_, err = v.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := s.Sign(jwtx.NewAccessClaims("u1", "", "", nil, time.Hour, "todo-api", []string{"todo-clients"}, now.Add(-2*time.Hour)))
		require.NoError(t, err)

		_, err = v.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("issuer mismatch", func(t *testing.T) {
		token, err := s.Sign(jwtx.NewAccessClaims("u1", "", "", nil, time.Hour, "someone-else", []string{"todo-clients"}, now))
		require.NoError(t, err)

		_, err = v.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("audience mismatch", func(t *testing.T) {
		token, err := s.Sign(jwtx.NewAccessClaims("u1", "", "", nil, time.Hour, "todo-api", []string{"elsewhere"}, now))
		require.NoError(t, err)

		_, err = v.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrAudience)
	})

	t.Run("other algorithm", func(t *testing.T) {
		claims := jwtx.NewAccessClaims("u1", "", "", nil, time.Hour, "todo-api", []string{"todo-clients"}, now)
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(testSecret)
		require.NoError(t, err)

		_, err = v.Verify(token)
		require.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := v.Verify("not.a.jwt")
		require.Error(t, err)
	})
}
