package cryptox

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	SetPepper("test-pepper")
	os.Exit(m.Run())
}

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"long password", strings.Repeat("a", 100)},
		{"empty password", ""},
		{"unicode password", "пароль🔒密码"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)
			require.NoError(t, err)
			require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"), "hash should be in PHC format")

			parts := strings.Split(hash, "$")
			require.Len(t, parts, 6)
			require.Contains(t, parts[3], "m=")
			require.Contains(t, parts[3], "t=")
			require.Contains(t, parts[3], "p=")

			require.NoError(t, VerifyPassword(tt.password, hash))
		})
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	h1, err := HashPassword("samepassword")
	require.NoError(t, err)
	h2, err := HashPassword("samepassword")
	require.NoError(t, err)

	require.NotEqual(t, h1, h2, "hashes should differ due to unique salts")
	require.NoError(t, VerifyPassword("samepassword", h1))
	require.NoError(t, VerifyPassword("samepassword", h2))
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("Correct-Password1!")
	require.NoError(t, err)

	for _, wrong := range []string{"wrong", "correct-password1!", "Correct-Password1! ", ""} {
		require.ErrorIs(t, VerifyPassword(wrong, hash), ErrPasswordMismatch, "input %q", wrong)
	}
}

func TestVerifyPassword_InvalidHashFormat(t *testing.T) {
	tests := map[string]string{
		"empty hash":           "",
		"wrong algorithm":      "$bcrypt$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"missing parts":        "$argon2id$v=19$m=19456",
		"malformed parameters": "$argon2id$v=19$invalid$c2FsdA$aGFzaA",
		"invalid base64 salt":  "$argon2id$v=19$m=19456,t=2,p=1$!!!invalid!!!$aGFzaA",
		"invalid base64 hash":  "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$!!!invalid!!!",
		"wrong version":        "$argon2id$v=18$m=19456,t=2,p=1$c2FsdA$aGFzaA",
	}

	for name, hash := range tests {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, VerifyPassword("test-password", hash), ErrInvalidHash)
		})
	}
}

func TestPepperChangesHash(t *testing.T) {
	t.Cleanup(func() { SetPepper("test-pepper") })

	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)

	SetPepper("another-pepper")
	require.ErrorIs(t, VerifyPassword("s3cret!", hash), ErrPasswordMismatch)
}

func TestLoadPepper(t *testing.T) {
	t.Cleanup(func() { SetPepper("test-pepper") })

	path := filepath.Join(t.TempDir(), "nested", "pepper")

	// First load generates and persists.
	require.NoError(t, LoadPepper(path))
	generated := currentPepper()
	require.NotEmpty(t, generated)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, generated, string(data))

	// Second load reads the same value back.
	SetPepper("")
	require.NoError(t, LoadPepper(path))
	require.Equal(t, generated, currentPepper())

	require.Error(t, LoadPepper(""))
}
