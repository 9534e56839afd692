package sessionfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventsportal/internal/domain"
)

func TestStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.yaml")
	s := New(path)

	got, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, got, "missing file means no session")

	want := &domain.Session{
		Token:     "tok",
		User:      domain.User{ID: "42", Name: "Ana", Email: "ana@example.com"},
		ExpiresAt: time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	require.NoError(t, s.Save(want))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err = s.Load()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.Token, got.Token)
	assert.Equal(t, want.User, got.User)
	assert.True(t, want.ExpiresAt.Equal(got.ExpiresAt))

	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear(), "clearing twice is fine")
	got, err = s.Load()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_LoadErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, os.WriteFile(path, []byte("token: [unterminated"), 0o600))

	_, err := New(path).Load()
	assert.ErrorContains(t, err, "failed to parse session file")

	require.NoError(t, os.WriteFile(path, []byte("user:\n  name: Ana\n"), 0o600))
	got, err := New(path).Load()
	require.NoError(t, err)
	assert.Nil(t, got, "a file without a token holds no session")
}
