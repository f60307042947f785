package store

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataroomhq/dataroom-cli/internal/platform"
)

func TestSaveAndLoad(t *testing.T) {
	s := NewCredentialStore(t.TempDir())

	creds := &Credentials{
		Token: "t1",
		User: &platform.User{
			ID:         "u1",
			Email:      "admin@acme.test",
			TenantID:   "acme-id",
			TenantSlug: "acme",
			TenantRole: platform.TenantRoleAdmin,
		},
	}
	require.NoError(t, s.Save(creds))

	info, err := os.Stat(s.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "t1", loaded.Token)
	require.NotNil(t, loaded.User)
	assert.Equal(t, "acme", loaded.User.TenantSlug)
}

func TestLoadMissingFileReturnsEmpty(t *testing.T) {
	s := NewCredentialStore(t.TempDir())

	creds, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, creds.Token)
	assert.Nil(t, creds.User)
}

func TestClearIsIdempotent(t *testing.T) {
	s := NewCredentialStore(t.TempDir())

	require.NoError(t, s.Save(&Credentials{Token: "t1"}))
	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear())

	creds, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, creds.Token)
}
