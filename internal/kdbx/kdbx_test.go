package kdbx_test

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/kpwrite/internal/kdbx"
	"github.com/mesh-intelligence/kpwrite/internal/logging"
	"github.com/mesh-intelligence/kpwrite/internal/vault"
	"github.com/mesh-intelligence/kpwrite/pkg/types"
)

var quiet = logging.Logger{Out: io.Discard, Err: io.Discard}

func createTestDB(t *testing.T, password string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vault.kdbx")
	require.NoError(t, kdbx.Create(path, password))
	return path
}

func TestCreateAndOpen(t *testing.T) {
	path := createTestDB(t, "master")

	c, err := kdbx.Open(path, "master", "")
	require.NoError(t, err)
	require.NotNil(t, c.Tree.Root)
	assert.Equal(t, "Root", c.Tree.Root.Name)
	assert.Empty(t, c.Tree.Root.Subfolders)
	assert.Empty(t, c.Tree.Root.Entries)
	assert.False(t, c.Tree.Root.ID.IsZero())
}

func TestOpenWrongPassword(t *testing.T) {
	path := createTestDB(t, "master")

	_, err := kdbx.Open(path, "nottherightone", "")
	assert.ErrorIs(t, err, kdbx.ErrBadCredentials)
}

func TestOpenMissingFile(t *testing.T) {
	_, err := kdbx.Open(filepath.Join(t.TempDir(), "absent.kdbx"), "x", "")
	assert.Error(t, err)
}

func TestOpenGarbageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.kdbx")
	require.NoError(t, kdbx.WriteFile(path, []byte("this is not a kdbx container")))

	_, err := kdbx.Open(path, "master", "")
	assert.ErrorIs(t, err, kdbx.ErrCorrupt)
}

func TestRoundTripPreservesFields(t *testing.T) {
	path := createTestDB(t, "master")

	c, err := kdbx.Open(path, "master", "")
	require.NoError(t, err)

	expiry := time.Date(2030, 12, 31, 23, 59, 59, 0, time.UTC)
	written, err := vault.WriteEntry(quiet, &vault.Generator{}, c.Tree,
		[]string{"Personal", "Email"}, vault.EntryParams{
			Title:     "Gmail",
			Username:  "alice",
			Password:  "secret",
			URL:       "https://mail.google.com",
			Notes:     "personal mail",
			Protected: true,
			Expires:   true,
			Expiry:    &expiry,
		})
	require.NoError(t, err)

	data, err := c.Serialize()
	require.NoError(t, err)
	require.NoError(t, kdbx.WriteFile(path, data))

	reopened, err := kdbx.Open(path, "master", "")
	require.NoError(t, err)

	require.Len(t, reopened.Tree.Root.Subfolders, 1)
	personal := reopened.Tree.Root.Subfolders[0]
	assert.Equal(t, "Personal", personal.Name)
	require.Len(t, personal.Subfolders, 1)
	email := personal.Subfolders[0]
	assert.Equal(t, "Email", email.Name)

	require.Len(t, email.Entries, 1)
	entry := email.Entries[0]
	assert.Equal(t, written.ID, entry.ID)
	assert.Equal(t, "Gmail", entry.Title)
	assert.Equal(t, "alice", entry.Username)
	assert.Equal(t, "secret", entry.Password.Value)
	assert.True(t, entry.Password.Protected)
	assert.Equal(t, "https://mail.google.com", entry.URL)
	assert.Equal(t, "personal mail", entry.Notes)
	assert.True(t, entry.Times.Expires)
	assert.True(t, entry.Times.Expiry.Equal(expiry))
	assert.True(t, entry.Times.Created.Equal(written.Times.Created))
	assert.Equal(t, 0, entry.Times.UsageCount)

	// Group identifiers survive the round trip too.
	origPersonal := c.Tree.Root.Subfolders[0]
	assert.Equal(t, origPersonal.ID, personal.ID)
	assert.Equal(t, origPersonal.Subfolders[0].ID, email.ID)
}

func TestSerializeKeepsContainerUsable(t *testing.T) {
	path := createTestDB(t, "master")

	c, err := kdbx.Open(path, "master", "")
	require.NoError(t, err)
	_, err = vault.WriteEntry(quiet, &vault.Generator{}, c.Tree, nil, vault.EntryParams{
		Title: "first", Username: "u", Password: "p", Protected: true,
	})
	require.NoError(t, err)

	_, err = c.Serialize()
	require.NoError(t, err)

	// The in-memory tree still holds the plaintext value after
	// serialization, so a second cycle works.
	assert.Equal(t, "p", c.Tree.Root.Entries[0].Password.Value)
	_, err = c.Serialize()
	require.NoError(t, err)
}

func TestIdentifierTextFormRoundTrips(t *testing.T) {
	path := createTestDB(t, "master")

	c, err := kdbx.Open(path, "master", "")
	require.NoError(t, err)

	id := c.Tree.Root.ID
	parsed, err := types.ParseIdentifier(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}
