package migration

import (
	"log/slog"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMigrator(t *testing.T, files fstest.MapFS) *Migrator {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(&strings.Builder{}, nil))
	return NewMigrator(nil, logger, files)
}

func TestLoadMigrations(t *testing.T) {
	files := fstest.MapFS{
		"migrations/002_add_avatar.up.sql":      {Data: []byte("ALTER TABLE profiles ADD COLUMN avatar TEXT")},
		"migrations/002_add_avatar.down.sql":    {Data: []byte("ALTER TABLE profiles DROP COLUMN avatar")},
		"migrations/001_create_profiles.up.sql": {Data: []byte("CREATE TABLE profiles (id UUID PRIMARY KEY)")},
		"migrations/001_create_profiles.down.sql": {
			Data: []byte("DROP TABLE profiles"),
		},
	}

	migrations, err := newTestMigrator(t, files).loadMigrations()
	require.NoError(t, err)
	require.Len(t, migrations, 2)

	assert.Equal(t, 1, migrations[0].Version)
	assert.Equal(t, "create_profiles", migrations[0].Name)
	assert.Contains(t, migrations[0].UpSQL, "CREATE TABLE profiles")
	assert.Contains(t, migrations[0].DownSQL, "DROP TABLE profiles")

	assert.Equal(t, 2, migrations[1].Version)
	assert.Equal(t, "add_avatar", migrations[1].Name)
}

func TestLoadMigrations_MissingDownFile(t *testing.T) {
	files := fstest.MapFS{
		"migrations/001_create_profiles.up.sql": {Data: []byte("CREATE TABLE profiles (id UUID PRIMARY KEY)")},
	}

	_, err := newTestMigrator(t, files).loadMigrations()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "001_create_profiles.down.sql")
}

func TestLoadMigrations_SkipsMalformedFilenames(t *testing.T) {
	files := fstest.MapFS{
		"migrations/notes.up.sql":       {Data: []byte("-- not a migration")},
		"migrations/abc_bad.up.sql":     {Data: []byte("-- non-numeric version")},
		"migrations/003_valid.up.sql":   {Data: []byte("SELECT 1")},
		"migrations/003_valid.down.sql": {Data: []byte("SELECT 1")},
	}

	migrations, err := newTestMigrator(t, files).loadMigrations()
	require.NoError(t, err)
	require.Len(t, migrations, 1)
	assert.Equal(t, 3, migrations[0].Version)
}

func TestChecksum(t *testing.T) {
	a := checksum("CREATE TABLE profiles")
	b := checksum("CREATE TABLE profiles")
	c := checksum("DROP TABLE profiles")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}
