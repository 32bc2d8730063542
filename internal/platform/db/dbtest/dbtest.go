// Package dbtest opens throwaway SQLite databases for store and service tests.
package dbtest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"library-backend/internal/platform/config"
	"library-backend/internal/platform/db"
)

// Open returns a migrated SQLite database in t.TempDir(), closed on cleanup.
func Open(t testing.TB) *db.Conn {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	conn, err := db.Connect(config.DatabaseConfig{Driver: "sqlite", Path: path})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, db.Migrate(context.Background(), conn))
	return conn
}
