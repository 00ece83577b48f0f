package helpers

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/nimasrn/retail-normalizer/migrations"
	"github.com/nimasrn/retail-normalizer/pkg/database"
	"github.com/nimasrn/retail-normalizer/pkg/logger"
	"github.com/stretchr/testify/require"
)

// SetupTestDB opens an in-memory sqlite store with the embedded migrations applied.
func SetupTestDB(t *testing.T) *database.DB {
	t.Helper()
	logger.NewNop()

	db, err := database.CreateSQLite(":memory:", false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	sqlDB, err := db.Write(context.Background()).DB()
	require.NoError(t, err)
	require.NoError(t, database.MigrateDB(sqlDB, database.Dialect(database.DriverSQLite), migrations.FS))

	return db
}

// WriteFile writes content to name inside a per-test temporary directory and
// returns the full path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
