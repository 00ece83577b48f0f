package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nimasrn/retail-normalizer/pkg/database"
	"github.com/nimasrn/retail-normalizer/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	logger.NewNop()
	t.Setenv("DB_DRIVER", "")
	os.Unsetenv("DB_DRIVER")

	require.NoError(t, Load(""))
	c := Get()
	assert.Equal(t, "dev", c.AppEnv)
	assert.Equal(t, database.DriverSQLite, c.DBDriver)
	assert.Equal(t, "normalizer.db", c.SqlitePath)
	assert.Equal(t, 500, c.InsertBatchSize)
	assert.Equal(t, 10, c.ReportTopCustomers)
	assert.True(t, c.ReloadOnRun)
	assert.True(t, c.MigrateOnStart)
	assert.Equal(t, "/metrics", c.AppDebugMetricsURI)
}

func TestLoad_FromFile(t *testing.T) {
	logger.NewNop()
	for _, k := range []string{"DB_DRIVER", "POSTGRES_WRITE_HOST", "POSTGRES_WRITE_DBNAME", "POSTGRES_WRITE_USER", "INSERT_BATCH_SIZE"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	path := filepath.Join(t.TempDir(), ".env")
	content := "DB_DRIVER=postgres\nPOSTGRES_WRITE_HOST=db\nPOSTGRES_WRITE_DBNAME=retail\nPOSTGRES_WRITE_USER=etl\nINSERT_BATCH_SIZE=250\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	require.NoError(t, Load(path))
	c := Get()
	assert.Equal(t, database.DriverPostgres, c.DBDriver)
	assert.Equal(t, 250, c.InsertBatchSize)
	assert.Equal(t, "db", c.PostgresWrite().Host)
	assert.Equal(t, "etl", c.PostgresRead().User, "read falls back to write settings")
}

func TestLoad_Invalid(t *testing.T) {
	logger.NewNop()

	t.Run("missing file", func(t *testing.T) {
		assert.Error(t, Load(filepath.Join(t.TempDir(), "nope.env")))
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "oracle")
		assert.ErrorContains(t, Load(""), "unsupported DB_DRIVER")
	})

	t.Run("postgres without host", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "postgres")
		t.Setenv("POSTGRES_WRITE_HOST", "")
		assert.ErrorContains(t, Load(""), "POSTGRES_WRITE_HOST")
	})

	t.Run("non positive batch size", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "sqlite")
		t.Setenv("INSERT_BATCH_SIZE", "0")
		assert.ErrorContains(t, Load(""), "INSERT_BATCH_SIZE")
	})
}
