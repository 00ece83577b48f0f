package database

import (
	"context"
	"errors"
	"testing"

	"github.com/nimasrn/retail-normalizer/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   int64 `gorm:"primaryKey"`
	Name string
}

func setupDB(t *testing.T) *DB {
	logger.NewNop()
	db, err := CreateSQLite(":memory:", false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Write(context.Background()).AutoMigrate(&item{}))
	return db
}

func count(t *testing.T, db *DB) int64 {
	var n int64
	require.NoError(t, db.Read(context.Background()).Model(&item{}).Count(&n).Error)
	return n
}

func TestWithinTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("commits", func(t *testing.T) {
		db := setupDB(t)
		err := db.WithinTransaction(ctx, func(ctx context.Context) error {
			return db.Write(ctx).Create(&item{Name: "a"}).Error
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count(t, db))
	})

	t.Run("rolls back on error", func(t *testing.T) {
		db := setupDB(t)
		boom := errors.New("boom")
		err := db.WithinTransaction(ctx, func(ctx context.Context) error {
			require.NoError(t, db.Write(ctx).Create(&item{Name: "a"}).Error)
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.Zero(t, count(t, db))
	})

	t.Run("nested calls share the outer transaction", func(t *testing.T) {
		db := setupDB(t)
		boom := errors.New("boom")
		err := db.WithinTransaction(ctx, func(ctx context.Context) error {
			inner := db.WithinTransaction(ctx, func(ctx context.Context) error {
				return db.Write(ctx).Create(&item{Name: "inner"}).Error
			})
			require.NoError(t, inner)

			var n int64
			require.NoError(t, db.Read(ctx).Model(&item{}).Count(&n).Error)
			assert.Equal(t, int64(1), n)
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.Zero(t, count(t, db))
	})
}

func TestDialect(t *testing.T) {
	assert.Equal(t, "sqlite3", Dialect(DriverSQLite))
	assert.Equal(t, "postgres", Dialect(DriverPostgres))
}

func TestNewSqlConnection_UnknownDriver(t *testing.T) {
	_, _, err := newSqlConnection("mysql", Config{}, "")
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestConfigDSN(t *testing.T) {
	c := Config{User: "u", Host: "h", Port: "5432", Password: "p", Database: "d"}
	assert.Equal(t, "host=h user=u password=p dbname=d port=5432 sslmode=disable", c.dsn())
}
