package database

import (
	"database/sql"
	"io/fs"

	_ "github.com/lib/pq"
	"github.com/nimasrn/retail-normalizer/pkg/logger"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

// Migrate opens a database/sql connection for the given driver and applies
// every pending migration found under the dialect directory of fsys.
func Migrate(driver string, cfg Config, sqlitePath string, fsys fs.FS) error {
	db, dialect, err := newSqlConnection(driver, cfg, sqlitePath)
	if err != nil {
		return err
	}
	defer db.Close()

	return MigrateDB(db, dialect, fsys)
}

// MigrateDB applies migrations on an already open handle. The migration files
// for a dialect live in a directory of the same name ("postgres", "sqlite3").
func MigrateDB(db *sql.DB, dialect string, fsys fs.FS) error {
	goose.SetBaseFS(fsys)
	goose.SetLogger(logger.GetLogger())
	if err := goose.SetDialect(dialect); err != nil {
		return errors.Wrap(err, "goose dialect")
	}
	if err := goose.Up(db, dialect); err != nil {
		return errors.Wrap(err, "goose up")
	}
	return nil
}

// Dialect maps a configured driver name onto the goose dialect.
func Dialect(driver string) string {
	if driver == DriverSQLite {
		return "sqlite3"
	}
	return "postgres"
}
