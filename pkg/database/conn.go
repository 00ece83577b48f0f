package database

import (
	"database/sql"
	"fmt"

	"github.com/pkg/errors"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	User     string `env:"USER"`
	Host     string `env:"HOST"`
	Port     string `env:"PORT"`
	Password string `env:"PASSWORD"`
	Database string `env:"DBNAME"`
}

func (c Config) dsn() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable", c.Host, c.User, c.Password, c.Database, c.Port)
}

// newSqlConnection opens a plain database/sql handle for goose.
// The "sqlite3" driver is registered by gorm.io/driver/sqlite.
func newSqlConnection(driver string, config Config, sqlitePath string) (*sql.DB, string, error) {
	switch driver {
	case DriverPostgres:
		db, err := sql.Open("postgres", config.dsn())
		return db, "postgres", err
	case DriverSQLite:
		db, err := sql.Open("sqlite3", sqlitePath)
		return db, "sqlite3", err
	}
	return nil, "", errors.Errorf("unsupported database driver %q", driver)
}
