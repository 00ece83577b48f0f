package config

import (
	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/nimasrn/retail-normalizer/pkg/database"
	"github.com/nimasrn/retail-normalizer/pkg/logger"
	"github.com/pkg/errors"
)

const ConfigTagName = "env"
const ConfigDefaultTagName = "default"

var config *Config

// Config holds every setting of the normalizer binaries. Only this struct
// must be used to read configuration; nothing else reads env directly.
type Config struct {
	AppEnv              string `env:"APP_ENV,default=dev"`
	AppName             string `env:"APP_NAME,default=retail_normalizer"`
	AppDebugMetricsAddr string `env:"APP_DEBUG_METRIC_ADDR"`
	AppDebugMetricsURI  string `env:"APP_DEBUG_METRIC_URI,default=/metrics"`

	DBDriver       string `env:"DB_DRIVER,default=sqlite"`
	SqlitePath     string `env:"SQLITE_PATH,default=normalizer.db"`
	MigrateOnStart bool   `env:"MIGRATE_ON_START,default=true"`

	PostgresReadHost     string `env:"POSTGRES_READ_HOST"`
	PostgresReadPort     string `env:"POSTGRES_READ_PORT"`
	PostgresReadUser     string `env:"POSTGRES_READ_USER"`
	PostgresReadPassword string `env:"POSTGRES_READ_PASSWORD"`
	PostgresReadDatabase string `env:"POSTGRES_READ_DBNAME"`

	PostgresWriteHost     string `env:"POSTGRES_WRITE_HOST"`
	PostgresWritePort     string `env:"POSTGRES_WRITE_PORT"`
	PostgresWriteUser     string `env:"POSTGRES_WRITE_USER"`
	PostgresWritePassword string `env:"POSTGRES_WRITE_PASSWORD"`
	PostgresWriteDatabase string `env:"POSTGRES_WRITE_DBNAME"`

	PromNamespace string `env:"PROM_NAMESPACE,default=retail"`

	InputPath       string `env:"INPUT_PATH"`
	InsertBatchSize int    `env:"INSERT_BATCH_SIZE,default=500"`
	ReloadOnRun     bool   `env:"RELOAD_ON_RUN,default=true"`

	ReportTopCustomers int `env:"REPORT_TOP_CUSTOMERS,default=10"`
}

func Load(path string) error {
	logger.Info("loading configs..", "path", path)
	c := &Config{}
	var err error
	if path != "" {
		logger.Info("trying to publish env from file", "path", path)
		err = godotenv.Load(path)
		if err != nil {
			return errors.Wrapf(err, "failed to load configuration file %s", path)
		}
	}

	_, err = env.UnmarshalFromEnviron(c)
	if err != nil {
		return errors.Wrap(err, "failed to map env variables to Configuration object")
	}

	if err = c.validate(); err != nil {
		return err
	}

	config = c
	return nil
}

func Get() *Config {
	if config == nil {
		logger.Panic("Config is not initialized")
	}
	return config
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case database.DriverSQLite:
		if c.SqlitePath == "" {
			return errors.New("SQLITE_PATH is required when DB_DRIVER=sqlite")
		}
	case database.DriverPostgres:
		if c.PostgresWriteHost == "" || c.PostgresWriteDatabase == "" {
			return errors.New("POSTGRES_WRITE_HOST and POSTGRES_WRITE_DBNAME are required when DB_DRIVER=postgres")
		}
	default:
		return errors.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.InsertBatchSize <= 0 {
		return errors.Errorf("INSERT_BATCH_SIZE must be positive, got %d", c.InsertBatchSize)
	}
	return nil
}

func (c *Config) PostgresWrite() database.Config {
	return database.Config{
		User:     c.PostgresWriteUser,
		Host:     c.PostgresWriteHost,
		Port:     c.PostgresWritePort,
		Password: c.PostgresWritePassword,
		Database: c.PostgresWriteDatabase,
	}
}

// PostgresRead falls back to the write settings when no read replica is configured.
func (c *Config) PostgresRead() database.Config {
	if c.PostgresReadHost == "" {
		return c.PostgresWrite()
	}
	return database.Config{
		User:     c.PostgresReadUser,
		Host:     c.PostgresReadHost,
		Port:     c.PostgresReadPort,
		Password: c.PostgresReadPassword,
		Database: c.PostgresReadDatabase,
	}
}

// OpenDatabase connects to the configured store.
func (c *Config) OpenDatabase() (*database.DB, error) {
	debug := c.AppEnv == "dev"
	if c.DBDriver == database.DriverSQLite {
		return database.CreateSQLite(c.SqlitePath, debug)
	}
	return database.CreateReadWrite(c.PostgresRead(), c.PostgresWrite(), debug)
}
