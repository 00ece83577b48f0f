package main

import (
	"os"
	"strings"

	"github.com/nimasrn/retail-normalizer/internal/config"
	"github.com/nimasrn/retail-normalizer/migrations"
	"github.com/nimasrn/retail-normalizer/pkg/database"
	"github.com/nimasrn/retail-normalizer/pkg/logger"
)

func main() {
	defer logger.Sync()

	err := config.Load(getEnvPath())
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	cfg := config.Get()
	logger.Info("applying migrations", "driver", cfg.DBDriver)
	err = database.Migrate(cfg.DBDriver, cfg.PostgresWrite(), cfg.SqlitePath, migrations.FS)
	if err != nil {
		logger.Error("migration: error running migrations", "error", err)
		os.Exit(1)
	}
	logger.Info("migrations applied")
}

// main.go --env=./.env
func getEnvPath() string {
	for _, v := range os.Args {
		if strings.HasPrefix(v, "--env=") {
			p := strings.TrimPrefix(v, "--env=")
			if _, err := os.Stat(p); err != nil {
				logger.Error("failed to open the passed env file", "error", err)
				return ""
			}
			return p
		}
	}
	if _, err := os.Stat(".env"); err != nil {
		return ""
	}
	return ".env"
}
