package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/nimasrn/retail-normalizer/internal/config"
	"github.com/nimasrn/retail-normalizer/internal/model"
	"github.com/nimasrn/retail-normalizer/internal/repository"
	"github.com/nimasrn/retail-normalizer/internal/services"
	"github.com/nimasrn/retail-normalizer/migrations"
	"github.com/nimasrn/retail-normalizer/pkg/database"
	"github.com/nimasrn/retail-normalizer/pkg/logger"
	"github.com/nimasrn/retail-normalizer/pkg/prom"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(); err != nil {
		logger.Error("normalizer exited with error", "error", err)
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

func run() error {
	err := config.Load(argValue("--env=", ".env"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg := config.Get()
	logger.Info("starting normalizer", "version", version, "commit", commit, "date", date, "env", cfg.AppEnv)

	input := argValue("--input=", "")
	if input == "" {
		input = cfg.InputPath
	}
	if input == "" {
		return services.ErrInputPathRequired
	}

	if cfg.MigrateOnStart {
		err = database.Migrate(cfg.DBDriver, cfg.PostgresWrite(), cfg.SqlitePath, migrations.FS)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	db, err := cfg.OpenDatabase()
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	if err = prom.Create(hostname, cfg.AppEnv, cfg.PromNamespace); err != nil {
		return fmt.Errorf("create prometheus metrics: %w", err)
	}
	if cfg.AppDebugMetricsAddr != "" {
		engine := prom.Serve(cfg.AppDebugMetricsAddr, cfg.AppDebugMetricsURI)
		defer engine.Shutdown()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc := services.NewNormalizerService(
		repository.NewTransactionRepository(db),
		repository.NewRunRepository(db),
		services.NormalizerOptions{
			InsertBatchSize: cfg.InsertBatchSize,
			Reload:          cfg.ReloadOnRun,
		},
	)
	summary, err := svc.Run(ctx, input)
	if summary != nil {
		printSummary(summary)
	}
	return err
}

func printSummary(s *model.RunSummary) {
	r := s.Run
	fmt.Printf("run %s %s\n", r.RunID, r.Status)
	fmt.Printf("  input:              %s\n", r.InputPath)
	fmt.Printf("  loaded:             %d\n", r.RecordsLoaded)
	fmt.Printf("  duplicates removed: %d\n", r.DuplicatesRemoved)
	fmt.Printf("  enriched:           %d\n", r.RecordsEnriched)
	for _, tier := range model.CustomerTiers {
		fmt.Printf("    %-10s %d\n", tier, s.Tiers[tier])
	}
	fmt.Printf("  duration:           %s\n", r.Duration())
	if r.Error != "" {
		fmt.Printf("  error:              %s\n", r.Error)
	}
}

// argValue returns the value of a --name=value argument, or def when absent.
func argValue(prefix, def string) string {
	for _, v := range os.Args[1:] {
		if strings.HasPrefix(v, prefix) {
			return strings.TrimPrefix(v, prefix)
		}
	}
	if prefix == "--env=" {
		if _, err := os.Stat(def); err != nil {
			return ""
		}
	}
	return def
}
