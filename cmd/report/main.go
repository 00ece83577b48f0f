package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nimasrn/retail-normalizer/internal/config"
	"github.com/nimasrn/retail-normalizer/internal/model"
	"github.com/nimasrn/retail-normalizer/internal/repository"
	"github.com/nimasrn/retail-normalizer/internal/services"
	"github.com/nimasrn/retail-normalizer/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		logger.Error("report failed", "error", err)
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

func run() error {
	if err := config.Load(getEnvPath()); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg := config.Get()

	top := cfg.ReportTopCustomers
	if v := argValue("--top="); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid --top value %q", v)
		}
		top = n
	}

	format, err := parseFormat(argValue("--format="))
	if err != nil {
		return err
	}

	db, err := cfg.OpenDatabase()
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()
	last, err := repository.NewRunRepository(db).Latest(ctx)
	if err != nil && !errors.Is(err, repository.ErrRunNotFound) {
		return fmt.Errorf("latest run: %w", err)
	}

	report, err := services.NewReportService(repository.NewReportRepository(db)).Build(ctx, top)
	if err != nil {
		return err
	}

	if format == formatJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			LastRun *model.NormalizationRun `json:"last_run,omitempty"`
			*model.Report
		}{last, report})
	}
	return render(os.Stdout, last, report)
}

func argValue(prefix string) string {
	for _, v := range os.Args[1:] {
		if strings.HasPrefix(v, prefix) {
			return strings.TrimPrefix(v, prefix)
		}
	}
	return ""
}

func getEnvPath() string {
	p := argValue("--env=")
	if p == "" {
		p = ".env"
	}
	if _, err := os.Stat(p); err != nil {
		return ""
	}
	return p
}
