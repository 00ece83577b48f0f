package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nimasrn/retail-normalizer/internal/ingest"
	"github.com/nimasrn/retail-normalizer/internal/model"
	"github.com/nimasrn/retail-normalizer/internal/normalize"
	"github.com/nimasrn/retail-normalizer/pkg/logger"
	"github.com/nimasrn/retail-normalizer/pkg/prom"
)

var (
	ErrEmptyInput        = errors.New("input contains no transaction lines")
	ErrDuplicatesLeft    = errors.New("duplicate lines remain after deduplication")
	ErrInputPathRequired = errors.New("input path is required")
)

// Batch phases as reported in the phase duration metric.
const (
	PhaseLoad        = "load"
	PhaseStore       = "store"
	PhaseDeduplicate = "deduplicate"
	PhaseEnrich      = "enrich"
)

type TransactionRepository interface {
	CreateBatch(ctx context.Context, txns []*model.Transaction, batchSize int) error
	ListAll(ctx context.Context) ([]*model.Transaction, error)
	DeleteByIDs(ctx context.Context, ids []int64) (int64, error)
	UpdateDerived(ctx context.Context, txn *model.Transaction) error
	CountDuplicateGroups(ctx context.Context) (int64, error)
	Truncate(ctx context.Context) error
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type RunRepository interface {
	Create(ctx context.Context, run *model.NormalizationRun) error
	Finish(ctx context.Context, run *model.NormalizationRun) error
}

type NormalizerOptions struct {
	InsertBatchSize int
	// Reload replaces the stored table with the input instead of appending to it.
	Reload bool
}

// NormalizerService runs the load, deduplicate and enrich batch.
type NormalizerService struct {
	txnRepo TransactionRepository
	runRepo RunRepository
	opts    NormalizerOptions
	load    func(path string) ([]*model.Transaction, error)
	now     func() time.Time
}

func NewNormalizerService(txnRepo TransactionRepository, runRepo RunRepository, opts NormalizerOptions) *NormalizerService {
	return &NormalizerService{
		txnRepo: txnRepo,
		runRepo: runRepo,
		opts:    opts,
		load:    ingest.ReadFile,
		now:     time.Now,
	}
}

// Run executes one batch over the file at inputPath. Every phase is
// all-or-nothing; the first failure stops the batch and is returned after the
// run record has been marked failed.
func (s *NormalizerService) Run(ctx context.Context, inputPath string) (*model.RunSummary, error) {
	if inputPath == "" {
		return nil, ErrInputPathRequired
	}

	run := &model.NormalizationRun{
		RunID:     uuid.New(),
		InputPath: inputPath,
		Status:    model.RunStatusRunning,
		StartedAt: s.now().UTC(),
	}
	if err := s.runRepo.Create(ctx, run); err != nil {
		return nil, fmt.Errorf("create run: %w", err)
	}
	log := []any{"run_id", run.RunID.String()}
	logger.Info("normalization started", append(log, "input", inputPath)...)

	summary := &model.RunSummary{Run: run}
	err := s.execute(ctx, summary, inputPath)

	finished := s.now().UTC()
	run.FinishedAt = &finished
	run.Status = model.RunStatusSucceeded
	if err != nil {
		run.Status = model.RunStatusFailed
		run.Error = err.Error()
	}
	if ferr := s.runRepo.Finish(ctx, run); ferr != nil {
		logger.Error("failed to record run result", append(log, "error", ferr)...)
		if err == nil {
			err = fmt.Errorf("finish run: %w", ferr)
		}
	}
	prom.ObserveRun(string(run.Status), run.Duration().Seconds())

	if err != nil {
		logger.Error("normalization failed", append(log, "error", err)...)
		return summary, err
	}
	logger.Info("normalization finished", append(log,
		"loaded", run.RecordsLoaded,
		"duplicates_removed", run.DuplicatesRemoved,
		"enriched", run.RecordsEnriched,
		"duration", run.Duration().String())...)
	return summary, nil
}

func (s *NormalizerService) execute(ctx context.Context, summary *model.RunSummary, inputPath string) error {
	run := summary.Run

	var txns []*model.Transaction
	err := s.phase(PhaseLoad, func() (err error) {
		txns, err = s.load(inputPath)
		return err
	})
	if err != nil {
		return fmt.Errorf("load input: %w", err)
	}
	if len(txns) == 0 {
		return ErrEmptyInput
	}

	if err := s.phase(PhaseStore, func() error { return s.Store(ctx, txns) }); err != nil {
		return err
	}
	run.RecordsLoaded = int64(len(txns))
	prom.AddRecordsLoaded(run.RecordsLoaded)

	var removed int64
	err = s.phase(PhaseDeduplicate, func() (err error) {
		removed, err = s.Deduplicate(ctx)
		return err
	})
	if err != nil {
		return err
	}
	run.DuplicatesRemoved = removed

	var tiers map[model.CustomerTier]int64
	err = s.phase(PhaseEnrich, func() (err error) {
		tiers, err = s.Enrich(ctx)
		return err
	})
	if err != nil {
		return err
	}
	summary.Tiers = tiers
	for _, n := range tiers {
		run.RecordsEnriched += n
	}

	remaining, err := s.txnRepo.CountDuplicateGroups(ctx)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	if remaining > 0 {
		return fmt.Errorf("%w: %d groups", ErrDuplicatesLeft, remaining)
	}
	return nil
}

// phase runs one step of the batch and records its duration, failed or not.
func (s *NormalizerService) phase(name string, fn func() error) error {
	start := s.now()
	err := fn()
	prom.ObservePhase(name, s.now().Sub(start).Seconds())
	return err
}

// Store writes a freshly loaded batch in one transaction, clearing the table
// first when the service runs in reload mode.
func (s *NormalizerService) Store(ctx context.Context, txns []*model.Transaction) error {
	err := s.txnRepo.WithinTransaction(ctx, func(ctx context.Context) error {
		if s.opts.Reload {
			if err := s.txnRepo.Truncate(ctx); err != nil {
				return fmt.Errorf("truncate: %w", err)
			}
		}
		if err := s.txnRepo.CreateBatch(ctx, txns, s.opts.InsertBatchSize); err != nil {
			return fmt.Errorf("insert: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	return nil
}

// Deduplicate removes every stored line whose (order id, product id) pair was
// loaded earlier under a smaller id. The read and the delete share one transaction.
func (s *NormalizerService) Deduplicate(ctx context.Context) (int64, error) {
	var removed int64
	err := s.txnRepo.WithinTransaction(ctx, func(ctx context.Context) error {
		txns, err := s.txnRepo.ListAll(ctx)
		if err != nil {
			return fmt.Errorf("list: %w", err)
		}
		res, err := normalize.Deduplicate(txns)
		if err != nil {
			return err
		}
		ids := res.RemovedIDs()
		if len(ids) == 0 {
			return nil
		}
		deleted, err := s.txnRepo.DeleteByIDs(ctx, ids)
		if err != nil {
			return fmt.Errorf("delete: %w", err)
		}
		if deleted != int64(len(ids)) {
			return fmt.Errorf("delete: removed %d of %d duplicate lines", deleted, len(ids))
		}
		removed = deleted
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("deduplicate: %w", err)
	}
	if removed > 0 {
		logger.Info("duplicate lines removed", "count", removed)
	}
	prom.AddDuplicatesRemoved(removed)
	return removed, nil
}

// Enrich derives shipping duration and customer tier for every stored line in
// one transaction and returns the number of lines per tier.
func (s *NormalizerService) Enrich(ctx context.Context) (map[model.CustomerTier]int64, error) {
	tiers := make(map[model.CustomerTier]int64, len(model.CustomerTiers))
	err := s.txnRepo.WithinTransaction(ctx, func(ctx context.Context) error {
		txns, err := s.txnRepo.ListAll(ctx)
		if err != nil {
			return fmt.Errorf("list: %w", err)
		}
		for _, txn := range txns {
			enriched := normalize.DeriveFeatures(*txn)
			if *enriched.ShippingDurationDays < 0 {
				logger.Warn("ship date precedes order date",
					"id", enriched.ID, "order_id", enriched.OrderID, "days", *enriched.ShippingDurationDays)
			}
			if err := s.txnRepo.UpdateDerived(ctx, &enriched); err != nil {
				return fmt.Errorf("update line %d: %w", enriched.ID, err)
			}
			tiers[*enriched.CustomerTier]++
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("enrich: %w", err)
	}
	for tier, n := range tiers {
		prom.AddRecordsEnriched(n, string(tier))
	}
	return tiers, nil
}
