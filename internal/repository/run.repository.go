package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/nimasrn/retail-normalizer/internal/model"
	"github.com/nimasrn/retail-normalizer/pkg/database"
	"gorm.io/gorm"
)

type RunRepository struct {
	*database.DB
}

func NewRunRepository(db *database.DB) *RunRepository {
	return &RunRepository{
		db,
	}
}

func (r *RunRepository) Create(ctx context.Context, run *model.NormalizationRun) error {
	entity := toRunEntity(run)
	if err := r.Write(ctx).Create(entity).Error; err != nil {
		return err
	}
	run.ID = entity.ID
	return nil
}

// Finish persists the final status, counters and finish time of a run.
func (r *RunRepository) Finish(ctx context.Context, run *model.NormalizationRun) error {
	res := r.Write(ctx).Model(&RunEntity{}).
		Where("run_id = ?", run.RunID).
		Updates(map[string]any{
			"status":             string(run.Status),
			"records_loaded":     run.RecordsLoaded,
			"duplicates_removed": run.DuplicatesRemoved,
			"records_enriched":   run.RecordsEnriched,
			"error":              run.Error,
			"finished_at":        run.FinishedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRunNotFound
	}
	return nil
}

func (r *RunRepository) Get(ctx context.Context, runID uuid.UUID) (*model.NormalizationRun, error) {
	var entity RunEntity
	err := r.Read(ctx).Where("run_id = ?", runID).First(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, err
	}
	return toRunModel(&entity), nil
}

// Latest returns the most recently started run.
func (r *RunRepository) Latest(ctx context.Context) (*model.NormalizationRun, error) {
	var entity RunEntity
	err := r.Read(ctx).Order("started_at DESC, id DESC").First(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, err
	}
	return toRunModel(&entity), nil
}
