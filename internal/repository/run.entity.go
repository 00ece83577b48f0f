package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/nimasrn/retail-normalizer/internal/model"
)

type RunEntity struct {
	ID                int64      `db:"id"                 gorm:"primaryKey;autoIncrement;column:id"`
	RunID             uuid.UUID  `db:"run_id"             gorm:"column:run_id;type:varchar(36);not null;uniqueIndex"`
	InputPath         string     `db:"input_path"         gorm:"column:input_path;type:text;not null;default:''"`
	Status            string     `db:"status"             gorm:"column:status;type:varchar(16);not null"`
	RecordsLoaded     int64      `db:"records_loaded"     gorm:"column:records_loaded;not null;default:0"`
	DuplicatesRemoved int64      `db:"duplicates_removed" gorm:"column:duplicates_removed;not null;default:0"`
	RecordsEnriched   int64      `db:"records_enriched"   gorm:"column:records_enriched;not null;default:0"`
	Error             string     `db:"error"              gorm:"column:error;type:text;not null;default:''"`
	StartedAt         time.Time  `db:"started_at"         gorm:"column:started_at;not null"`
	FinishedAt        *time.Time `db:"finished_at"        gorm:"column:finished_at"`
}

func (RunEntity) TableName() string {
	return "normalization_runs"
}

func toRunEntity(m *model.NormalizationRun) *RunEntity {
	if m == nil {
		return nil
	}
	return &RunEntity{
		ID:                m.ID,
		RunID:             m.RunID,
		InputPath:         m.InputPath,
		Status:            string(m.Status),
		RecordsLoaded:     m.RecordsLoaded,
		DuplicatesRemoved: m.DuplicatesRemoved,
		RecordsEnriched:   m.RecordsEnriched,
		Error:             m.Error,
		StartedAt:         m.StartedAt,
		FinishedAt:        m.FinishedAt,
	}
}

func toRunModel(e *RunEntity) *model.NormalizationRun {
	if e == nil {
		return nil
	}
	return &model.NormalizationRun{
		ID:                e.ID,
		RunID:             e.RunID,
		InputPath:         e.InputPath,
		Status:            model.RunStatus(e.Status),
		RecordsLoaded:     e.RecordsLoaded,
		DuplicatesRemoved: e.DuplicatesRemoved,
		RecordsEnriched:   e.RecordsEnriched,
		Error:             e.Error,
		StartedAt:         e.StartedAt,
		FinishedAt:        e.FinishedAt,
	}
}
