package model

import (
	"time"

	"github.com/google/uuid"
)

type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusSucceeded RunStatus = "succeeded"
	RunStatusFailed    RunStatus = "failed"
)

// NormalizationRun is the audit row of one batch execution.
type NormalizationRun struct {
	ID                int64      `json:"-"`
	RunID             uuid.UUID  `json:"run_id"`
	InputPath         string     `json:"input_path"`
	Status            RunStatus  `json:"status"`
	RecordsLoaded     int64      `json:"records_loaded"`
	DuplicatesRemoved int64      `json:"duplicates_removed"`
	RecordsEnriched   int64      `json:"records_enriched"`
	Error             string     `json:"error,omitempty"`
	StartedAt         time.Time  `json:"started_at"`
	FinishedAt        *time.Time `json:"finished_at,omitempty"`
}

func (r *NormalizationRun) Duration() time.Duration {
	if r.FinishedAt == nil {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// RunSummary is what the batch hands back to its caller.
type RunSummary struct {
	Run   *NormalizationRun
	Tiers map[CustomerTier]int64
}
