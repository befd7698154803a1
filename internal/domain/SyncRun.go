package domain

import (
	"time"
)

type SyncRunStatus string

const (
	SyncRunStatusRunning        SyncRunStatus = "RUNNING"
	SyncRunStatusCompleted      SyncRunStatus = "COMPLETED"
	SyncRunStatusPartialFailure SyncRunStatus = "PARTIAL_FAILURE"
	SyncRunStatusFailed         SyncRunStatus = "FAILED"
)

type ResourceKind string

const (
	ResourceKindAccount     ResourceKind = "account"
	ResourceKindCampaign    ResourceKind = "campaign"
	ResourceKindAdGroup     ResourceKind = "ad_group"
	ResourceKindKeyword     ResourceKind = "keyword"
	ResourceKindPerformance ResourceKind = "performance"
)

type SyncCounts struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
}

// SyncError registra uma falha parcial de um recurso específico dentro de uma execução.
type SyncError struct {
	ResourceKind ResourceKind `json:"resource_kind"`
	ExternalID   string       `json:"external_id"`
	Message      string       `json:"message"`
}

// SyncRun é o registro de auditoria de uma execução de sincronização (append-only).
type SyncRun struct {
	ID         string                       `json:"id"`
	Scope      string                       `json:"scope"`
	Status     SyncRunStatus                `json:"status"`
	StartedAt  time.Time                    `json:"started_at"`
	FinishedAt *time.Time                   `json:"finished_at,omitempty"`
	Counts     map[ResourceKind]*SyncCounts `json:"counts"`
	Errors     []SyncError                  `json:"errors"`
}

// SyncSummary é o resultado devolvido ao chamador de uma sincronização.
type SyncSummary struct {
	RunID      string                       `json:"run_id"`
	Scope      string                       `json:"scope"`
	Status     SyncRunStatus                `json:"status"`
	StartedAt  time.Time                    `json:"started_at"`
	FinishedAt time.Time                    `json:"finished_at"`
	Counts     map[ResourceKind]*SyncCounts `json:"counts"`
	Errors     []SyncError                  `json:"errors"`
}

func NewSyncSummary(scope string) *SyncSummary {
	return &SyncSummary{
		Scope:     scope,
		StartedAt: time.Now(),
		Counts: map[ResourceKind]*SyncCounts{
			ResourceKindAccount:     {},
			ResourceKindCampaign:    {},
			ResourceKindAdGroup:     {},
			ResourceKindKeyword:     {},
			ResourceKindPerformance: {},
		},
		Errors: make([]SyncError, 0),
	}
}

// Record contabiliza o resultado de um upsert no contador do recurso.
func (s *SyncSummary) Record(kind ResourceKind, created bool) {
	counts, ok := s.Counts[kind]
	if !ok {
		counts = &SyncCounts{}
		s.Counts[kind] = counts
	}

	if created {
		counts.Created++
	} else {
		counts.Updated++
	}
}

func (s *SyncSummary) AddError(kind ResourceKind, externalID string, err error) {
	s.Errors = append(s.Errors, SyncError{
		ResourceKind: kind,
		ExternalID:   externalID,
		Message:      err.Error(),
	})
}

func (s *SyncSummary) HasErrors() bool {
	return len(s.Errors) > 0
}
