package domain

import (
	"time"
)

type AdAccountStatus string

const (
	AdAccountStatusActive   AdAccountStatus = "ACTIVE"
	AdAccountStatusInactive AdAccountStatus = "INACTIVE"
)

type SyncStatus string

const (
	SyncStatusIdle    SyncStatus = "IDLE"
	SyncStatusRunning SyncStatus = "RUNNING"
	SyncStatusFailed  SyncStatus = "FAILED"
)

// AdAccount é uma conta de anúncios ("customer") sincronizada do provedor.
// ExternalID é o identificador atribuído pelo provedor e é a chave natural do upsert.
type AdAccount struct {
	ID           string          `json:"id"`
	ExternalID   string          `json:"external_id"`
	UserID       int             `json:"user_id"`
	Name         string          `json:"name"`
	Nickname     *string         `json:"nickname"`
	CurrencyCode string          `json:"currency_code"`
	Timezone     string          `json:"timezone"`
	IsManager    bool            `json:"is_manager"`
	Status       AdAccountStatus `json:"status"`
	SyncStatus   SyncStatus      `json:"sync_status"`
	LastSyncedAt *time.Time      `json:"last_synced_at,omitempty"`
}

type AdAccountResponse struct {
	ID           string          `json:"id"`
	ExternalID   string          `json:"external_id"`
	Name         string          `json:"name"`
	Nickname     *string         `json:"nickname"`
	CurrencyCode string          `json:"currency_code"`
	Timezone     string          `json:"timezone"`
	IsManager    bool            `json:"is_manager"`
	Status       AdAccountStatus `json:"status"`
	SyncStatus   SyncStatus      `json:"sync_status"`
	LastSyncedAt *time.Time      `json:"last_synced_at,omitempty"`
}

type UpdateAdAccountRequest struct {
	ID       string  `json:"id"`
	Nickname *string `json:"nickname,omitempty"`
	Status   *string `json:"status,omitempty"`
}
