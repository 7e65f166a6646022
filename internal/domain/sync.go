package domain

import (
	"time"
)

// SyncResult é o retorno de uma sincronização de campanhas. Não é persistido.
type SyncResult struct {
	Success   bool       `json:"success"`
	Message   string     `json:"message"`
	Campaigns []Campaign `json:"campaigns"`
	SyncID    string     `json:"sync_id,omitempty"`
	SyncedAt  *time.Time `json:"synced_at,omitempty"`
}

// SyncStatus descreve o estado atual e a última sincronização executada
type SyncStatus struct {
	Syncing             bool       `json:"syncing"`
	LastSyncID          string     `json:"last_sync_id,omitempty"`
	LastSyncStartedAt   *time.Time `json:"last_sync_started_at,omitempty"`
	LastSyncCompletedAt *time.Time `json:"last_sync_completed_at,omitempty"`
	LastSyncCampaigns   int        `json:"last_sync_campaigns"`
}
