package scheduler

import (
	"context"

	"github.com/vfg2006/aurelion-dashboard-api/internal/domain"
)

// DatasetSyncer é o que a API precisa do agendador de recarga
type DatasetSyncer interface {
	SyncDataset(ctx context.Context) error
	TriggerManualSync() error
	Status() domain.SyncStatus
}

var _ DatasetSyncer = (*DatasetRefreshService)(nil)
