package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/aurelion-dashboard-api/internal/config"
	"github.com/vfg2006/aurelion-dashboard-api/internal/domain"
	"github.com/vfg2006/aurelion-dashboard-api/internal/usecases/dashboarding/mocks"
	"go.uber.org/mock/gomock"
)

func newRefreshConfig(enabled bool, cron string) *config.Config {
	return &config.Config{DatasetSync: config.DatasetSync{CronSchedule: cron, Enabled: enabled}}
}

func TestDatasetRefreshService_SyncDataset(t *testing.T) {
	tests := []struct {
		name          string
		reloadErr     error
		wantErr       bool
		wantCompleted bool
	}{
		{name: "sucesso", wantCompleted: true},
		{name: "erro na recarga", reloadErr: errors.New("banco indisponível"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			dashboard := mocks.NewMockDashboarder(ctrl)

			if tt.reloadErr != nil {
				dashboard.EXPECT().Reload(gomock.Any()).Return(nil, tt.reloadErr)
			} else {
				dashboard.EXPECT().Reload(gomock.Any()).Return(&domain.Dataset{Version: "abc"}, nil)
			}

			service := NewDatasetRefreshService(dashboard, newRefreshConfig(true, "0 * * * *"))
			err := service.SyncDataset(context.Background())

			status := service.Status()
			assert.False(t, status.Running)
			assert.NotNil(t, status.LastStartedAt)

			if tt.wantErr {
				assert.ErrorIs(t, err, tt.reloadErr)
				assert.Equal(t, tt.reloadErr.Error(), status.LastError)
				assert.Nil(t, status.LastCompletedAt)
				return
			}

			require.NoError(t, err)
			assert.Empty(t, status.LastError)
			assert.NotNil(t, status.LastCompletedAt)
		})
	}
}

func TestDatasetRefreshService_RejectsConcurrentRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	dashboard := mocks.NewMockDashboarder(ctrl)

	started := make(chan struct{})
	release := make(chan struct{})

	dashboard.EXPECT().Reload(gomock.Any()).DoAndReturn(func(ctx context.Context) (*domain.Dataset, error) {
		close(started)
		<-release
		return &domain.Dataset{Version: "v1"}, nil
	}).Times(1)

	service := NewDatasetRefreshService(dashboard, newRefreshConfig(false, ""))

	done := make(chan error)
	go func() {
		done <- service.SyncDataset(context.Background())
	}()

	<-started
	assert.True(t, service.Status().Running)
	assert.ErrorIs(t, service.SyncDataset(context.Background()), ErrSyncRunning)
	assert.ErrorIs(t, service.TriggerManualSync(), ErrSyncRunning)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, service.Status().Running)
}

func TestDatasetRefreshService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	dashboard := mocks.NewMockDashboarder(ctrl)

	reloaded := make(chan struct{})
	dashboard.EXPECT().Reload(gomock.Any()).DoAndReturn(func(ctx context.Context) (*domain.Dataset, error) {
		defer close(reloaded)
		return &domain.Dataset{Version: "manual"}, nil
	})

	service := NewDatasetRefreshService(dashboard, newRefreshConfig(false, ""))

	require.NoError(t, service.TriggerManualSync())

	select {
	case <-reloaded:
	case <-time.After(2 * time.Second):
		t.Fatal("recarga manual não foi executada")
	}

	assert.Eventually(t, func() bool {
		return !service.Status().Running && service.Status().LastCompletedAt != nil
	}, 2*time.Second, 10*time.Millisecond)
}

func TestDatasetRefreshService_Start(t *testing.T) {
	t.Run("desabilitado não agenda nada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewDatasetRefreshService(mocks.NewMockDashboarder(ctrl), newRefreshConfig(false, "0 * * * *"))

		require.NoError(t, service.Start(context.Background()))
		assert.Empty(t, service.scheduler.Jobs())
		assert.False(t, service.Status().Enabled)
	})

	t.Run("cron inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewDatasetRefreshService(mocks.NewMockDashboarder(ctrl), newRefreshConfig(true, "nao-e-cron"))

		assert.Error(t, service.Start(context.Background()))
	})

	t.Run("agenda e para com o contexto", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewDatasetRefreshService(mocks.NewMockDashboarder(ctrl), newRefreshConfig(true, "0 0 1 1 *"))

		ctx, cancel := context.WithCancel(context.Background())
		require.NoError(t, service.Start(ctx))
		assert.Len(t, service.scheduler.Jobs(), 1)
		assert.True(t, service.scheduler.IsRunning())

		cancel()
		assert.Eventually(t, func() bool {
			return !service.scheduler.IsRunning()
		}, 2*time.Second, 10*time.Millisecond)

		status := service.Status()
		assert.True(t, status.Enabled)
		assert.Equal(t, "0 0 1 1 *", status.CronSchedule)
	})
}

type refreshCtxKey struct{}

func TestDatasetRefreshService_TriggerManualSyncUsesStartContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	dashboard := mocks.NewMockDashboarder(ctrl)

	received := make(chan context.Context, 1)
	dashboard.EXPECT().Reload(gomock.Any()).DoAndReturn(func(ctx context.Context) (*domain.Dataset, error) {
		received <- ctx
		return &domain.Dataset{Version: "manual"}, nil
	})

	service := NewDatasetRefreshService(dashboard, newRefreshConfig(false, ""))

	ctx := context.WithValue(context.Background(), refreshCtxKey{}, "aplicação")
	started := make(chan error)
	go func() {
		started <- service.Start(ctx)
	}()
	require.NoError(t, <-started)

	require.NoError(t, service.TriggerManualSync())

	select {
	case reloadCtx := <-received:
		assert.Equal(t, "aplicação", reloadCtx.Value(refreshCtxKey{}))
	case <-time.After(2 * time.Second):
		t.Fatal("recarga manual não foi executada")
	}

	assert.Eventually(t, func() bool {
		return !service.Status().Running
	}, 2*time.Second, 10*time.Millisecond)
}
