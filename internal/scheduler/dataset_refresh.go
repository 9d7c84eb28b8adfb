package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/aurelion-dashboard-api/internal/config"
	"github.com/vfg2006/aurelion-dashboard-api/internal/domain"
	"github.com/vfg2006/aurelion-dashboard-api/internal/usecases/dashboarding"
)

var ErrSyncRunning = errors.New("recarga do dataset já em andamento")

// DatasetRefreshConfig representa a configuração do agendador de recarga do dataset
type DatasetRefreshConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// DatasetRefreshService recarrega periodicamente o snapshot de vendas do dashboard
type DatasetRefreshService struct {
	scheduler *gocron.Scheduler
	config    DatasetRefreshConfig
	dashboard dashboarding.Dashboarder
	baseCtx   context.Context

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       error
}

func NewDatasetRefreshService(dashboard dashboarding.Dashboarder, appConfig *config.Config) *DatasetRefreshService {
	refreshConfig := DatasetRefreshConfig{
		CronSchedule: appConfig.DatasetSync.CronSchedule,
		SyncEnabled:  appConfig.DatasetSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"sync_enabled":  refreshConfig.SyncEnabled,
	}).Info("Configuração do agendador de recarga do dataset carregada")

	return &DatasetRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    refreshConfig,
		dashboard: dashboard,
		baseCtx:   context.Background(),
	}
}

// Start agenda a recarga e para o agendador quando o contexto for cancelado
func (s *DatasetRefreshService) Start(ctx context.Context) error {
	s.syncMutex.Lock()
	s.baseCtx = ctx
	s.syncMutex.Unlock()

	if !s.config.SyncEnabled {
		logrus.Info("Recarga agendada do dataset desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recarga do dataset")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncDataset(ctx); err != nil && !errors.Is(err, ErrSyncRunning) {
			logrus.WithError(err).Error("Erro na recarga agendada do dataset")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga do dataset: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recarga do dataset")
		s.scheduler.Stop()
	}()

	return nil
}

// acquire marca a recarga como em andamento e devolve o contexto base
// lido sob o mesmo lock
func (s *DatasetRefreshService) acquire() (context.Context, bool) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return nil, false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return s.baseCtx, true
}

// SyncDataset recarrega o dataset uma vez. Retorna ErrSyncRunning se outra
// recarga estiver em execução.
func (s *DatasetRefreshService) SyncDataset(ctx context.Context) error {
	if _, ok := s.acquire(); !ok {
		logrus.Info("Recarga do dataset já em andamento, ignorando")
		return ErrSyncRunning
	}

	return s.run(ctx)
}

func (s *DatasetRefreshService) run(ctx context.Context) error {
	startTime := time.Now()
	dataset, err := s.dashboard.Reload(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncError = err
	if err == nil {
		s.lastSyncCompletedAt = time.Now()
	}
	s.syncMutex.Unlock()

	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"version":  dataset.Version,
		"rows":     dataset.Size(),
	}).Info("Recarga do dataset concluída")

	return nil
}

// TriggerManualSync inicia uma recarga em segundo plano
func (s *DatasetRefreshService) TriggerManualSync() error {
	ctx, ok := s.acquire()
	if !ok {
		logrus.Info("Recarga do dataset já em andamento, ignorando solicitação manual")
		return ErrSyncRunning
	}

	logrus.Info("Iniciando recarga manual do dataset")
	go func() {
		if err := s.run(ctx); err != nil {
			logrus.WithError(err).Error("Erro na recarga manual do dataset")
		}
	}()

	return nil
}

func (s *DatasetRefreshService) Status() domain.SyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := domain.SyncStatus{
		Enabled:      s.config.SyncEnabled,
		CronSchedule: s.config.CronSchedule,
		Running:      s.syncRunning,
	}

	if !s.lastSyncStartedAt.IsZero() {
		startedAt := s.lastSyncStartedAt
		status.LastStartedAt = &startedAt
	}
	if !s.lastSyncCompletedAt.IsZero() {
		completedAt := s.lastSyncCompletedAt
		status.LastCompletedAt = &completedAt
	}
	if s.lastSyncError != nil {
		status.LastError = s.lastSyncError.Error()
	}

	return status
}
