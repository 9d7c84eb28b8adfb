package handler

import (
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vfg2006/aurelion-dashboard-api/internal/domain"
	"github.com/vfg2006/aurelion-dashboard-api/internal/scheduler"
	"github.com/vfg2006/aurelion-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/aurelion-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/aurelion-dashboard-api/pkg/log"
	"github.com/vfg2006/aurelion-dashboard-api/pkg/middleware"
)

type ReloadAcceptedResponse struct {
	Message string `json:"message"`
}

func datasetStatus(dashboard dashboarding.Dashboarder, syncer scheduler.DatasetSyncer) domain.DatasetStatus {
	status := domain.DatasetStatus{
		Sync: syncer.Status(),
	}

	if dataset := dashboard.Dataset(); dataset != nil {
		loadedAt := dataset.LoadedAt
		status.Loaded = true
		status.Version = dataset.Version
		status.LoadedAt = &loadedAt
		status.Rows = dataset.Size()
	}

	return status
}

func GetDatasetStatus(dashboard dashboarding.Dashboarder, syncer scheduler.DatasetSyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, datasetStatus(dashboard, syncer))
	}
}

// ReloadDataset recarrega o dataset na própria requisição. Com ?async=true a
// recarga é disparada em background e a resposta é 202.
func ReloadDataset(dashboard dashboarding.Dashboarder, syncer scheduler.DatasetSyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
			logger = logger.WithField("user_id", claims.UserID)
		}

		async, _ := strconv.ParseBool(r.URL.Query().Get("async"))
		if async {
			if err := syncer.TriggerManualSync(); err != nil {
				handleReloadError(w, logger, err)
				return
			}

			logger.Info("Recarga do dataset disparada em background")
			writeJSON(w, http.StatusAccepted, ReloadAcceptedResponse{Message: "Recarga do dataset iniciada"})
			return
		}

		if err := syncer.SyncDataset(r.Context()); err != nil {
			handleReloadError(w, logger, err)
			return
		}

		logger.Info("Dataset recarregado manualmente")
		writeJSON(w, http.StatusOK, datasetStatus(dashboard, syncer))
	}
}

func handleReloadError(w http.ResponseWriter, logger log.Logger, err error) {
	if errors.Is(err, scheduler.ErrSyncRunning) {
		logger.Warn("Recarga do dataset já em andamento")
		apiErrors.WriteError(w, apiErrors.ErrDatasetReloadRunning, "Recarga do dataset já em andamento", nil)
		return
	}

	var dashErr *dashboarding.DashboardError
	if errors.As(err, &dashErr) {
		logger.WithError(err).Error("Erro ao recarregar o dataset")
		apiErrors.WriteError(w, dashErr.Code, dashErr.Err.Error(), nil)
		return
	}

	logger.WithError(err).Error("Erro ao recarregar o dataset")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao recarregar o dataset", nil)
}
