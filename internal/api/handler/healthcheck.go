package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/aurelion-dashboard-api/internal/usecases/dashboarding"
)

type HealthcheckResponse struct {
	Status        string    `json:"status"`
	Time          time.Time `json:"time"`
	DatasetLoaded bool      `json:"dataset_loaded"`
}

// HealthcheckHandler responde sempre 200; dataset_loaded indica se o
// dashboard já pode servir requisições
func HealthcheckHandler(dashboard dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := HealthcheckResponse{
			Status:        "ok",
			Time:          time.Now().UTC(),
			DatasetLoaded: dashboard.Dataset() != nil,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.WithError(err).Warn("Erro ao responder o healthcheck")
		}
	})
}
