package handler

import (
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"github.com/vfg2006/aurelion-dashboard-api/internal/domain"
	"github.com/vfg2006/aurelion-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/aurelion-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/aurelion-dashboard-api/pkg/log"
)

// FilterQuery são os filtros aceitos na query string; ausente ou "all" não restringe
type FilterQuery struct {
	City     string `query:"city" validate:"max=100"`
	Category string `query:"category" validate:"max=100"`
}

type GeoQuery struct {
	Metric string `query:"metric" validate:"omitempty,oneof=revenue sales ticket customers"`
}

func parseFilter(w http.ResponseWriter, values url.Values) (domain.FilterSpec, bool) {
	query := FilterQuery{
		City:     values.Get("city"),
		Category: values.Get("category"),
	}
	if !validateStruct(w, query) {
		return domain.FilterSpec{}, false
	}
	return domain.NewFilterSpec(query.City, query.Category), true
}

func GetFilterOptions(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		options, err := service.GetFilterOptions(r.Context())
		if err != nil {
			handleDashboardError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, options)
	}
}

func GetCharts(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, ok := parseFilter(w, r.URL.Query())
		if !ok {
			return
		}

		charts, err := service.GetCharts(r.Context(), filter)
		if err != nil {
			handleDashboardError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, charts)
	}
}

func GetKPIs(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, ok := parseFilter(w, r.URL.Query())
		if !ok {
			return
		}

		kpis, err := service.GetKPIs(r.Context(), filter)
		if err != nil {
			handleDashboardError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, kpis)
	}
}

// GetGeo usa receita quando a métrica não é informada
func GetGeo(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := GeoQuery{Metric: r.URL.Query().Get("metric")}
		if !validateStruct(w, query) {
			return
		}

		metric := domain.GeoMetricRevenue
		if query.Metric != "" {
			metric = domain.GeoMetric(query.Metric)
		}

		geo, err := service.GetGeo(r.Context(), metric)
		if err != nil {
			handleDashboardError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, geo)
	}
}

func handleDashboardError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var dashErr *dashboarding.DashboardError
	if errors.As(err, &dashErr) {
		if apiErrors.StatusFor(dashErr.Code) >= http.StatusInternalServerError {
			logger.Error("Erro ao calcular visão do dashboard")
		} else {
			logger.Warn("Requisição do dashboard rejeitada")
		}
		apiErrors.WriteError(w, dashErr.Code, dashErr.Err.Error(), detailsOf(dashErr.Details))
		return
	}

	logger.Error("Erro inesperado no dashboard")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao calcular o dashboard", nil)
}

func detailsOf(details string) any {
	if details == "" {
		return nil
	}
	return details
}
