package dashboarding

import (
	"context"

	"github.com/vfg2006/aurelion-dashboard-api/internal/domain"
)

// Dashboarder expõe as visões do dashboard calculadas sobre o snapshot atual
type Dashboarder interface {
	// Reload carrega novamente todas as linhas de venda e troca o snapshot
	Reload(ctx context.Context) (*domain.Dataset, error)

	// Dataset retorna o snapshot atual, nil antes da primeira carga
	Dataset() *domain.Dataset

	GetCharts(ctx context.Context, filter domain.FilterSpec) (*domain.DashboardCharts, error)
	GetKPIs(ctx context.Context, filter domain.FilterSpec) (*domain.DashboardKPIs, error)
	GetFilterOptions(ctx context.Context) (*domain.FilterOptions, error)
	GetGeo(ctx context.Context, metric domain.GeoMetric) (*domain.GeoResponse, error)
}

// PopulationCounter conta clientes e produtos distintos para os KPIs.
// filtered é o conjunto já filtrado da requisição; estratégias que consultam o
// banco podem ignorá-lo.
type PopulationCounter interface {
	Strategy() string
	CountCustomers(ctx context.Context, filter domain.FilterSpec, filtered []domain.SaleLineRecord) (int, error)
	CountProducts(ctx context.Context, filter domain.FilterSpec, filtered []domain.SaleLineRecord) (int, error)
	CountCatalog(ctx context.Context) (int, error)
}
