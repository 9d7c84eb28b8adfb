package dashboarding

import (
	"context"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/aurelion-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/aurelion-dashboard-api/internal/config"
	"github.com/vfg2006/aurelion-dashboard-api/internal/domain"
	"github.com/vfg2006/aurelion-dashboard-api/internal/usecases/aggregating"
	errorcodes "github.com/vfg2006/aurelion-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/aurelion-dashboard-api/pkg/utils"
)

// Service mantém o snapshot atual do dataset e recalcula as visões a cada
// requisição. O snapshot é trocado atomicamente; requisições em andamento
// continuam usando o snapshot que leram.
type Service struct {
	saleLineRepository repository.SaleLineRepository
	counter            PopulationCounter
	options            aggregating.Options
	dataset            atomic.Pointer[domain.Dataset]

	now        func() time.Time
	newVersion func() (string, error)
}

var _ Dashboarder = (*Service)(nil)

func NewService(cfg *config.Config, saleLineRepo repository.SaleLineRepository, counter PopulationCounter) *Service {
	options := aggregating.DefaultOptions()
	if cfg != nil {
		if cfg.Dashboard.TopCustomers > 0 {
			options.TopCustomers = cfg.Dashboard.TopCustomers
		}
		if cfg.Dashboard.ParetoThreshold > 0 {
			options.ParetoThreshold = cfg.Dashboard.ParetoThreshold
		}
	}

	return &Service{
		saleLineRepository: saleLineRepo,
		counter:            counter,
		options:            options,
		now:                time.Now,
		newVersion:         utils.GenerateVersionID,
	}
}

func (s *Service) Reload(ctx context.Context) (*domain.Dataset, error) {
	start := s.now()

	records, err := s.saleLineRepository.LoadSaleLines(ctx)
	if err != nil {
		return nil, NewDashboardError(fmt.Errorf("%w: %w", ErrLoadDataset, err), errorcodes.ErrDatabaseOperation, "")
	}

	version, err := s.newVersion()
	if err != nil {
		return nil, NewDashboardError(fmt.Errorf("%w: %w", ErrGenerateVersion, err), errorcodes.ErrInternalServer, "")
	}

	dataset := &domain.Dataset{
		Version:  version,
		LoadedAt: s.now().UTC(),
		Records:  records,
	}

	previous := s.dataset.Swap(dataset)

	logrus.WithFields(logrus.Fields{
		"version":     dataset.Version,
		"rows":        dataset.Size(),
		"previous":    previousVersion(previous),
		"duration_ms": s.now().Sub(start).Milliseconds(),
	}).Info("Dataset de vendas carregado")

	return dataset, nil
}

func previousVersion(dataset *domain.Dataset) string {
	if dataset == nil {
		return ""
	}
	return dataset.Version
}

func (s *Service) Dataset() *domain.Dataset {
	return s.dataset.Load()
}

func (s *Service) snapshot() (*domain.Dataset, error) {
	dataset := s.dataset.Load()
	if dataset == nil {
		return nil, NewDashboardError(ErrDatasetNotLoaded, errorcodes.ErrDatasetNotLoaded, "")
	}
	return dataset, nil
}

func (s *Service) GetCharts(_ context.Context, filter domain.FilterSpec) (*domain.DashboardCharts, error) {
	dataset, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	charts := aggregating.BuildCharts(dataset.Records, filter, s.options)
	charts.Version = dataset.Version

	return &charts, nil
}

func (s *Service) GetKPIs(ctx context.Context, filter domain.FilterSpec) (*domain.DashboardKPIs, error) {
	dataset, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	filtered := aggregating.Filter(dataset.Records, filter)

	revenue := aggregating.TotalRevenue(filtered)
	sales := aggregating.DistinctSales(filtered)
	ticket := aggregating.AverageTicket(filtered)

	customers, err := s.counter.CountCustomers(ctx, filter, filtered)
	if err != nil {
		return nil, populationError(err, "clientes")
	}

	products, err := s.counter.CountProducts(ctx, filter, filtered)
	if err != nil {
		return nil, populationError(err, "produtos")
	}

	catalog, err := s.counter.CountCatalog(ctx)
	if err != nil {
		return nil, populationError(err, "catálogo")
	}
	catalogTotal := float64(catalog)

	return &domain.DashboardKPIs{
		Version:       dataset.Version,
		Filter:        filter,
		CountStrategy: s.counter.Strategy(),
		Revenue: domain.KPI{
			Display: utils.FormatCurrency(revenue),
			Value:   utils.RoundWithTwoDecimalPlace(revenue),
		},
		Sales: domain.KPI{
			Display: strconv.Itoa(sales),
			Value:   float64(sales),
		},
		Customers: domain.KPI{
			Display: strconv.Itoa(customers),
			Value:   float64(customers),
		},
		Products: domain.KPI{
			Display: fmt.Sprintf("%d/%d", products, catalog),
			Value:   float64(products),
			Total:   &catalogTotal,
		},
		AverageTicket: domain.KPI{
			Display: utils.FormatCurrency(ticket),
			Value:   utils.RoundWithTwoDecimalPlace(ticket),
		},
	}, nil
}

func populationError(err error, details string) error {
	return NewDashboardError(fmt.Errorf("%w: %w", ErrCountPopulation, err), errorcodes.ErrDatabaseOperation, details)
}

func (s *Service) GetFilterOptions(_ context.Context) (*domain.FilterOptions, error) {
	dataset, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	return &domain.FilterOptions{
		Cities:     aggregating.CityOptions(dataset.Records),
		Categories: aggregating.CategoryOptions(dataset.Records),
	}, nil
}

// GetGeo calcula as visões geográficas sempre sobre o conjunto completo
func (s *Service) GetGeo(_ context.Context, metric domain.GeoMetric) (*domain.GeoResponse, error) {
	if !metric.IsValid() {
		return nil, NewDashboardError(ErrInvalidMetric, errorcodes.ErrInvalidFormat, string(metric))
	}

	dataset, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	return &domain.GeoResponse{
		Version: dataset.Version,
		Metric:  metric,
		Entries: aggregating.GeoByCity(dataset.Records, metric),
	}, nil
}
