package dashboarding

import (
	"context"
	"fmt"

	"github.com/vfg2006/aurelion-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/aurelion-dashboard-api/internal/config"
	"github.com/vfg2006/aurelion-dashboard-api/internal/domain"
	"github.com/vfg2006/aurelion-dashboard-api/internal/usecases/aggregating"
)

// NewPopulationCounter escolhe a estratégia de contagem configurada
func NewPopulationCounter(strategy string, catalog repository.CatalogRepository) (PopulationCounter, error) {
	switch strategy {
	case config.CountStrategyLive, "":
		return &liveCounter{catalog: catalog}, nil
	case config.CountStrategyDerived:
		return &derivedCounter{catalog: catalog}, nil
	default:
		return nil, fmt.Errorf("estratégia de contagem desconhecida: %q", strategy)
	}
}

// liveCounter consulta as tabelas mestre a cada requisição. Clientes são
// contados no cadastro, restritos só pela cidade.
type liveCounter struct {
	catalog repository.CatalogRepository
}

func (c *liveCounter) Strategy() string {
	return config.CountStrategyLive
}

func (c *liveCounter) CountCustomers(ctx context.Context, filter domain.FilterSpec, _ []domain.SaleLineRecord) (int, error) {
	return c.catalog.CountCustomers(ctx, filter)
}

func (c *liveCounter) CountProducts(ctx context.Context, filter domain.FilterSpec, _ []domain.SaleLineRecord) (int, error) {
	return c.catalog.CountProducts(ctx, filter)
}

func (c *liveCounter) CountCatalog(ctx context.Context) (int, error) {
	return c.catalog.CountCatalog(ctx)
}

// derivedCounter conta a partir das linhas filtradas em memória; apenas o
// total do catálogo vem do banco
type derivedCounter struct {
	catalog repository.CatalogRepository
}

func (c *derivedCounter) Strategy() string {
	return config.CountStrategyDerived
}

func (c *derivedCounter) CountCustomers(_ context.Context, _ domain.FilterSpec, filtered []domain.SaleLineRecord) (int, error) {
	return aggregating.DistinctCustomers(filtered), nil
}

func (c *derivedCounter) CountProducts(_ context.Context, _ domain.FilterSpec, filtered []domain.SaleLineRecord) (int, error) {
	return aggregating.DistinctProducts(filtered), nil
}

func (c *derivedCounter) CountCatalog(ctx context.Context) (int, error) {
	return c.catalog.CountCatalog(ctx)
}
