package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/aurelion-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/aurelion-dashboard-api/internal/domain"
)

// CatalogRepository responde às contagens de população feitas direto no banco,
// independentes do snapshot carregado em memória
type CatalogRepository interface {
	CountCustomers(ctx context.Context, filter domain.FilterSpec) (int, error)
	CountProducts(ctx context.Context, filter domain.FilterSpec) (int, error)
	CountCatalog(ctx context.Context) (int, error)
}

type catalogRepository struct {
	conn postgres.Queryer
}

func NewCatalogRepository(conn postgres.Queryer) CatalogRepository {
	return &catalogRepository{
		conn: conn,
	}
}

// CountCustomersQuery conta clientes cadastrados. Apenas a cidade restringe a
// contagem: a categoria não se aplica a clientes.
func CountCustomersQuery(filter domain.FilterSpec) (string, []interface{}, error) {
	builder := squirrel.
		Select("COUNT(DISTINCT c.nombre_cliente)").
		From(customersTable)

	if filter.HasCity() {
		builder = builder.Where(squirrel.Eq{"c.ciudad": filter.City})
	}

	return builder.PlaceholderFormat(squirrel.Dollar).ToSql()
}

// CountProductsQuery conta os produtos que tiveram ao menos uma venda
// compatível com o filtro
func CountProductsQuery(filter domain.FilterSpec) (string, []interface{}, error) {
	builder := squirrel.
		Select("COUNT(DISTINCT p.id_producto)").
		From(productsTable).
		Join("detalles_ventas d ON d.id_producto = p.id_producto").
		Join("ventas v ON v.id_venta = d.id_venta").
		Join("clientes c ON c.id_cliente = v.id_cliente")

	if filter.HasCity() {
		builder = builder.Where(squirrel.Eq{"c.ciudad": filter.City})
	}

	if filter.HasCategory() {
		builder = builder.Where(squirrel.Eq{"p.categoria": filter.Category})
	}

	return builder.PlaceholderFormat(squirrel.Dollar).ToSql()
}

func CountCatalogQuery() (string, []interface{}, error) {
	return squirrel.
		Select("COUNT(*)").
		From(productsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *catalogRepository) CountCustomers(ctx context.Context, filter domain.FilterSpec) (int, error) {
	query, args, err := CountCustomersQuery(filter)
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.count(ctx, query, args)
}

func (r *catalogRepository) CountProducts(ctx context.Context, filter domain.FilterSpec) (int, error) {
	query, args, err := CountProductsQuery(filter)
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.count(ctx, query, args)
}

func (r *catalogRepository) CountCatalog(ctx context.Context) (int, error) {
	query, args, err := CountCatalogQuery()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.count(ctx, query, args)
}

func (r *catalogRepository) count(ctx context.Context, query string, args []interface{}) (int, error) {
	var total int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, wrapQueryError("erro ao executar contagem", err)
	}
	return total, nil
}
