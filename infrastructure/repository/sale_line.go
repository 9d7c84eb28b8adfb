package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/aurelion-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/aurelion-dashboard-api/internal/domain"
)

const (
	salesTable       = "ventas v"
	customersTable   = "clientes c"
	saleDetailsTable = "detalles_ventas d"
	productsTable    = "productos p"
)

// saleLineColumns segue a ordem de scanSaleLine
var saleLineColumns = []string{
	"v.id_venta",
	"v.fecha",
	"v.id_cliente",
	"c.nombre_cliente",
	"v.medio_pago",
	"c.ciudad",
	"d.id_producto",
	"d.nombre_producto",
	"d.cantidad",
	"d.precio_unitario",
	"d.importe",
	"p.categoria",
}

type SaleLineRepository interface {
	LoadSaleLines(ctx context.Context) ([]domain.SaleLineRecord, error)
}

type saleLineRepository struct {
	conn postgres.Queryer
}

func NewSaleLineRepository(conn postgres.Queryer) SaleLineRepository {
	return &saleLineRepository{
		conn: conn,
	}
}

// SaleLinesQuery monta o join das quatro tabelas que dá origem ao dataset
func SaleLinesQuery() (string, []interface{}, error) {
	return squirrel.
		Select(saleLineColumns...).
		From(salesTable).
		Join("clientes c ON c.id_cliente = v.id_cliente").
		Join("detalles_ventas d ON d.id_venta = v.id_venta").
		Join("productos p ON p.id_producto = d.id_producto").
		OrderBy("v.id_venta ASC", "d.id_producto ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *saleLineRepository) LoadSaleLines(ctx context.Context) ([]domain.SaleLineRecord, error) {
	query, args, err := SaleLinesQuery()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapQueryError("erro ao executar a query", err)
	}
	defer rows.Close()

	records := make([]domain.SaleLineRecord, 0)
	for rows.Next() {
		record, err := scanSaleLine(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear linha de venda: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return records, nil
}

func scanSaleLine(rows *sql.Rows) (domain.SaleLineRecord, error) {
	var (
		record        domain.SaleLineRecord
		customerName  sql.NullString
		paymentMethod sql.NullString
		city          sql.NullString
		productName   sql.NullString
		category      sql.NullString
	)

	err := rows.Scan(
		&record.SaleID,
		&record.Date,
		&record.CustomerID,
		&customerName,
		&paymentMethod,
		&city,
		&record.ProductID,
		&productName,
		&record.Quantity,
		&record.UnitPrice,
		&record.Amount,
		&category,
	)
	if err != nil {
		return record, err
	}

	record.CustomerName = customerName.String
	record.PaymentMethod = paymentMethod.String
	record.City = city.String
	record.ProductName = productName.String
	record.Category = category.String

	return record, nil
}
