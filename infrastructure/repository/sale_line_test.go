package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/aurelion-dashboard-api/internal/domain"
)

// fakeSalesDB é um driver database/sql em memória que responde a qualquer
// query com as linhas configuradas
type fakeSalesDB struct {
	rows     [][]driver.Value
	queryErr error
	rowsErr  error

	lastQuery string
}

func (f *fakeSalesDB) Connect(context.Context) (driver.Conn, error) { return &fakeSalesConn{db: f}, nil }
func (f *fakeSalesDB) Driver() driver.Driver { return fakeSalesDriver{} }

type fakeSalesDriver struct{}

func (fakeSalesDriver) Open(string) (driver.Conn, error) {
	return nil, errors.New("use o connector")
}

type fakeSalesConn struct {
	db *fakeSalesDB
}

func (c *fakeSalesConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepare não suportado")
}
func (c *fakeSalesConn) Close() error { return nil }
func (c *fakeSalesConn) Begin() (driver.Tx, error) { return nil, errors.New("transação não suportada") }

func (c *fakeSalesConn) QueryContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Rows, error) {
	c.db.lastQuery = query
	if c.db.queryErr != nil {
		return nil, c.db.queryErr
	}
	return &fakeSalesRows{rows: c.db.rows, err: c.db.rowsErr}, nil
}

type fakeSalesRows struct {
	rows [][]driver.Value
	pos  int
	err  error
}

func (r *fakeSalesRows) Columns() []string { return saleLineColumns }
func (r *fakeSalesRows) Close() error { return nil }

func (r *fakeSalesRows) Next(dest []driver.Value) error {
	if r.pos >= len(r.rows) {
		if r.err != nil {
			return r.err
		}
		return io.EOF
	}
	copy(dest, r.rows[r.pos])
	r.pos++
	return nil
}

func openFakeSalesDB(t *testing.T, fake *fakeSalesDB) *sql.DB {
	t.Helper()

	db := sql.OpenDB(fake)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

var saleDate = time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)

func saleRow(productName, category driver.Value) []driver.Value {
	return []driver.Value{
		int64(1), saleDate, int64(7), "Ana Pérez", "tarjeta", "Cordoba",
		int64(3), productName, int64(2), 150.5, 301.0, category,
	}
}

func TestSaleLineRepository_LoadSaleLines(t *testing.T) {
	t.Run("carrega linhas e converte NULL em texto vazio", func(t *testing.T) {
		fake := &fakeSalesDB{rows: [][]driver.Value{
			saleRow("Yerba Mate", "Alimentos"),
			{int64(2), saleDate, int64(8), nil, nil, nil, int64(4), nil, int64(1), 10.0, 10.0, nil},
		}}
		repo := NewSaleLineRepository(openFakeSalesDB(t, fake))

		records, err := repo.LoadSaleLines(context.Background())

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, domain.SaleLineRecord{
			SaleID:        1,
			Date:          saleDate,
			CustomerID:    7,
			CustomerName:  "Ana Pérez",
			PaymentMethod: "tarjeta",
			City:          "Cordoba",
			ProductID:     3,
			ProductName:   "Yerba Mate",
			Quantity:      2,
			UnitPrice:     150.5,
			Amount:        301,
			Category:      "Alimentos",
		}, records[0])
		assert.Equal(t, int64(2), records[1].SaleID)
		assert.Empty(t, records[1].ProductName)
		assert.Empty(t, records[1].CustomerName)
		assert.Empty(t, records[1].City)
		assert.Empty(t, records[1].Category)

		expectedQuery, _, err := SaleLinesQuery()
		require.NoError(t, err)
		assert.Equal(t, expectedQuery, fake.lastQuery)
	})

	t.Run("sem linhas devolve lista vazia", func(t *testing.T) {
		repo := NewSaleLineRepository(openFakeSalesDB(t, &fakeSalesDB{}))

		records, err := repo.LoadSaleLines(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})

	t.Run("erro do postgres traz o código", func(t *testing.T) {
		pqErr := &pq.Error{Code: "42P01", Message: "relation \"ventas\" does not exist"}
		repo := NewSaleLineRepository(openFakeSalesDB(t, &fakeSalesDB{queryErr: pqErr}))

		records, err := repo.LoadSaleLines(context.Background())

		assert.Nil(t, records)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "código 42P01")
		var target *pq.Error
		assert.ErrorAs(t, err, &target)
	})

	t.Run("tipo inválido na coluna falha o scan", func(t *testing.T) {
		row := saleRow("Yerba Mate", "Alimentos")
		row[1] = "ontem"
		repo := NewSaleLineRepository(openFakeSalesDB(t, &fakeSalesDB{rows: [][]driver.Value{row}}))

		records, err := repo.LoadSaleLines(context.Background())

		assert.Nil(t, records)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "erro ao escanear linha de venda")
	})

	t.Run("erro durante a iteração", func(t *testing.T) {
		connErr := errors.New("conexão perdida")
		fake := &fakeSalesDB{rows: [][]driver.Value{saleRow("Yerba Mate", "Alimentos")}, rowsErr: connErr}
		repo := NewSaleLineRepository(openFakeSalesDB(t, fake))

		records, err := repo.LoadSaleLines(context.Background())

		assert.Nil(t, records)
		assert.ErrorIs(t, err, connErr)
		assert.Contains(t, err.Error(), "erro durante iteração")
	})
}
