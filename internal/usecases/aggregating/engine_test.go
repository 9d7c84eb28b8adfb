package aggregating

import (
	"math/rand"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/aurelion-dashboard-api/internal/domain"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 10, 0, 0, 0, time.UTC)
}

// 2024-01-01 é segunda-feira
func sampleRecords() []domain.SaleLineRecord {
	return []domain.SaleLineRecord{
		{SaleID: 1, Date: date(2024, 1, 1), CustomerID: 1, CustomerName: "Ana", City: "Cordoba", PaymentMethod: "efectivo", ProductID: 10, ProductName: "Yerba", Category: "Alimentos", Quantity: 2, UnitPrice: 50, Amount: 100},
		{SaleID: 1, Date: date(2024, 1, 1), CustomerID: 1, CustomerName: "Ana", City: "Cordoba", PaymentMethod: "efectivo", ProductID: 11, ProductName: "Jabon", Category: "Limpieza", Quantity: 1, UnitPrice: 50, Amount: 50},
		{SaleID: 2, Date: date(2024, 1, 3), CustomerID: 2, CustomerName: "Bruno", City: "Carlos Paz", PaymentMethod: "tarjeta", ProductID: 10, ProductName: "Yerba", Category: "Alimentos", Quantity: 1, UnitPrice: 30, Amount: 30},
		{SaleID: 3, Date: date(2024, 2, 5), CustomerID: 1, CustomerName: "Ana", City: "Cordoba", PaymentMethod: "tarjeta", ProductID: 12, ProductName: "Cafe", Category: "Alimentos", Quantity: 1, UnitPrice: 20, Amount: 20},
	}
}

func TestScenario_CityFilter(t *testing.T) {
	records := []domain.SaleLineRecord{
		{SaleID: 1, City: "Cordoba", Amount: 100, Date: date(2024, 1, 1)},
		{SaleID: 2, City: "Carlos Paz", Amount: 50, Date: date(2024, 1, 2)},
	}

	t.Run("filtro all", func(t *testing.T) {
		filtered := Filter(records, domain.AllFilter())

		assert.Equal(t, 150.0, TotalRevenue(filtered))
		assert.Equal(t, []domain.Entry{
			{Key: "Cordoba", Label: "Cordoba", Value: 100},
			{Key: "Carlos Paz", Label: "Carlos Paz", Value: 50},
		}, RevenueByCity(filtered))
	})

	t.Run("filtro por Cordoba", func(t *testing.T) {
		filtered := Filter(records, domain.NewFilterSpec("Cordoba", "all"))

		assert.Equal(t, 100.0, TotalRevenue(filtered))
		assert.Equal(t, []domain.Entry{
			{Key: "Cordoba", Label: "Cordoba", Value: 100},
		}, RevenueByCity(filtered))
	})
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	records := sampleRecords()
	before := append([]domain.SaleLineRecord(nil), records...)

	filtered := Filter(records, domain.NewFilterSpec("", "Limpieza"))

	require.Len(t, filtered, 1)
	assert.Equal(t, "Jabon", filtered[0].ProductName)
	assert.Equal(t, before, records)
}

func TestCounts(t *testing.T) {
	records := sampleRecords()

	assert.Equal(t, 200.0, TotalRevenue(records))
	assert.Equal(t, 3, DistinctSales(records))
	assert.Equal(t, 2, DistinctCustomers(records))
	assert.Equal(t, 3, DistinctProducts(records))

	assert.Equal(t, 0.0, TotalRevenue(nil))
	assert.Equal(t, 0, DistinctSales(nil))
}

func TestParetoByProduct(t *testing.T) {
	view := ParetoByProduct(sampleRecords(), DefaultParetoThreshold)

	require.Len(t, view.Entries, 3)
	assert.Equal(t, 200.0, view.Total)
	assert.Equal(t, 160.0, view.Threshold)

	expected := []struct {
		product    string
		revenue    float64
		cumulative float64
		inCut      bool
	}{
		{"Yerba", 130, 130, true},
		{"Jabon", 50, 180, true},
		{"Cafe", 20, 200, false},
	}
	for i, e := range expected {
		assert.Equal(t, e.product, view.Entries[i].Product)
		assert.Equal(t, e.revenue, view.Entries[i].Revenue)
		assert.Equal(t, e.cumulative, view.Entries[i].Cumulative)
		assert.Equal(t, e.inCut, view.Entries[i].InCut, e.product)
	}

	assert.InDelta(t, 100.0, view.Entries[2].CumulativePct, 1e-9)
	assert.Equal(t, view.Total, view.Entries[len(view.Entries)-1].Cumulative)
}

func TestParetoByProduct_Empty(t *testing.T) {
	view := ParetoByProduct(nil, DefaultParetoThreshold)

	assert.Empty(t, view.Entries)
	assert.Equal(t, 0.0, view.Total)
	assert.Equal(t, 0.0, view.Threshold)
}

func TestRevenueByPaymentMethod(t *testing.T) {
	assert.Equal(t, []domain.Entry{
		{Key: "efectivo", Label: "efectivo", Value: 150},
		{Key: "tarjeta", Label: "tarjeta", Value: 50},
	}, RevenueByPaymentMethod(sampleRecords()))
}

func TestRevenueByWeekday(t *testing.T) {
	entries := RevenueByWeekday(sampleRecords())

	require.Len(t, entries, 7)

	expectedOrder := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	for i, weekday := range expectedOrder {
		assert.Equal(t, weekday, entries[i].Weekday)
	}

	assert.Equal(t, "Lunes", entries[0].Label)
	assert.Equal(t, 170.0, entries[0].Value)
	assert.True(t, entries[0].HasData)

	assert.Equal(t, 30.0, entries[2].Value)
	assert.True(t, entries[2].HasData)

	assert.Equal(t, 0.0, entries[6].Value)
	assert.False(t, entries[6].HasData)
}

func TestRevenueByWeekday_Empty(t *testing.T) {
	entries := RevenueByWeekday(nil)

	require.Len(t, entries, 7)
	for _, entry := range entries {
		assert.False(t, entry.HasData)
		assert.Zero(t, entry.Value)
	}
}

func TestTicketByCity_UsesSaleTotals(t *testing.T) {
	entries := TicketByCity(sampleRecords())

	// Cordoba: vendas 1 (150) e 3 (20) => 85; a média por linha daria 56,67
	assert.Equal(t, []domain.Entry{
		{Key: "Cordoba", Label: "Cordoba", Value: 85},
		{Key: "Carlos Paz", Label: "Carlos Paz", Value: 30},
	}, entries)
}

func TestAverageTicket(t *testing.T) {
	assert.InDelta(t, 200.0/3, AverageTicket(sampleRecords()), 1e-9)
	assert.Equal(t, 0.0, AverageTicket(nil))
}

func TestTopCustomers(t *testing.T) {
	entries := TopCustomers(sampleRecords(), 10)

	assert.Equal(t, []domain.Entry{
		{Key: "2", Label: "Bruno", Value: 30},
		{Key: "1", Label: "Ana", Value: 170},
	}, entries)

	assert.Empty(t, TopCustomers(sampleRecords(), 0))
	assert.Empty(t, TopCustomers(nil, 10))
}

func TestTopCustomers_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	records := make([]domain.SaleLineRecord, 0)
	for i := 0; i < 300; i++ {
		customer := int64(rng.Intn(25) + 1)
		records = append(records, domain.SaleLineRecord{
			SaleID:       int64(i),
			CustomerID:   customer,
			CustomerName: "cliente",
			Amount:       float64(rng.Intn(500) + 1),
			Date:         date(2024, 1, 1),
		})
	}

	top := TopCustomers(records, 10)
	require.LessOrEqual(t, len(top), 10)

	for i := 1; i < len(top); i++ {
		assert.LessOrEqual(t, top[i-1].Value, top[i].Value)
	}

	included := make(map[string]bool)
	for _, entry := range top {
		included[entry.Key] = true
	}

	minIncluded := top[0].Value
	all := sumBy(records, func(r domain.SaleLineRecord) (string, string) {
		return strconv.FormatInt(r.CustomerID, 10), r.CustomerName
	})
	for _, entry := range all {
		if !included[entry.Key] {
			assert.LessOrEqual(t, entry.Value, minIncluded)
		}
	}
}

func TestRevenueByMonth(t *testing.T) {
	assert.Equal(t, []domain.Entry{
		{Key: "2024-01", Label: "2024-01", Value: 180},
		{Key: "2024-02", Label: "2024-02", Value: 20},
	}, RevenueByMonth(sampleRecords()))
}

func TestOptions(t *testing.T) {
	records := sampleRecords()

	assert.Equal(t, []string{"Carlos Paz", "Cordoba"}, CityOptions(records))
	assert.Equal(t, []string{"Alimentos", "Limpieza"}, CategoryOptions(records))
	assert.Empty(t, CityOptions(nil))
}

func TestBuildCharts(t *testing.T) {
	records := sampleRecords()

	t.Run("todas as visões usam o mesmo conjunto filtrado", func(t *testing.T) {
		filter := domain.NewFilterSpec("Cordoba", "Alimentos")
		charts := BuildCharts(records, filter, DefaultOptions())
		filtered := Filter(records, filter)

		assert.Equal(t, filter, charts.Filter)
		assert.Equal(t, TotalRevenue(filtered), charts.Pareto.Total)
		assert.Equal(t, []domain.Entry{{Key: "Cordoba", Label: "Cordoba", Value: 120}}, charts.Cities)
		assert.Equal(t, []domain.Entry{{Key: "Cordoba", Label: "Cordoba", Value: 60}}, charts.TicketByCity)
		require.Len(t, charts.TopCustomers, 1)
		assert.Equal(t, "Ana", charts.TopCustomers[0].Label)
	})

	t.Run("conjunto vazio", func(t *testing.T) {
		charts := BuildCharts(records, domain.NewFilterSpec("Rio Cuarto", ""), DefaultOptions())

		assert.Empty(t, charts.Pareto.Entries)
		assert.Equal(t, 0.0, charts.Pareto.Total)
		assert.Empty(t, charts.Cities)
		assert.Empty(t, charts.PaymentMethods)
		assert.Empty(t, charts.TicketByCity)
		assert.Empty(t, charts.TopCustomers)
		assert.Len(t, charts.Weekdays, 7)
	})

	t.Run("idempotente", func(t *testing.T) {
		filter := domain.NewFilterSpec("", "Alimentos")
		first := BuildCharts(records, filter, DefaultOptions())
		second := BuildCharts(records, filter, DefaultOptions())

		assert.Equal(t, first, second)
	})
}

func TestTotalRevenue_MatchesFilteredSum(t *testing.T) {
	records := sampleRecords()
	filters := []domain.FilterSpec{
		domain.AllFilter(),
		domain.NewFilterSpec("Cordoba", ""),
		domain.NewFilterSpec("Carlos Paz", ""),
		domain.NewFilterSpec("", "Alimentos"),
		domain.NewFilterSpec("Cordoba", "Limpieza"),
	}

	for _, filter := range filters {
		expected := 0.0
		for _, record := range records {
			if filter.Matches(record) {
				expected += record.Amount
			}
		}

		filtered := Filter(records, filter)
		assert.Equal(t, expected, TotalRevenue(filtered), filter)

		pareto := ParetoByProduct(filtered, DefaultParetoThreshold)
		assert.Equal(t, expected, pareto.Total, filter)
		assert.Equal(t, expected*DefaultParetoThreshold, pareto.Threshold, filter)
	}
}
