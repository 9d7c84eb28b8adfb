// Package aggregating contém o motor de agregação de vendas: funções puras que
// recebem as linhas de venda e produzem as visões consumidas pelo dashboard.
//
// Todas as visões de uma mesma requisição devem ser calculadas a partir do mesmo
// slice já filtrado (ver BuildCharts); nenhuma função aqui altera os registros.
package aggregating

import (
	"sort"
	"strconv"
	"time"

	"github.com/vfg2006/aurelion-dashboard-api/internal/domain"
)

const (
	DefaultTopCustomers    = 10
	DefaultParetoThreshold = 0.8
)

// Options ajusta os parâmetros das visões
type Options struct {
	TopCustomers    int
	ParetoThreshold float64
}

// DefaultOptions retorna os parâmetros usados pelo dashboard original
func DefaultOptions() Options {
	return Options{
		TopCustomers:    DefaultTopCustomers,
		ParetoThreshold: DefaultParetoThreshold,
	}
}

var weekdayOrder = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

var weekdayLabels = map[time.Weekday]string{
	time.Monday:    "Lunes",
	time.Tuesday:   "Martes",
	time.Wednesday: "Miércoles",
	time.Thursday:  "Jueves",
	time.Friday:    "Viernes",
	time.Saturday:  "Sábado",
	time.Sunday:    "Domingo",
}

// BuildCharts filtra os registros uma única vez e calcula todas as visões de
// gráfico a partir do mesmo conjunto filtrado
func BuildCharts(records []domain.SaleLineRecord, filter domain.FilterSpec, opts Options) domain.DashboardCharts {
	filtered := Filter(records, filter)

	return domain.DashboardCharts{
		Filter:         filter,
		Pareto:         ParetoByProduct(filtered, opts.ParetoThreshold),
		Cities:         RevenueByCity(filtered),
		PaymentMethods: RevenueByPaymentMethod(filtered),
		Weekdays:       RevenueByWeekday(filtered),
		TicketByCity:   TicketByCity(filtered),
		TopCustomers:   TopCustomers(filtered, opts.TopCustomers),
		MonthlyRevenue: RevenueByMonth(filtered),
	}
}

// Filter retorna um novo slice apenas com os registros aceitos pelo filtro
func Filter(records []domain.SaleLineRecord, filter domain.FilterSpec) []domain.SaleLineRecord {
	filtered := make([]domain.SaleLineRecord, 0, len(records))
	for _, record := range records {
		if filter.Matches(record) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// TotalRevenue soma o valor de todas as linhas
func TotalRevenue(records []domain.SaleLineRecord) float64 {
	total := 0.0
	for _, record := range records {
		total += record.Amount
	}
	return total
}

// DistinctSales conta as vendas distintas
func DistinctSales(records []domain.SaleLineRecord) int {
	seen := make(map[int64]struct{})
	for _, record := range records {
		seen[record.SaleID] = struct{}{}
	}
	return len(seen)
}

// DistinctCustomers conta os clientes que aparecem nas linhas
func DistinctCustomers(records []domain.SaleLineRecord) int {
	seen := make(map[int64]struct{})
	for _, record := range records {
		seen[record.CustomerID] = struct{}{}
	}
	return len(seen)
}

// DistinctProducts conta os produtos que aparecem nas linhas
func DistinctProducts(records []domain.SaleLineRecord) int {
	seen := make(map[int64]struct{})
	for _, record := range records {
		seen[record.ProductID] = struct{}{}
	}
	return len(seen)
}

// ParetoByProduct ordena os produtos por receita e acumula a soma. Um produto
// está no corte quando a participação acumulada antes dele ainda não atingiu o
// limiar.
func ParetoByProduct(records []domain.SaleLineRecord, threshold float64) domain.ParetoView {
	products := sumBy(records, func(r domain.SaleLineRecord) (string, string) {
		return r.ProductName, r.ProductName
	})
	sortByValueDesc(products)

	entries := make([]domain.ParetoEntry, 0, len(products))
	cumulative := 0.0
	for _, product := range products {
		cumulative += product.Value
		entries = append(entries, domain.ParetoEntry{
			Product:    product.Label,
			Revenue:    product.Value,
			Cumulative: cumulative,
		})
	}

	// O total é a própria soma acumulada para que o último ponto coincida com ele
	total := cumulative
	limit := total * threshold

	previous := 0.0
	for i := range entries {
		if total > 0 {
			entries[i].CumulativePct = entries[i].Cumulative / total * 100
		}
		entries[i].InCut = total > 0 && previous < limit
		previous = entries[i].Cumulative
	}

	return domain.ParetoView{
		Entries:   entries,
		Total:     total,
		Threshold: limit,
	}
}

// RevenueByCity retorna a receita por cidade em ordem decrescente
func RevenueByCity(records []domain.SaleLineRecord) []domain.Entry {
	cities := sumBy(records, func(r domain.SaleLineRecord) (string, string) {
		return r.City, r.City
	})
	sortByValueDesc(cities)
	return cities
}

// RevenueByPaymentMethod retorna a receita por meio de pagamento em ordem decrescente
func RevenueByPaymentMethod(records []domain.SaleLineRecord) []domain.Entry {
	methods := sumBy(records, func(r domain.SaleLineRecord) (string, string) {
		return r.PaymentMethod, r.PaymentMethod
	})
	sortByValueDesc(methods)
	return methods
}

// RevenueByWeekday sempre retorna os 7 dias, de segunda a domingo
func RevenueByWeekday(records []domain.SaleLineRecord) []domain.WeekdayEntry {
	sums := make(map[time.Weekday]float64)
	present := make(map[time.Weekday]bool)
	for _, record := range records {
		day := record.Date.Weekday()
		sums[day] += record.Amount
		present[day] = true
	}

	entries := make([]domain.WeekdayEntry, 0, len(weekdayOrder))
	for _, day := range weekdayOrder {
		entries = append(entries, domain.WeekdayEntry{
			Weekday: day.String(),
			Label:   weekdayLabels[day],
			Value:   sums[day],
			HasData: present[day],
		})
	}
	return entries
}

type ticket struct {
	city   string
	amount float64
}

// saleTickets soma as linhas de cada venda. Uma venda pertence a um único
// cliente e, portanto, a uma única cidade.
func saleTickets(records []domain.SaleLineRecord) map[int64]*ticket {
	tickets := make(map[int64]*ticket)
	for _, record := range records {
		t, ok := tickets[record.SaleID]
		if !ok {
			t = &ticket{city: record.City}
			tickets[record.SaleID] = t
		}
		t.amount += record.Amount
	}
	return tickets
}

// TicketByCity calcula a média dos tickets (soma por venda) de cada cidade
func TicketByCity(records []domain.SaleLineRecord) []domain.Entry {
	type accumulator struct {
		sum   float64
		count int
	}

	perCity := make(map[string]*accumulator)
	for _, t := range saleTickets(records) {
		acc, ok := perCity[t.city]
		if !ok {
			acc = &accumulator{}
			perCity[t.city] = acc
		}
		acc.sum += t.amount
		acc.count++
	}

	entries := make([]domain.Entry, 0, len(perCity))
	for city, acc := range perCity {
		entries = append(entries, domain.Entry{
			Key:   city,
			Label: city,
			Value: acc.sum / float64(acc.count),
		})
	}
	sortByValueDesc(entries)
	return entries
}

// AverageTicket é a média das somas por venda; sem vendas retorna 0
func AverageTicket(records []domain.SaleLineRecord) float64 {
	tickets := saleTickets(records)
	if len(tickets) == 0 {
		return 0
	}

	sum := 0.0
	for _, t := range tickets {
		sum += t.amount
	}
	return sum / float64(len(tickets))
}

// TopCustomers retorna os n clientes de maior receita em ordem crescente,
// pronta para um gráfico de barras horizontal
func TopCustomers(records []domain.SaleLineRecord, n int) []domain.Entry {
	if n <= 0 {
		return []domain.Entry{}
	}

	customers := sumBy(records, func(r domain.SaleLineRecord) (string, string) {
		return strconv.FormatInt(r.CustomerID, 10), r.CustomerName
	})
	sortByValueDesc(customers)

	if len(customers) > n {
		customers = customers[:n]
	}

	for i, j := 0, len(customers)-1; i < j; i, j = i+1, j-1 {
		customers[i], customers[j] = customers[j], customers[i]
	}
	return customers
}

// RevenueByMonth agrupa a receita por mês (AAAA-MM) em ordem cronológica
func RevenueByMonth(records []domain.SaleLineRecord) []domain.Entry {
	months := sumBy(records, func(r domain.SaleLineRecord) (string, string) {
		key := r.Date.Format("2006-01")
		return key, key
	})
	sort.Slice(months, func(i, j int) bool {
		return months[i].Key < months[j].Key
	})
	return months
}

// CityOptions lista as cidades distintas em ordem alfabética
func CityOptions(records []domain.SaleLineRecord) []string {
	return distinctSorted(records, func(r domain.SaleLineRecord) string { return r.City })
}

// CategoryOptions lista as categorias distintas em ordem alfabética
func CategoryOptions(records []domain.SaleLineRecord) []string {
	return distinctSorted(records, func(r domain.SaleLineRecord) string { return r.Category })
}

func distinctSorted(records []domain.SaleLineRecord, value func(domain.SaleLineRecord) string) []string {
	seen := make(map[string]struct{})
	options := make([]string, 0)
	for _, record := range records {
		v := value(record)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		options = append(options, v)
	}
	sort.Strings(options)
	return options
}

// sumBy agrupa a soma dos valores pela chave retornada por keyFn
func sumBy(records []domain.SaleLineRecord, keyFn func(domain.SaleLineRecord) (key string, label string)) []domain.Entry {
	index := make(map[string]int)
	entries := make([]domain.Entry, 0)

	for _, record := range records {
		key, label := keyFn(record)
		i, ok := index[key]
		if !ok {
			i = len(entries)
			index[key] = i
			entries = append(entries, domain.Entry{Key: key, Label: label})
		}
		entries[i].Value += record.Amount
	}

	return entries
}

// sortByValueDesc ordena por valor decrescente; empates pela chave
func sortByValueDesc(entries []domain.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value > entries[j].Value
		}
		return entries[i].Key < entries[j].Key
	})
}
