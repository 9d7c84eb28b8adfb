package aggregating

import (
	"sort"

	"github.com/vfg2006/aurelion-dashboard-api/internal/domain"
)

type cityStats struct {
	revenue   float64
	sales     map[int64]float64
	customers map[int64]struct{}
}

// GeoByCity calcula, para cada cidade, o valor da métrica escolhida e a
// participação percentual de cada cidade no total dessa métrica
func GeoByCity(records []domain.SaleLineRecord, metric domain.GeoMetric) []domain.GeoEntry {
	stats := make(map[string]*cityStats)
	for _, record := range records {
		s, ok := stats[record.City]
		if !ok {
			s = &cityStats{
				sales:     make(map[int64]float64),
				customers: make(map[int64]struct{}),
			}
			stats[record.City] = s
		}
		s.revenue += record.Amount
		s.sales[record.SaleID] += record.Amount
		s.customers[record.CustomerID] = struct{}{}
	}

	entries := make([]domain.GeoEntry, 0, len(stats))
	sum := 0.0
	for city, s := range stats {
		entry := domain.GeoEntry{
			City:      city,
			Sales:     len(s.sales),
			Customers: len(s.customers),
			Revenue:   s.revenue,
			Value:     metricValue(s, metric),
		}
		if coords, ok := domain.CityCoordinates[city]; ok {
			c := coords
			entry.Coordinates = &c
		}
		sum += entry.Value
		entries = append(entries, entry)
	}

	if sum > 0 {
		for i := range entries {
			entries[i].Share = entries[i].Value / sum * 100
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value > entries[j].Value
		}
		return entries[i].City < entries[j].City
	})

	return entries
}

func metricValue(s *cityStats, metric domain.GeoMetric) float64 {
	switch metric {
	case domain.GeoMetricSales:
		return float64(len(s.sales))
	case domain.GeoMetricTicket:
		if len(s.sales) == 0 {
			return 0
		}
		total := 0.0
		for _, amount := range s.sales {
			total += amount
		}
		return total / float64(len(s.sales))
	case domain.GeoMetricCustomers:
		return float64(len(s.customers))
	default:
		return s.revenue
	}
}
