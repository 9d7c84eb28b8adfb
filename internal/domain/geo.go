package domain

// GeoMetric define qual medida é usada no mapa por cidade
type GeoMetric string

const (
	GeoMetricRevenue   GeoMetric = "revenue"
	GeoMetricSales     GeoMetric = "sales"
	GeoMetricTicket    GeoMetric = "ticket"
	GeoMetricCustomers GeoMetric = "customers"
)

func (m GeoMetric) IsValid() bool {
	switch m {
	case GeoMetricRevenue, GeoMetricSales, GeoMetricTicket, GeoMetricCustomers:
		return true
	}
	return false
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// CityCoordinates contém as coordenadas aproximadas das cidades de Córdoba atendidas
var CityCoordinates = map[string]Coordinates{
	"Cordoba":     {Lat: -31.4201, Lon: -64.1888},
	"Carlos Paz":  {Lat: -31.4248, Lon: -64.4977},
	"Rio Cuarto":  {Lat: -33.1230, Lon: -64.3478},
	"Villa Maria": {Lat: -32.4105, Lon: -63.2436},
	"Alta Gracia": {Lat: -31.6583, Lon: -64.4285},
	"Mendiolaza":  {Lat: -31.2675, Lon: -64.3000},
}

type GeoEntry struct {
	City        string       `json:"city"`
	Value       float64      `json:"value"`
	Sales       int          `json:"sales"`
	Customers   int          `json:"customers"`
	Revenue     float64      `json:"revenue"`
	Share       float64      `json:"share"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

type GeoResponse struct {
	Version string     `json:"version"`
	Metric  GeoMetric  `json:"metric"`
	Entries []GeoEntry `json:"entries"`
}
