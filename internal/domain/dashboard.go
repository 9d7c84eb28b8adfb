package domain

// Entry é um par categoria -> valor consumido pelos gráficos
type Entry struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ParetoEntry é um produto no ranking de receita com a soma acumulada
type ParetoEntry struct {
	Product       string  `json:"product"`
	Revenue       float64 `json:"revenue"`
	Cumulative    float64 `json:"cumulative"`
	CumulativePct float64 `json:"cumulative_pct"`
	InCut         bool    `json:"in_cut"`
}

type ParetoView struct {
	Entries   []ParetoEntry `json:"entries"`
	Total     float64       `json:"total"`
	Threshold float64       `json:"threshold"`
}

// WeekdayEntry é a receita de um dia da semana. HasData é falso quando o dia
// não tem nenhuma venda no conjunto filtrado.
type WeekdayEntry struct {
	Weekday string  `json:"weekday"`
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	HasData bool    `json:"has_data"`
}

type DashboardCharts struct {
	Version        string         `json:"version"`
	Filter         FilterSpec     `json:"filter"`
	Pareto         ParetoView     `json:"pareto"`
	Cities         []Entry        `json:"cities"`
	PaymentMethods []Entry        `json:"payment_methods"`
	Weekdays       []WeekdayEntry `json:"weekdays"`
	TicketByCity   []Entry        `json:"ticket_by_city"`
	TopCustomers   []Entry        `json:"top_customers"`
	MonthlyRevenue []Entry        `json:"monthly_revenue"`
}

// KPI é um indicador já formatado para exibição
type KPI struct {
	Display string   `json:"display"`
	Value   float64  `json:"value"`
	Total   *float64 `json:"total,omitempty"`
}

type DashboardKPIs struct {
	Version       string     `json:"version"`
	Filter        FilterSpec `json:"filter"`
	CountStrategy string     `json:"count_strategy"`
	Revenue       KPI        `json:"revenue"`
	Sales         KPI        `json:"sales"`
	Customers     KPI        `json:"customers"`
	Products      KPI        `json:"products"`
	AverageTicket KPI        `json:"average_ticket"`
}

type FilterOptions struct {
	Cities     []string `json:"cities"`
	Categories []string `json:"categories"`
}
