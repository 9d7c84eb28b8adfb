package domain

import "time"

// SaleLineRecord representa uma linha de item vendido, já unida com venda,
// cliente e produto
type SaleLineRecord struct {
	SaleID        int64     `json:"sale_id"`
	Date          time.Time `json:"date"`
	CustomerID    int64     `json:"customer_id"`
	CustomerName  string    `json:"customer_name"`
	PaymentMethod string    `json:"payment_method"`
	City          string    `json:"city"`
	ProductID     int64     `json:"product_id"`
	ProductName   string    `json:"product_name"`
	Quantity      int       `json:"quantity"`
	UnitPrice     float64   `json:"unit_price"`
	Amount        float64   `json:"amount"`
	Category      string    `json:"category"`
}

// Dataset é o snapshot imutável carregado do banco. Nunca é alterado depois
// de construído; uma recarga cria um novo Dataset.
type Dataset struct {
	Version  string           `json:"version"`
	LoadedAt time.Time        `json:"loaded_at"`
	Records  []SaleLineRecord `json:"-"`
}

// Size retorna a quantidade de linhas do snapshot
func (d *Dataset) Size() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

// SyncStatus descreve o estado do agendador de recarga do dataset
type SyncStatus struct {
	Enabled         bool       `json:"enabled"`
	CronSchedule    string     `json:"cron_schedule"`
	Running         bool       `json:"running"`
	LastStartedAt   *time.Time `json:"last_started_at,omitempty"`
	LastCompletedAt *time.Time `json:"last_completed_at,omitempty"`
	LastError       string     `json:"last_error,omitempty"`
}

// DatasetStatus junta o snapshot atual com o estado do agendador
type DatasetStatus struct {
	Loaded   bool       `json:"loaded"`
	Version  string     `json:"version,omitempty"`
	LoadedAt *time.Time `json:"loaded_at,omitempty"`
	Rows     int        `json:"rows"`
	Sync     SyncStatus `json:"sync"`
}
