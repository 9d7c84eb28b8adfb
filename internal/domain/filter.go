package domain

import "strings"

// FilterAll é o valor sentinela que significa "sem restrição" para a dimensão
const FilterAll = "all"

// FilterSpec define os filtros opcionais de cidade e categoria
type FilterSpec struct {
	City     string `json:"city"`
	Category string `json:"category"`
}

// NewFilterSpec normaliza os valores recebidos: vazio vira FilterAll
func NewFilterSpec(city, category string) FilterSpec {
	return FilterSpec{
		City:     normalizeFilterValue(city),
		Category: normalizeFilterValue(category),
	}
}

// AllFilter retorna um filtro sem restrições
func AllFilter() FilterSpec {
	return FilterSpec{City: FilterAll, Category: FilterAll}
}

func normalizeFilterValue(value string) string {
	value = strings.TrimSpace(value)
	if value == "" || value == FilterAll {
		return FilterAll
	}
	return value
}

// HasCity indica se o filtro restringe a cidade
func (f FilterSpec) HasCity() bool {
	return f.City != "" && f.City != FilterAll
}

// HasCategory indica se o filtro restringe a categoria
func (f FilterSpec) HasCategory() bool {
	return f.Category != "" && f.Category != FilterAll
}

// Matches verifica se o registro passa pelos dois filtros
func (f FilterSpec) Matches(record SaleLineRecord) bool {
	if f.HasCity() && record.City != f.City {
		return false
	}
	if f.HasCategory() && record.Category != f.Category {
		return false
	}
	return true
}
