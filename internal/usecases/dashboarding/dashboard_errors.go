package dashboarding

import (
	"errors"
	"fmt"
)

var (
	ErrDatasetNotLoaded = errors.New("dataset ainda não carregado")
	ErrLoadDataset      = errors.New("erro ao carregar o dataset")
	ErrCountPopulation  = errors.New("erro ao contar clientes e produtos")
	ErrInvalidMetric    = errors.New("métrica geográfica inválida")
	ErrGenerateVersion  = errors.New("erro ao gerar versão do dataset")
)

// DashboardError é um erro com o código de API correspondente
type DashboardError struct {
	Err     error
	Code    string
	Details string
}

func (e *DashboardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *DashboardError) Unwrap() error {
	return e.Err
}

func NewDashboardError(err error, code string, details string) *DashboardError {
	return &DashboardError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
