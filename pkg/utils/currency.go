package utils

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const zeroCurrency = "$0"

var printer = message.NewPrinter(language.English)

// FormatCurrency arredonda para unidades inteiras (meio para o par) e agrupa milhares ("$1,234").
// Valores não positivos ou indefinidos viram "$0".
func FormatCurrency(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return zeroCurrency
	}

	units := decimal.NewFromFloat(value).RoundBank(0).IntPart()
	return "$" + FormatThousands(units)
}

func FormatThousands(n int64) string {
	return printer.Sprintf("%d", n)
}
