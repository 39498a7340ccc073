// Package money formatea montos para documentos de cara al usuario
// (recibos, reportes). El cálculo siempre se hace con decimal.Decimal;
// aquí solo se presenta.
package money

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/shopspring/decimal"
)

// Formatter presenta montos en una moneda fija.
type Formatter struct {
	unit    currency.Unit
	printer *message.Printer
}

// NewFormatter construye un formateador para el código ISO 4217 dado
// (COP, USD, ...). Un código desconocido cae a COP.
func NewFormatter(code string) *Formatter {
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.MustParseISO("COP")
	}
	return &Formatter{
		unit:    unit,
		printer: message.NewPrinter(language.Spanish),
	}
}

// Format devuelve el monto con símbolo y separador de miles, ej. "COP 4.025.000".
func (f *Formatter) Format(amount decimal.Decimal) string {
	v, _ := amount.Float64()
	return f.printer.Sprintf("%v", currency.Symbol(f.unit.Amount(v)))
}
