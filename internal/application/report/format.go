package report

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.MustParse("es-MX"))

// Money formato fijo de moneda: "$1,234.50".
func Money(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	if f < 0 {
		return printer.Sprintf("-$%.2f", -f)
	}
	return printer.Sprintf("$%.2f", f)
}

// Units cantidad entera con separador de miles.
func Units(n int) string {
	return printer.Sprintf("%d", n)
}

var months = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}
