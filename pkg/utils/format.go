package utils

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var norwegian = language.MustParse("nb-NO")

// FormatPrice renders v in Norwegian Bokmål with two fraction digits, e.g. "1 234,50 kr".
func FormatPrice(v float64) string {
	rounded, _ := decimal.NewFromFloat(v).Round(2).Float64()
	p := message.NewPrinter(norwegian)
	return p.Sprintf("%v kr", number.Decimal(rounded, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// FormatDate renders t as dd.mm.yyyy.
func FormatDate(t time.Time) string {
	return t.Format("02.01.2006")
}

// FormatDateTime renders t as dd.mm.yyyy hh:mm.
func FormatDateTime(t time.Time) string {
	return t.Format("02.01.2006 15:04")
}
