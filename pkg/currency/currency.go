package currency

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders monetary amounts for a configured locale with a fixed
// number of fraction digits.
type Formatter struct {
	tag           language.Tag
	unit          currency.Unit
	printer       *message.Printer
	decimalPlaces int
}

// NewFormatter builds a Formatter for the given BCP-47 locale, e.g. "en-US"
// or "ko-KR". The currency unit is derived from the locale's region.
func NewFormatter(locale string, decimalPlaces int) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid currency locale %q: %w", locale, err)
	}
	unit, confidence := currency.FromTag(tag)
	if confidence == language.No {
		unit = currency.USD
	}
	if decimalPlaces < 0 {
		decimalPlaces = 0
	}

	return &Formatter{
		tag:           tag,
		unit:          unit,
		printer:       message.NewPrinter(tag),
		decimalPlaces: decimalPlaces,
	}, nil
}

// Format returns the amount as a localized currency string, e.g. "$1,234.50".
func (f *Formatter) Format(amount float64) string {
	symbol := f.printer.Sprintf("%v", currency.Symbol(f.unit))
	value := f.printer.Sprintf("%v", number.Decimal(amount,
		number.MinFractionDigits(f.decimalPlaces),
		number.MaxFractionDigits(f.decimalPlaces),
	))
	return symbol + value
}

// Unit reports the ISO 4217 code the formatter renders in.
func (f *Formatter) Unit() string {
	return f.unit.String()
}
