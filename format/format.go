/*
Package format provides macros.Formatters for each kind of macro value and a
way of attaching them to substitution entries using a catalog.

Numbers are formatted for the locale given to the formatter, with digit
grouping and at most two fraction digits. An empty locale means DfltLocale.
*/
package format

import (
	"fmt"
	"strings"

	"github.com/nickwells/offermacros.mod/macros"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DfltLocale is the locale used when none is given
// DfltCurrency is the currency used when a currency macro has no currency
// field with a value
const (
	DfltLocale   = "en-US"
	DfltCurrency = "USD"
)

// maxFracDigits is the largest number of fraction digits shown
const maxFracDigits = 2

// printer returns a message printer for the locale
func printer(locale string) (*message.Printer, error) {
	if locale == "" {
		locale = DfltLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("bad locale %q: %w", locale, err)
	}
	return message.NewPrinter(tag), nil
}

// decimal returns the number formatted for the printer
func decimal(p *message.Printer, f float64) string {
	return p.Sprint(number.Decimal(f,
		number.MinFractionDigits(0),
		number.MaxFractionDigits(maxFracDigits)))
}

// Decimal formats the value as a number. It returns an error if the value
// is not a number.
func Decimal(v macros.Value, locale string) (string, error) {
	f, err := v.Float()
	if err != nil {
		return "", err
	}
	p, err := printer(locale)
	if err != nil {
		return "", err
	}
	return decimal(p, f), nil
}

// Percentage formats the value as a number followed by a percent sign. The
// value is the percentage itself, so 10 gives "10%".
func Percentage(v macros.Value, locale string) (string, error) {
	s, err := Decimal(v, locale)
	if err != nil {
		return "", err
	}
	return s + "%", nil
}

// Text returns the value as it is
func Text(v macros.Value, _ string) (string, error) {
	return v.String(), nil
}

// Currency returns a Formatter which formats the value as an amount of the
// given currency: the currency symbol for the locale followed by the
// number. The code must be an ISO 4217 currency code; if it is not
// recognised the Formatter returns an error.
func Currency(code string) macros.Formatter {
	return func(v macros.Value, locale string) (string, error) {
		unit, err := currency.ParseISO(strings.TrimSpace(code))
		if err != nil {
			return "", fmt.Errorf("bad currency %q: %w", code, err)
		}
		f, err := v.Float()
		if err != nil {
			return "", err
		}
		p, err := printer(locale)
		if err != nil {
			return "", err
		}
		return p.Sprint(currency.Symbol(unit)) + decimal(p, f), nil
	}
}

// ForKind returns the Formatter for the kind of value. The currency code is
// only used for currency values.
func ForKind(kind macros.ValueKind, currencyCode string) macros.Formatter {
	switch kind {
	case macros.KindCurrency:
		return Currency(currencyCode)
	case macros.KindPercentage:
		return Percentage
	case macros.KindNumber:
		return Decimal
	}
	return Text
}

// CurrencyCode returns the currency code for the macro. This is the value
// of the first of its currency fields which has a value in the lookup. If
// none has, DfltCurrency is returned.
func CurrencyCode(d macros.Definition, lk macros.Lookup) string {
	for _, key := range d.CurrencyRef {
		e, ok := lk[key]
		if !ok || e.Unavailable {
			continue
		}
		if code := e.Value.String(); code != "" {
			return code
		}
	}
	return DfltCurrency
}

// Apply returns a copy of the entries in which each available entry that
// has no Formatter and whose key is in the catalog is given the Formatter
// for the kind of the catalog definition. Currency codes are taken from
// the other entries.
func Apply(cat macros.Catalog, entries []macros.Entry) []macros.Entry {
	lk := macros.NewLookup(entries...)

	out := make([]macros.Entry, len(entries))
	copy(out, entries)
	for i, e := range out {
		if e.Unavailable || e.Formatter != nil {
			continue
		}
		d, ok := cat.Find(e.Key)
		if !ok {
			continue
		}
		out[i].Formatter = ForKind(d.Kind, CurrencyCode(d, lk))
	}
	return out
}
