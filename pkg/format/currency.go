// Package format holds the pure presentation helpers used by the CLI and by
// anything rendering domain records: money, numbers, dates, relative times,
// slugs, initials, ages and status colors.
package format

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Defaults used across the dashboard.
const (
	DefaultCurrency = "EUR"
	DefaultLocale   = "nl-NL"
)

// Currency renders amount in the given ISO 4217 currency with the digit
// grouping, decimal separator and symbol placement of locale, e.g.
// Currency(1000, "EUR", "nl-NL") == "€ 1.000,00" and
// Currency(1000, "USD", "en-US") == "$1,000.00". The amount is never
// converted to a float. Unknown currency codes are rendered with the code
// itself as symbol.
func Currency(amount decimal.Decimal, code, locale string) string {
	if code == "" {
		code = DefaultCurrency
	}
	tag := parseLocale(locale)

	symbol := strings.ToUpper(code)
	scale := 2
	if unit, err := currency.ParseISO(code); err == nil {
		symbol = fmt.Sprint(currency.NarrowSymbol(unit))
		scale, _ = currency.Standard.Rounding(unit)
	}

	fixed := amount.StringFixed(int32(scale))
	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	group, point := separators(tag)
	digits := groupThousands(intPart, group)
	if fracPart != "" {
		digits += point + fracPart
	}
	sign := ""
	if negative && strings.Trim(fixed, "0.") != "" {
		sign = "-"
	}

	switch placementOf(tag) {
	case symbolAfter:
		return sign + digits + " " + symbol
	case symbolBeforeSpaced:
		return symbol + " " + sign + digits
	default:
		if last, _ := utf8.DecodeLastRuneInString(symbol); unicode.IsLetter(last) {
			return sign + symbol + " " + digits
		}
		return sign + symbol + digits
	}
}

type placement int

const (
	symbolBefore placement = iota
	symbolBeforeSpaced
	symbolAfter
)

// symbolPlacement lists the languages whose currency pattern differs from
// the English "$1,000.00".
var symbolPlacement = map[string]placement{ //nolint:gochecknoglobals // static locale table
	"nl": symbolBeforeSpaced,
	"de": symbolAfter,
	"fr": symbolAfter,
	"es": symbolAfter,
	"it": symbolAfter,
	"pt": symbolAfter,
	"fi": symbolAfter,
	"sv": symbolAfter,
	"da": symbolAfter,
	"nb": symbolAfter,
	"pl": symbolAfter,
	"cs": symbolAfter,
	"ru": symbolAfter,
}

func placementOf(tag language.Tag) placement {
	base, _ := tag.Base()
	return symbolPlacement[base.String()]
}

// separators reads the grouping and decimal separators of tag from the
// x/text number formatter.
func separators(tag language.Tag) (group, point string) {
	sample := message.NewPrinter(tag).Sprint(number.Decimal(12345.6, number.Scale(1)))
	var parts []string
	var cur strings.Builder
	for _, r := range sample {
		if unicode.IsDigit(r) {
			if cur.Len() > 0 {
				parts = append(parts, cur.String())
				cur.Reset()
			}
			continue
		}
		cur.WriteRune(r)
	}
	switch len(parts) {
	case 0:
		return ",", "."
	case 1:
		return "", parts[0]
	default:
		return parts[0], parts[len(parts)-1]
	}
}

// groupThousands inserts sep between every three digits of an unsigned
// integer string.
func groupThousands(digits, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// Number renders v with the grouping and decimal separators of locale.
func Number(v float64, locale string) string {
	return message.NewPrinter(parseLocale(locale)).Sprint(number.Decimal(v))
}

// parseLocale accepts BCP 47 tags ("nl-NL", "en_US"); anything unparsable
// falls back to the dashboard default.
func parseLocale(locale string) language.Tag {
	locale = strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.MustParse(DefaultLocale)
	}
	return tag
}
