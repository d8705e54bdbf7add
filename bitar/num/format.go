package num

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/LerianStudio/lib-bitar/bitar/config"
	"github.com/LerianStudio/lib-bitar/bitar/internal/cldr"
)

// Fraction digit defaults for plain and compact formatting.
const (
	defaultIntlMaxFractionDigits    = 3
	defaultCompactMaxFractionDigits = 1
)

const nbsp = "\u00a0"

// Formatter renders numbers using the defaults of a configuration snapshot. The zero
// value formats with config.Default().
type Formatter struct {
	cfg   config.Config
	ready bool
}

// NewFormatter binds a Formatter to cfg.
func NewFormatter(cfg config.Config) Formatter {
	return Formatter{cfg: cfg, ready: true}
}

// Config returns the snapshot the formatter reads its defaults from.
func (f Formatter) Config() config.Config {
	if !f.ready {
		return config.Default()
	}

	return f.cfg
}

type formatOptions struct {
	locale    string
	system    bool
	currency  string
	minDigits *int
	maxDigits *int
	spaced    *bool
	zero      bool
}

// FormatOption adjusts a single formatting call.
type FormatOption func(*formatOptions)

// WithLocale formats for the given BCP 47 tag instead of the configured locale.
func WithLocale(locale string) FormatOption {
	return func(o *formatOptions) {
		o.locale = locale
	}
}

// WithSystemLocale ignores the configured locale and uses the system one.
func WithSystemLocale() FormatOption {
	return func(o *formatOptions) {
		o.system = true
	}
}

// WithCurrency sets the ISO 4217 currency code used by Currency.
func WithCurrency(code string) FormatOption {
	return func(o *formatOptions) {
		o.currency = code
	}
}

// WithFractionDigits bounds the number of fraction digits.
func WithFractionDigits(minDigits, maxDigits int) FormatOption {
	return func(o *formatOptions) {
		o.minDigits = &minDigits
		o.maxDigits = &maxDigits
	}
}

// WithSpaced controls whether whitespace is kept in the output. When false, every
// whitespace rune is removed ("30,00 €" becomes "30,00€"). For Signed it separates
// the sign from the digits instead.
func WithSpaced(spaced bool) FormatOption {
	return func(o *formatOptions) {
		o.spaced = &spaced
	}
}

// WithZeroSign makes Signed print "+0" for zero.
func WithZeroSign(zero bool) FormatOption {
	return func(o *formatOptions) {
		o.zero = zero
	}
}

func newFormatOptions(opts []FormatOption) formatOptions {
	var o formatOptions

	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func (o formatOptions) digits(minDigits, maxDigits int) (int, int) {
	if o.minDigits != nil {
		minDigits = *o.minDigits
	}

	if o.maxDigits != nil {
		maxDigits = *o.maxDigits
	}

	minDigits = max(minDigits, 0)
	maxDigits = max(maxDigits, minDigits)

	return minDigits, maxDigits
}

func (o formatOptions) spacedOr(fallback bool) bool {
	if o.spaced != nil {
		return *o.spaced
	}

	return fallback
}

func (f Formatter) printer(o formatOptions) (*message.Printer, language.Tag) {
	tag := f.Config().ResolveLocale(o.locale, o.system)

	return message.NewPrinter(tag), tag
}

func decimalString(p *message.Printer, n float64, minDigits, maxDigits int) string {
	return p.Sprint(number.Decimal(n,
		number.MinFractionDigits(minDigits),
		number.MaxFractionDigits(maxDigits),
	))
}

// Intl formats n with the locale's digit grouping and decimal separator, using at
// most three fraction digits unless WithFractionDigits says otherwise.
func (f Formatter) Intl(n float64, opts ...FormatOption) string {
	o := newFormatOptions(opts)
	p, _ := f.printer(o)

	if !finite(n) {
		return nonFinite(n)
	}

	minDigits, maxDigits := o.digits(0, defaultIntlMaxFractionDigits)

	return decimalString(p, n, minDigits, maxDigits)
}

// Currency formats n as an amount of the configured currency, or the one passed with
// WithCurrency. Symbol placement and spacing follow the locale's CLDR currency
// pattern: "$30.00" in en-US, "30,00 €" in de-DE, "CHF 1’234.50" in de-CH.
func (f Formatter) Currency(n float64, opts ...FormatOption) string {
	o := newFormatOptions(opts)
	p, tag := f.printer(o)
	defaults := f.Config().Num.Currency

	code := o.currency
	if code == "" {
		code = defaults.Currency
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.USD
	}

	if !finite(n) {
		return nonFinite(n)
	}

	minDigits, maxDigits := o.digits(defaults.MinFractionDigits, defaults.MaxFractionDigits)
	amount := decimalString(p, math.Abs(n), minDigits, maxDigits)
	symbol := p.Sprint(currency.Symbol(unit))

	placement := cldr.CurrencyPlacement(tag)

	gap := ""
	if placement.Spaced || letterTouches(symbol, placement.Before) {
		gap = nbsp
	}

	var b strings.Builder

	if n < 0 {
		b.WriteString("-")
	}

	if placement.Before {
		b.WriteString(symbol)
		b.WriteString(gap)
		b.WriteString(amount)
	} else {
		b.WriteString(amount)
		b.WriteString(gap)
		b.WriteString(symbol)
	}

	return applySpacing(b.String(), o.spacedOr(defaults.Spaced))
}

// Percent formats a ratio as a percentage: 0.1312 becomes "13.12%".
func (f Formatter) Percent(n float64, opts ...FormatOption) string {
	o := newFormatOptions(opts)
	p, tag := f.printer(o)
	defaults := f.Config().Num.Percent

	if !finite(n) {
		return nonFinite(n)
	}

	scaled := decimal.NewFromFloat(n).Shift(2).InexactFloat64()
	minDigits, maxDigits := o.digits(defaults.MinFractionDigits, defaults.MaxFractionDigits)

	affix := cldr.PercentAffix(tag)
	out := affix.Prefix + decimalString(p, scaled, minDigits, maxDigits) + affix.Suffix

	return applySpacing(out, o.spacedOr(defaults.Spaced))
}

// Signed formats n with an explicit sign: "+1", "-1". Zero is unsigned unless
// WithZeroSign(true) is set; WithSpaced(true) separates sign and digits ("+ 1").
func (f Formatter) Signed(n float64, opts ...FormatOption) string {
	o := newFormatOptions(opts)
	p, _ := f.printer(o)

	if !finite(n) {
		return nonFinite(n)
	}

	minDigits, maxDigits := o.digits(0, defaultIntlMaxFractionDigits)
	digits := decimalString(p, math.Abs(n), minDigits, maxDigits)

	var sign string

	switch {
	case n > 0:
		sign = "+"
	case n < 0:
		sign = "-"
	case o.zero:
		sign = "+"
	}

	if o.spacedOr(false) {
		digits = applySpacing(digits, false)
		if sign != "" {
			sign += " "
		}
	}

	return sign + digits
}

// letterTouches reports whether the symbol side facing the digits is a letter, as
// in "CHF" or "US$" written before the amount. Such symbols keep a space from the
// digits even when the pattern has none.
func letterTouches(symbol string, before bool) bool {
	if symbol == "" {
		return false
	}

	var r rune
	if before {
		r, _ = utf8.DecodeLastRuneInString(symbol)
	} else {
		r, _ = utf8.DecodeRuneInString(symbol)
	}

	return unicode.IsLetter(r)
}

// applySpacing strips every whitespace rune when spaced is false.
func applySpacing(s string, spaced bool) string {
	if spaced {
		return s
	}

	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, s)
}

func nonFinite(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case n > 0:
		return "∞"
	default:
		return "-∞"
	}
}
