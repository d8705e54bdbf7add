package num

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

type compactUnit struct {
	exp    int32
	suffix string
}

// compactUnits holds the short compact notation per language, largest unit last.
// Languages missing here use English.
var compactUnits = map[string][]compactUnit{
	"en": {{3, "K"}, {6, "M"}, {9, "B"}, {12, "T"}},
	"es": {{3, nbsp + "mil"}, {6, nbsp + "M"}, {9, nbsp + "mil" + nbsp + "M"}, {12, nbsp + "B"}},
	"pt": {{3, nbsp + "mil"}, {6, nbsp + "mi"}, {9, nbsp + "bi"}, {12, nbsp + "tri"}},
	"fr": {{3, nbsp + "k"}, {6, nbsp + "M"}, {9, nbsp + "Md"}, {12, nbsp + "Bn"}},
	"de": {{6, nbsp + "Mio."}, {9, nbsp + "Mrd."}, {12, nbsp + "Bio."}},
	"it": {{6, nbsp + "Mln"}, {9, nbsp + "Mrd"}, {12, nbsp + "Bln"}},
}

func unitsFor(tag language.Tag) []compactUnit {
	base, _ := tag.Base()
	if units, ok := compactUnits[base.String()]; ok {
		return units
	}

	return compactUnits["en"]
}

// Compact formats n in short compact notation with at most one fraction digit:
// 100000 becomes "100K" and 100333 becomes "100.3K" in English.
func (f Formatter) Compact(n float64, opts ...FormatOption) string {
	o := newFormatOptions(opts)
	p, tag := f.printer(o)

	if !finite(n) {
		return nonFinite(n)
	}

	minDigits, maxDigits := o.digits(0, defaultCompactMaxFractionDigits)
	units := unitsFor(tag)
	value := decimal.NewFromFloat(n)
	abs := value.Abs()

	idx := -1

	for i, unit := range units {
		if abs.GreaterThanOrEqual(decimal.New(1, unit.exp)) {
			idx = i
		}
	}

	scaled := value
	if idx >= 0 {
		scaled = value.Shift(-units[idx].exp)
	}

	scaled = scaled.Round(int32(maxDigits))

	// 999950 rounds to 1000K; promote it to 1M.
	next := idx + 1
	if next < len(units) {
		var limit decimal.Decimal
		if idx >= 0 {
			limit = decimal.New(1, units[next].exp-units[idx].exp)
		} else {
			limit = decimal.New(1, units[next].exp)
		}

		if scaled.Abs().GreaterThanOrEqual(limit) {
			idx = next
			scaled = value.Shift(-units[idx].exp).Round(int32(maxDigits))
		}
	}

	digits := decimalString(p, math.Abs(scaled.InexactFloat64()), minDigits, maxDigits)
	if n < 0 && !scaled.IsZero() {
		digits = "-" + digits
	}

	if idx < 0 {
		return digits
	}

	return digits + units[idx].suffix
}
