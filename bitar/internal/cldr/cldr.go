// Package cldr resolves language tags to the generated CLDR rules of
// github.com/go-playground/locales and reads affix layouts out of them.
package cldr

import (
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/ar"
	"github.com/go-playground/locales/ar_EG"
	"github.com/go-playground/locales/cs"
	"github.com/go-playground/locales/currency"
	"github.com/go-playground/locales/da"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/de_AT"
	"github.com/go-playground/locales/de_CH"
	"github.com/go-playground/locales/de_DE"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/en_001"
	"github.com/go-playground/locales/en_AU"
	"github.com/go-playground/locales/en_CA"
	"github.com/go-playground/locales/en_GB"
	"github.com/go-playground/locales/en_IE"
	"github.com/go-playground/locales/en_IN"
	"github.com/go-playground/locales/en_NZ"
	"github.com/go-playground/locales/en_US"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/es_419"
	"github.com/go-playground/locales/es_AR"
	"github.com/go-playground/locales/es_CL"
	"github.com/go-playground/locales/es_CO"
	"github.com/go-playground/locales/es_ES"
	"github.com/go-playground/locales/es_MX"
	"github.com/go-playground/locales/es_US"
	"github.com/go-playground/locales/fi"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/fr_BE"
	"github.com/go-playground/locales/fr_CA"
	"github.com/go-playground/locales/fr_CH"
	"github.com/go-playground/locales/fr_FR"
	"github.com/go-playground/locales/hi"
	"github.com/go-playground/locales/it"
	"github.com/go-playground/locales/it_CH"
	"github.com/go-playground/locales/it_IT"
	"github.com/go-playground/locales/ja"
	"github.com/go-playground/locales/ko"
	"github.com/go-playground/locales/nb"
	"github.com/go-playground/locales/nl"
	"github.com/go-playground/locales/nl_BE"
	"github.com/go-playground/locales/nl_NL"
	"github.com/go-playground/locales/pl"
	"github.com/go-playground/locales/pt"
	"github.com/go-playground/locales/pt_BR"
	"github.com/go-playground/locales/pt_PT"
	"github.com/go-playground/locales/ru"
	"github.com/go-playground/locales/sv"
	"github.com/go-playground/locales/tr"
	"github.com/go-playground/locales/zh"
	"github.com/go-playground/locales/zh_Hans"
	"github.com/go-playground/locales/zh_Hant"
	"golang.org/x/text/language"
)

const nbsp = '\u00a0'

// registry maps "ll", "ll_RR" and "ll_Ssss" keys to their CLDR rules.
var registry = map[string]func() locales.Translator{
	"ar":      ar.New,
	"ar_EG":   ar_EG.New,
	"cs":      cs.New,
	"da":      da.New,
	"fi":      fi.New,
	"hi":      hi.New,
	"ja":      ja.New,
	"ko":      ko.New,
	"nb":      nb.New,
	"pl":      pl.New,
	"ru":      ru.New,
	"sv":      sv.New,
	"tr":      tr.New,
	"de":      de.New,
	"de_AT":   de_AT.New,
	"de_CH":   de_CH.New,
	"de_DE":   de_DE.New,
	"en":      en.New,
	"en_001":  en_001.New,
	"en_AU":   en_AU.New,
	"en_CA":   en_CA.New,
	"en_GB":   en_GB.New,
	"en_IE":   en_IE.New,
	"en_IN":   en_IN.New,
	"en_NZ":   en_NZ.New,
	"en_US":   en_US.New,
	"es":      es.New,
	"es_419":  es_419.New,
	"es_AR":   es_AR.New,
	"es_CL":   es_CL.New,
	"es_CO":   es_CO.New,
	"es_ES":   es_ES.New,
	"es_MX":   es_MX.New,
	"es_US":   es_US.New,
	"fr":      fr.New,
	"fr_BE":   fr_BE.New,
	"fr_CA":   fr_CA.New,
	"fr_CH":   fr_CH.New,
	"fr_FR":   fr_FR.New,
	"it":      it.New,
	"it_CH":   it_CH.New,
	"it_IT":   it_IT.New,
	"nl":      nl.New,
	"nl_BE":   nl_BE.New,
	"nl_NL":   nl_NL.New,
	"pt":      pt.New,
	"pt_BR":   pt_BR.New,
	"pt_PT":   pt_PT.New,
	"zh":      zh.New,
	"zh_Hans": zh_Hans.New,
	"zh_Hant": zh_Hant.New,
}

var chains sync.Map // tag string -> []locales.Translator

// Candidates returns the rules for tag followed by those of its CLDR parents
// (es-MX, es-419, es), ending with English. The slice is shared and must not be
// modified.
func Candidates(tag language.Tag) []locales.Translator {
	id := tag.String()
	if cached, ok := chains.Load(id); ok {
		return cached.([]locales.Translator)
	}

	var chain []locales.Translator

	for t := tag; ; {
		if newTranslator, ok := registry[key(t)]; ok {
			chain = append(chain, newTranslator())
		}

		parent := t.Parent()
		if t.IsRoot() || parent == t {
			break
		}

		t = parent
	}

	if len(chain) == 0 || chain[len(chain)-1].Locale() != "en" {
		chain = append(chain, en.New())
	}

	cached, _ := chains.LoadOrStore(id, chain)

	return cached.([]locales.Translator)
}

// Translator returns the most specific rules available for tag.
func Translator(tag language.Tag) locales.Translator {
	return Candidates(tag)[0]
}

func key(t language.Tag) string {
	base, script, region := t.Raw()
	parts := []string{base.String()}

	if script != (language.Script{}) {
		parts = append(parts, script.String())
	}

	if region != (language.Region{}) {
		parts = append(parts, region.String())
	}

	return strings.Join(parts, "_")
}

// Placement says where a currency symbol goes relative to the digits.
type Placement struct {
	Before bool
	Spaced bool
}

// Affix is the text written around the digits of a formatted number, with every
// space normalized to a no-break space.
type Affix struct {
	Prefix string
	Suffix string
}

// Amounts large enough to be grouped expose patterns whose generated rules drop the
// grouping separator.
const (
	groupedSample = 1234.5
	percentSample = 12.5
)

// CurrencyPlacement reads the symbol position and spacing of the locale's currency
// pattern, walking up the parent chain past patterns that do not round-trip the
// locale's own number format.
func CurrencyPlacement(tag language.Tag) Placement {
	for _, tr := range Candidates(tag) {
		if p, ok := currencyPlacement(tr); ok {
			return p
		}
	}

	return Placement{Before: true}
}

func currencyPlacement(tr locales.Translator) (Placement, bool) {
	prefix, suffix, ok := around(tr.FmtCurrency(groupedSample, 2, currency.XXX), tr.FmtNumber(groupedSample, 2))
	if !ok {
		return Placement{}, false
	}

	switch {
	case prefix != "" && suffix == "":
		return Placement{Before: true, Spaced: hasSpace(prefix)}, true
	case prefix == "" && suffix != "":
		return Placement{Spaced: hasSpace(suffix)}, true
	default:
		return Placement{}, false
	}
}

// PercentAffix returns the percent sign with its spacing as the locale writes it:
// "%" after the digits in English, " %" in German, "%" before them in Turkish.
func PercentAffix(tag language.Tag) Affix {
	for _, tr := range Candidates(tag) {
		prefix, suffix, ok := around(tr.FmtPercent(percentSample, 1), tr.FmtNumber(percentSample, 1))
		if ok && (prefix == "") != (suffix == "") {
			return Affix{Prefix: normalizeSpace(prefix), Suffix: normalizeSpace(suffix)}
		}
	}

	return Affix{Suffix: "%"}
}

// around splits formatted at the digits, returning the text on each side. Sides
// made only of spaces come back empty.
func around(formatted, digits string) (string, string, bool) {
	i := strings.Index(formatted, digits)
	if digits == "" || i < 0 {
		return "", "", false
	}

	prefix, suffix := formatted[:i], formatted[i+len(digits):]

	if strings.TrimSpace(prefix) == "" {
		prefix = ""
	}

	if strings.TrimSpace(suffix) == "" {
		suffix = ""
	}

	return prefix, suffix, true
}

func hasSpace(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) >= 0
}

func normalizeSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return nbsp
		}

		return r
	}, s)
}
