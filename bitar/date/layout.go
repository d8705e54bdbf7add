package date

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/locales"
	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// numericSample has a single-digit day and month so zero padding shows in the
// locale's short pattern.
var numericSample = time.Date(2033, time.April, 5, 15, 0, 0, 0, time.UTC)

// numericFields maps the fields of numericSample to Go layout elements. Years always
// print with four digits.
var numericFields = map[string]string{
	"2033": "2006", "33": "2006",
	"04": "01", "4": "1",
	"05": "02", "5": "2",
}

func dateString(tr locales.Translator, style Style, t time.Time) string {
	switch style {
	case Full:
		return tr.FmtDateFull(t)
	case Long:
		return tr.FmtDateLong(t)
	case Medium:
		return tr.FmtDateMedium(t)
	case Short:
		return tr.FmtDateShort(t)
	default:
		if layout, ok := numericLayout(tr.FmtDateShort(numericSample)); ok {
			return t.Format(layout)
		}

		return tr.FmtDateShort(t)
	}
}

// numericLayout turns the locale's short date, rendered for numericSample, into a Go
// layout with a four-digit year: "4/5/33" becomes "1/2/2006" and "05.04.33" becomes
// "02.01.2006". Patterns with letters are rejected.
func numericLayout(short string) (string, bool) {
	var b strings.Builder

	fields := 0

	for i := 0; i < len(short); {
		j := i
		for j < len(short) && short[j] >= '0' && short[j] <= '9' {
			j++
		}

		if j > i {
			element, ok := numericFields[short[i:j]]
			if !ok {
				return "", false
			}

			b.WriteString(element)

			fields++
			i = j

			continue
		}

		r, size := utf8.DecodeRuneInString(short[i:])
		if unicode.IsLetter(r) {
			return "", false
		}

		b.WriteString(short[i : i+size])
		i += size
	}

	if fields != 3 {
		return "", false
	}

	return b.String(), true
}

// hour24 reports whether the locale writes a 24-hour clock.
func hour24(tr locales.Translator) bool {
	return strings.Contains(tr.FmtTimeShort(numericSample), "15")
}

func timeLayout(style Style, twentyFour bool) string {
	clock := "3:04"
	suffix := " PM"

	if twentyFour {
		clock = "15:04"
		suffix = ""
	}

	switch style {
	case Short:
		return clock + suffix
	case Medium:
		return clock + ":05" + suffix
	default:
		return clock + ":05" + suffix + " MST"
	}
}

var mondayLocales = func() map[monday.Locale]bool {
	supported := make(map[monday.Locale]bool)
	for _, l := range monday.ListLocales() {
		supported[l] = true
	}

	return supported
}()

// mondayLocale maps a tag to a locale monday ships: the exact "ll_RR" pair, then
// the language's most likely region (es-MX uses es_ES), then any region of the
// language, then en_US.
func mondayLocale(tag language.Tag) monday.Locale {
	base, _ := tag.Base()
	region, _ := tag.Region()
	likely, _ := language.Make(base.String()).Region()

	for _, r := range []language.Region{region, likely} {
		if l := monday.Locale(base.String() + "_" + r.String()); mondayLocales[l] {
			return l
		}
	}

	for _, l := range monday.ListLocales() {
		if strings.HasPrefix(string(l), base.String()+"_") {
			return l
		}
	}

	return monday.LocaleEnUS
}
