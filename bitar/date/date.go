package date

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goodsign/monday"

	"github.com/LerianStudio/lib-bitar/bitar/config"
	"github.com/LerianStudio/lib-bitar/bitar/internal/cldr"
)

var (
	// ErrInvalidDate is returned when a date string matches no accepted layout.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidTimeZone is returned for unknown IANA zone names.
	ErrInvalidTimeZone = errors.New("invalid time zone")
	// ErrInvalidStyle is returned by ParseStyle for unknown names.
	ErrInvalidStyle = errors.New("invalid date style")
)

// Style is the verbosity of the date or time part.
type Style int

// Styles from most to least verbose. StyleNone omits the part.
const (
	StyleNone Style = iota
	Full
	Long
	Medium
	Short
)

var styleNames = map[string]Style{
	"":       StyleNone,
	"none":   StyleNone,
	"full":   Full,
	"long":   Long,
	"medium": Medium,
	"short":  Short,
}

// ParseStyle maps "full", "long", "medium", "short" or "none" to a Style.
func ParseStyle(name string) (Style, error) {
	if s, ok := styleNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return s, nil
	}

	return StyleNone, fmt.Errorf("%w: %q", ErrInvalidStyle, name)
}

// inputLayouts are tried in order by IntlString.
var inputLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", time.DateOnly}

// Formatter formats dates using the locale of a configuration snapshot.
type Formatter struct {
	cfg config.Config
}

// NewFormatter binds a Formatter to cfg.
func NewFormatter(cfg config.Config) Formatter {
	return Formatter{cfg: cfg}
}

type options struct {
	locale    string
	system    bool
	dateStyle Style
	timeStyle Style
	zone      string
	layout    string
}

// Option adjusts a single formatting call.
type Option func(*options)

// WithLocale formats for the given BCP 47 tag instead of the configured locale.
func WithLocale(locale string) Option {
	return func(o *options) { o.locale = locale }
}

// WithSystemLocale ignores the configured locale and uses the system one.
func WithSystemLocale() Option {
	return func(o *options) { o.system = true }
}

// WithDateStyle selects the date layout.
func WithDateStyle(s Style) Option {
	return func(o *options) { o.dateStyle = s }
}

// WithTimeStyle selects the time layout. Without it only the date is printed.
func WithTimeStyle(s Style) Option {
	return func(o *options) { o.timeStyle = s }
}

// WithLayout formats with a Go reference layout instead of the locale's patterns.
// Month and weekday names are translated: "Monday, 2 January 2006" prints
// "martes, 2 enero 2024" for es-MX. Styles are ignored.
func WithLayout(layout string) Option {
	return func(o *options) { o.layout = layout }
}

// WithTimeZone converts the time to the named IANA zone before formatting.
func WithTimeZone(name string) Option {
	return func(o *options) { o.zone = name }
}

// Intl formats t for the resolved locale using its CLDR date patterns. With no
// style options the numeric date is printed with a four-digit year ("1/2/2024" in
// en-US, "2/1/2024" in en-AU).
func (f Formatter) Intl(t time.Time, opts ...Option) (string, error) {
	var o options

	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if o.zone != "" {
		loc, err := time.LoadLocation(o.zone)
		if err != nil {
			return "", fmt.Errorf("%w: %q: %v", ErrInvalidTimeZone, o.zone, err)
		}

		t = t.In(loc)
	}

	tag := f.cfg.ResolveLocale(o.locale, o.system)

	if o.layout != "" {
		return monday.Format(t, o.layout, mondayLocale(tag)), nil
	}

	tr := cldr.Translator(tag)
	parts := make([]string, 0, 2)

	if o.dateStyle != StyleNone || o.timeStyle == StyleNone {
		parts = append(parts, dateString(tr, o.dateStyle, t))
	}

	if o.timeStyle != StyleNone {
		parts = append(parts, monday.Format(t, timeLayout(o.timeStyle, hour24(tr)), mondayLocale(tag)))
	}

	return strings.Join(parts, ", "), nil
}

// IntlString parses s as RFC 3339 or a plain "2006-01-02" date and formats it like
// Intl.
func (f Formatter) IntlString(s string, opts ...Option) (string, error) {
	t, err := Parse(s)
	if err != nil {
		return "", err
	}

	return f.Intl(t, opts...)
}

// Parse reads s as RFC 3339 (with or without offset) or a plain date.
func Parse(s string) (time.Time, error) {
	trimmed := strings.TrimSpace(s)

	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}
