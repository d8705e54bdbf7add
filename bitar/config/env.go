package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ErrInvalidEnvValue is returned when a BITAR_* variable cannot be parsed.
var ErrInvalidEnvValue = errors.New("invalid environment value")

// Environment variables read by FromEnv.
const (
	EnvLocale                    = "BITAR_LOCALE"
	EnvCurrency                  = "BITAR_CURRENCY"
	EnvCurrencyMinFractionDigits = "BITAR_CURRENCY_MIN_FRACTION_DIGITS"
	EnvCurrencyMaxFractionDigits = "BITAR_CURRENCY_MAX_FRACTION_DIGITS"
	EnvCurrencySpaced            = "BITAR_CURRENCY_SPACED"
	EnvPercentMinFractionDigits  = "BITAR_PERCENT_MIN_FRACTION_DIGITS"
	EnvPercentMaxFractionDigits  = "BITAR_PERCENT_MAX_FRACTION_DIGITS"
	EnvPercentSpaced             = "BITAR_PERCENT_SPACED"
)

// FromEnv builds a Patch from BITAR_* variables. Values found in dotenvFiles are
// used only for keys absent from the process environment.
func FromEnv(dotenvFiles ...string) (Patch, error) {
	fallback := map[string]string{}

	if len(dotenvFiles) > 0 {
		values, err := godotenv.Read(dotenvFiles...)
		if err != nil {
			return Patch{}, fmt.Errorf("read dotenv files: %w", err)
		}

		fallback = values
	}

	env := envReader{fallback: fallback}

	var patch Patch

	patch.Locale = env.lookupString(EnvLocale)

	currencyPatch := &FormatPatch{
		Currency:          env.lookupString(EnvCurrency),
		MinFractionDigits: env.lookupInt(EnvCurrencyMinFractionDigits),
		MaxFractionDigits: env.lookupInt(EnvCurrencyMaxFractionDigits),
		Spaced:            env.lookupBool(EnvCurrencySpaced),
	}

	percentPatch := &FormatPatch{
		MinFractionDigits: env.lookupInt(EnvPercentMinFractionDigits),
		MaxFractionDigits: env.lookupInt(EnvPercentMaxFractionDigits),
		Spaced:            env.lookupBool(EnvPercentSpaced),
	}

	if env.err != nil {
		return Patch{}, env.err
	}

	if !currencyPatch.empty() || !percentPatch.empty() {
		patch.Num = &NumPatch{}

		if !currencyPatch.empty() {
			patch.Num.Currency = currencyPatch
		}

		if !percentPatch.empty() {
			patch.Num.Percent = percentPatch
		}
	}

	return patch, nil
}

func (p *FormatPatch) empty() bool {
	return p.Currency == nil && p.MinFractionDigits == nil && p.MaxFractionDigits == nil && p.Spaced == nil
}

// envReader looks keys up in the process environment first, then in fallback. The
// first parse failure is kept in err.
type envReader struct {
	fallback map[string]string
	err      error
}

func (r *envReader) lookup(key string) (string, bool) {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v), true
	}

	if v, ok := r.fallback[key]; ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v), true
	}

	return "", false
}

func (r *envReader) lookupString(key string) *string {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}

	return &v
}

func (r *envReader) lookupInt(key string) *int {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		r.fail(key, v)
		return nil
	}

	return &n
}

func (r *envReader) lookupBool(key string) *bool {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		r.fail(key, v)
		return nil
	}

	return &b
}

func (r *envReader) fail(key, value string) {
	if r.err == nil {
		r.err = fmt.Errorf("%w: %s=%q", ErrInvalidEnvValue, key, value)
	}
}
