package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is returned when a merged configuration fails validation.
var ErrInvalidConfig = errors.New("invalid bitar config")

// Config is the full set of formatting defaults.
type Config struct {
	// Locale is the default BCP 47 tag for every locale-aware helper. Empty means the
	// system locale.
	Locale string `validate:"omitempty,locale"`
	Num    NumConfig
}

// NumConfig groups number formatting defaults.
type NumConfig struct {
	Currency FormatOptions
	Percent  FormatOptions
}

// FormatOptions are the defaults for one number style.
type FormatOptions struct {
	// Currency is an ISO 4217 code; only meaningful for currency formatting.
	Currency          string `validate:"omitempty,currency_code"`
	MinFractionDigits int    `validate:"min=0,max=20,ltefield=MaxFractionDigits"`
	MaxFractionDigits int    `validate:"min=0,max=20"`
	// Spaced keeps the whitespace between the symbol and the digits.
	Spaced bool
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Num: NumConfig{
			Currency: FormatOptions{Currency: "USD", MinFractionDigits: 2, MaxFractionDigits: 2, Spaced: true},
			Percent:  FormatOptions{MinFractionDigits: 2, MaxFractionDigits: 2, Spaced: true},
		},
	}
}

// Validate checks locale and currency codes and fraction digit bounds.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Num.Currency.Currency) == "" {
		return fmt.Errorf("%w: num.currency.currency is required", ErrInvalidConfig)
	}

	return validateStruct(c)
}

// Patch is a partial Config. Nil fields leave the base value untouched.
type Patch struct {
	Locale *string   `toml:"locale" yaml:"locale"`
	Num    *NumPatch `toml:"num" yaml:"num"`
}

// NumPatch is a partial NumConfig.
type NumPatch struct {
	Currency *FormatPatch `toml:"currency" yaml:"currency"`
	Percent  *FormatPatch `toml:"percent" yaml:"percent"`
}

// FormatPatch is a partial FormatOptions.
type FormatPatch struct {
	Currency          *string `toml:"currency" yaml:"currency"`
	MinFractionDigits *int    `toml:"min_fraction_digits" yaml:"min_fraction_digits"`
	MaxFractionDigits *int    `toml:"max_fraction_digits" yaml:"max_fraction_digits"`
	Spaced            *bool   `toml:"spaced" yaml:"spaced"`
}

// Merge returns base with every field set in patch applied. base is not modified.
func Merge(base Config, patch Patch) Config {
	out := base

	if patch.Locale != nil {
		out.Locale = strings.TrimSpace(*patch.Locale)
	}

	if patch.Num != nil {
		out.Num.Currency = patch.Num.Currency.apply(out.Num.Currency)
		out.Num.Percent = patch.Num.Percent.apply(out.Num.Percent)
	}

	return out
}

func (p *FormatPatch) apply(base FormatOptions) FormatOptions {
	if p == nil {
		return base
	}

	if p.Currency != nil {
		base.Currency = strings.ToUpper(strings.TrimSpace(*p.Currency))
	}

	if p.MinFractionDigits != nil {
		base.MinFractionDigits = *p.MinFractionDigits
	}

	if p.MaxFractionDigits != nil {
		base.MaxFractionDigits = *p.MaxFractionDigits
	}

	if p.Spaced != nil {
		base.Spaced = *p.Spaced
	}

	return base
}

// Combine layers patches left to right; later patches win field by field.
func Combine(patches ...Patch) Patch {
	var out Patch

	for _, p := range patches {
		if p.Locale != nil {
			out.Locale = p.Locale
		}

		if p.Num == nil {
			continue
		}

		if out.Num == nil {
			out.Num = &NumPatch{}
		}

		out.Num.Currency = combineFormat(out.Num.Currency, p.Num.Currency)
		out.Num.Percent = combineFormat(out.Num.Percent, p.Num.Percent)
	}

	return out
}

func combineFormat(into, from *FormatPatch) *FormatPatch {
	if from == nil {
		return into
	}

	if into == nil {
		into = &FormatPatch{}
	}

	merged := *into

	if from.Currency != nil {
		merged.Currency = from.Currency
	}

	if from.MinFractionDigits != nil {
		merged.MinFractionDigits = from.MinFractionDigits
	}

	if from.MaxFractionDigits != nil {
		merged.MaxFractionDigits = from.MaxFractionDigits
	}

	if from.Spaced != nil {
		merged.Spaced = from.Spaced
	}

	return &merged
}
