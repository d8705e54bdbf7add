//go:build unit

package cldr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestCandidates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag  string
		want []string
	}{
		{"es-MX", []string{"es_MX", "es_419", "es", "en"}},
		{"en-AU", []string{"en_AU", "en_001", "en"}},
		{"de-CH", []string{"de_CH", "de", "en"}},
		{"pt", []string{"pt", "en"}},
		{"en", []string{"en"}},
		{"sw-KE", []string{"en"}},
	}

	for _, tc := range tests {
		t.Run(tc.tag, func(t *testing.T) {
			t.Parallel()

			var got []string
			for _, tr := range Candidates(language.Make(tc.tag)) {
				got = append(got, tr.Locale())
			}

			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCandidatesAreCached(t *testing.T) {
	t.Parallel()

	first := Candidates(language.Make("fr-CA"))
	second := Candidates(language.Make("fr-CA"))

	assert.Same(t, &first[0], &second[0])
	assert.Equal(t, "fr_CA", Translator(language.Make("fr-CA")).Locale())
}

func TestCurrencyPlacement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag  string
		want Placement
	}{
		{"en-US", Placement{Before: true}},
		{"en-AU", Placement{Before: true}},
		{"es-MX", Placement{Before: true}},
		{"pt-BR", Placement{Before: true, Spaced: true}},
		{"de-CH", Placement{Before: true, Spaced: true}},
		{"de-DE", Placement{Spaced: true}},
		{"es-ES", Placement{Spaced: true}},
		{"fr-CA", Placement{Spaced: true}},
		{"sw", Placement{Before: true}},
	}

	for _, tc := range tests {
		t.Run(tc.tag, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, CurrencyPlacement(language.Make(tc.tag)))
		})
	}
}

func TestPercentAffix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag  string
		want Affix
	}{
		{"en-US", Affix{Suffix: "%"}},
		{"pt-BR", Affix{Suffix: "%"}},
		{"de-DE", Affix{Suffix: "\u00a0%"}},
		{"es-MX", Affix{Suffix: "\u00a0%"}},
		{"tr", Affix{Prefix: "%"}},
	}

	for _, tc := range tests {
		t.Run(tc.tag, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, PercentAffix(language.Make(tc.tag)))
		})
	}
}
