package str

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrInvalidCase is returned by ParseCase for unknown case names.
var ErrInvalidCase = errors.New("invalid string case")

// Case identifies a multi-word naming convention.
type Case int

// Supported cases.
const (
	Title  Case = iota + 1 // "My Example String"
	Camel                  // "myExampleString"
	Pascal                 // "MyExampleString"
	Snake                  // "my_example_string"
	Kebab                  // "my-example-string"
)

var caseNames = map[Case]string{
	Title:  "title",
	Camel:  "camel",
	Pascal: "pascal",
	Snake:  "snake",
	Kebab:  "kebab",
}

// String returns the lowercase case name.
func (c Case) String() string {
	if name, ok := caseNames[c]; ok {
		return name
	}

	return fmt.Sprintf("Case(%d)", int(c))
}

// Valid reports whether c is one of the supported cases.
func (c Case) Valid() bool {
	_, ok := caseNames[c]
	return ok
}

// Cases returns every supported case in declaration order.
func Cases() []Case {
	return []Case{Title, Camel, Pascal, Snake, Kebab}
}

// ParseCase resolves a case by name ("title", "camel", "pascal", "snake", "kebab").
func ParseCase(name string) (Case, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))

	for c, n := range caseNames {
		if n == normalized {
			return c, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidCase, name)
}

// Word patterns for capitalized sources. Pascal requires a lowercase letter after a
// capital; camel also accepts a lone capital, so "parseHTTP" keeps H, T, T, P as
// words in camel but drops them in pascal.
var (
	pascalWord = regexp.MustCompile(`\p{Lu}\p{Ll}+|\p{Ll}+`)
	camelWord  = regexp.MustCompile(`\p{Lu}\p{Ll}*|\p{Ll}+`)
)

// Words splits s, assumed to be in the from case, into lowercase words. An empty
// input or an invalid case yields no words.
func Words(from Case, s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	switch from {
	case Title:
		tokens = strings.Split(s, " ")
	case Camel:
		tokens = camelWord.FindAllString(s, -1)
	case Pascal:
		tokens = pascalWord.FindAllString(s, -1)
	case Snake:
		tokens = strings.Split(s, "_")
	case Kebab:
		tokens = strings.Split(s, "-")
	default:
		return nil
	}

	lower := cases.Lower(language.Und)

	for i, token := range tokens {
		if from != Title {
			token = strings.Join(strings.Fields(token), "")
		}

		tokens[i] = lower.String(token)
	}

	return tokens
}

// Render joins words in the to case. An invalid case renders words separated by
// single spaces, unchanged.
func Render(to Case, words []string) string {
	if len(words) == 0 {
		return ""
	}

	w := newWordCaser()
	out := make([]string, len(words))

	switch to {
	case Title, Pascal:
		for i, word := range words {
			out[i] = w.capitalize(word)
		}

		if to == Title {
			return strings.Join(out, " ")
		}

		return strings.Join(out, "")
	case Camel:
		out[0] = w.lower.String(words[0])
		for i := 1; i < len(words); i++ {
			out[i] = w.capitalize(words[i])
		}

		return strings.Join(out, "")
	case Snake, Kebab:
		for i, word := range words {
			out[i] = w.lower.String(word)
		}

		if to == Snake {
			return strings.Join(out, "_")
		}

		return strings.Join(out, "-")
	default:
		return strings.Join(words, " ")
	}
}

// Convert re-renders s from one case to another. Converting a case to itself
// normalizes the input through the same tokenize/render pass.
func Convert(from, to Case, s string) string {
	return Render(to, Words(from, s))
}

// wordCaser bundles the x/text casers used while rendering. Casers keep state, so a
// fresh wordCaser is built per call instead of being shared.
type wordCaser struct {
	upper cases.Caser
	lower cases.Caser
}

func newWordCaser() wordCaser {
	return wordCaser{
		upper: cases.Upper(language.Und),
		lower: cases.Lower(language.Und),
	}
}

// capitalize uppercases the first rune of word and lowercases the rest.
func (w wordCaser) capitalize(word string) string {
	_, size := utf8.DecodeRuneInString(word)
	if size == 0 {
		return ""
	}

	return w.upper.String(word[:size]) + w.lower.String(word[size:])
}

// TitleSource is a title-case input awaiting conversion.
type TitleSource struct{ words []string }

// FromTitle tokenizes a "Title Case" string.
func FromTitle(s string) TitleSource { return TitleSource{words: Words(Title, s)} }

// ToCamel renders the words in camelCase.
func (s TitleSource) ToCamel() string { return Render(Camel, s.words) }

// ToPascal renders the words in PascalCase.
func (s TitleSource) ToPascal() string { return Render(Pascal, s.words) }

// ToSnake renders the words in snake_case.
func (s TitleSource) ToSnake() string { return Render(Snake, s.words) }

// ToKebab renders the words in kebab-case.
func (s TitleSource) ToKebab() string { return Render(Kebab, s.words) }

// CamelSource is a camelCase input awaiting conversion.
type CamelSource struct{ words []string }

// FromCamel tokenizes a "camelCase" string.
func FromCamel(s string) CamelSource { return CamelSource{words: Words(Camel, s)} }

// ToTitle renders the words in Title Case.
func (s CamelSource) ToTitle() string { return Render(Title, s.words) }

// ToPascal renders the words in PascalCase.
func (s CamelSource) ToPascal() string { return Render(Pascal, s.words) }

// ToSnake renders the words in snake_case.
func (s CamelSource) ToSnake() string { return Render(Snake, s.words) }

// ToKebab renders the words in kebab-case.
func (s CamelSource) ToKebab() string { return Render(Kebab, s.words) }

// PascalSource is a PascalCase input awaiting conversion.
type PascalSource struct{ words []string }

// FromPascal tokenizes a "PascalCase" string.
func FromPascal(s string) PascalSource { return PascalSource{words: Words(Pascal, s)} }

// ToTitle renders the words in Title Case.
func (s PascalSource) ToTitle() string { return Render(Title, s.words) }

// ToCamel renders the words in camelCase.
func (s PascalSource) ToCamel() string { return Render(Camel, s.words) }

// ToSnake renders the words in snake_case.
func (s PascalSource) ToSnake() string { return Render(Snake, s.words) }

// ToKebab renders the words in kebab-case.
func (s PascalSource) ToKebab() string { return Render(Kebab, s.words) }

// SnakeSource is a snake_case input awaiting conversion.
type SnakeSource struct{ words []string }

// FromSnake tokenizes a "snake_case" string.
func FromSnake(s string) SnakeSource { return SnakeSource{words: Words(Snake, s)} }

// ToTitle renders the words in Title Case.
func (s SnakeSource) ToTitle() string { return Render(Title, s.words) }

// ToCamel renders the words in camelCase.
func (s SnakeSource) ToCamel() string { return Render(Camel, s.words) }

// ToPascal renders the words in PascalCase.
func (s SnakeSource) ToPascal() string { return Render(Pascal, s.words) }

// ToKebab renders the words in kebab-case.
func (s SnakeSource) ToKebab() string { return Render(Kebab, s.words) }

// KebabSource is a kebab-case input awaiting conversion.
type KebabSource struct{ words []string }

// FromKebab tokenizes a "kebab-case" string.
func FromKebab(s string) KebabSource { return KebabSource{words: Words(Kebab, s)} }

// ToTitle renders the words in Title Case.
func (s KebabSource) ToTitle() string { return Render(Title, s.words) }

// ToCamel renders the words in camelCase.
func (s KebabSource) ToCamel() string { return Render(Camel, s.words) }

// ToPascal renders the words in PascalCase.
func (s KebabSource) ToPascal() string { return Render(Pascal, s.words) }

// ToSnake renders the words in snake_case.
func (s KebabSource) ToSnake() string { return Render(Snake, s.words) }
