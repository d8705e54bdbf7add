package str

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrInvalidLength is returned by Random for negative lengths.
var ErrInvalidLength = errors.New("invalid length")

const (
	alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	symbols      = "!@#$%^&*()_+-=[]{};:,.<>?"
	ellipsis     = "..."
)

// Align selects where Divide starts counting groups.
type Align int

const (
	// AlignStart groups from the first rune: "123 456 789 0".
	AlignStart Align = iota
	// AlignEnd groups from the last rune: "1 234 567 890".
	AlignEnd
)

// Capitalize uppercases the first letter of every word. A word starts at the beginning
// of s or after whitespace, a quote or an opening bracket. With lower set, the rest of
// s is lowercased first.
func Capitalize(s string, lower bool) string {
	if lower {
		s = cases.Lower(language.Und).String(s)
	}

	upper := cases.Upper(language.Und)

	var b strings.Builder

	b.Grow(len(s))

	boundary := true

	for _, r := range s {
		opener := isWordOpener(r)

		if boundary && !opener {
			b.WriteString(upper.String(string(r)))
		} else {
			b.WriteRune(r)
		}

		boundary = opener
	}

	return b.String()
}

func isWordOpener(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}

	switch r {
	case '"', '\'', '(', '[', '{':
		return true
	}

	return false
}

// FCapitalize uppercases only the first rune of s. With lower set, the remainder is
// lowercased.
func FCapitalize(s string, lower bool) string {
	_, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}

	rest := s[size:]
	if lower {
		rest = cases.Lower(language.Und).String(rest)
	}

	return cases.Upper(language.Und).String(s[:size]) + rest
}

var nonSlug = regexp.MustCompile(`[^a-z0-9_]+`)

// URI turns s into a lowercase slug: diacritics are removed, every run of characters
// outside [a-z0-9_] becomes a single "-", and one leading and one trailing "-" are
// trimmed.
func URI(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}

	slug := nonSlug.ReplaceAllString(cases.Lower(language.Und).String(stripped), "-")
	slug = strings.TrimPrefix(slug, "-")
	slug = strings.TrimSuffix(slug, "-")

	return slug
}

// Random returns a random alphanumeric string of the given length, optionally
// including symbols. Characters come from crypto/rand.
func Random(length int, allowSymbols bool) (string, error) {
	if length < 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}

	charset := alphanumeric
	if allowSymbols {
		charset += symbols
	}

	limit := big.NewInt(int64(len(charset)))
	out := make([]byte, length)

	for i := range out {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("random string: %w", err)
		}

		out[i] = charset[n.Int64()]
	}

	return string(out), nil
}

// In reports whether s equals any of the targets.
func In[S ~string](s S, targets ...S) bool {
	return slices.Contains(targets, s)
}

// Ellipsis truncates s to length user-perceived characters and appends "..." when s
// is longer. Combining marks and emoji sequences are never split.
func Ellipsis(s string, length int) string {
	if length < 0 {
		length = 0
	}

	if uniseg.GraphemeClusterCount(s) <= length {
		return s
	}

	var b strings.Builder

	rest, state := s, -1
	for range length {
		var cluster string

		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		b.WriteString(cluster)
	}

	b.WriteString(ellipsis)

	return b.String()
}

// Join concatenates the non-empty parts with sep.
func Join(parts []string, sep string) string {
	kept := make([]string, 0, len(parts))

	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}

	return strings.Join(kept, sep)
}

// JoinPtr concatenates the non-nil, non-empty parts with sep.
func JoinPtr(parts []*string, sep string) string {
	kept := make([]string, 0, len(parts))

	for _, part := range parts {
		if part != nil {
			kept = append(kept, *part)
		}
	}

	return Join(kept, sep)
}

// Divide splits s into groups of size runes joined by sep. AlignEnd anchors the groups
// to the end of s, which is how digit grouping reads. A non-positive size returns s.
func Divide(s string, size int, sep string, align Align) string {
	if size <= 0 || s == "" {
		return s
	}

	chars := []rune(s)
	groups := make([]string, 0, len(chars)/size+1)

	head := 0
	if align == AlignEnd {
		head = len(chars) % size
		if head > 0 {
			groups = append(groups, string(chars[:head]))
		}
	}

	for i := head; i < len(chars); i += size {
		end := min(i+size, len(chars))
		groups = append(groups, string(chars[i:end]))
	}

	return strings.Join(groups, sep)
}
