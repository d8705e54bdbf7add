//go:build unit

package str

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaseString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "title", Title.String())
	assert.Equal(t, "kebab", Kebab.String())
	assert.Equal(t, "Case(42)", Case(42).String())
	assert.True(t, Camel.Valid())
	assert.False(t, Case(0).Valid())
	assert.Equal(t, []Case{Title, Camel, Pascal, Snake, Kebab}, Cases())
}

func TestParseCase(t *testing.T) {
	t.Parallel()

	for _, c := range Cases() {
		got, err := ParseCase(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	got, err := ParseCase("  Snake ")
	require.NoError(t, err)
	assert.Equal(t, Snake, got)

	_, err = ParseCase("screaming")
	require.ErrorIs(t, err, ErrInvalidCase)
	assert.Contains(t, err.Error(), `"screaming"`)
}

func TestConversionTable(t *testing.T) {
	t.Parallel()

	const (
		title  = "My Example String"
		camel  = "myExampleString"
		pascal = "MyExampleString"
		snake  = "my_example_string"
		kebab  = "my-example-string"
	)

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"snake_to_camel", FromSnake(snake).ToCamel(), camel},
		{"snake_to_pascal", FromSnake(snake).ToPascal(), pascal},
		{"snake_to_kebab", FromSnake(snake).ToKebab(), kebab},
		{"snake_to_title", FromSnake(snake).ToTitle(), title},
		{"kebab_to_camel", FromKebab(kebab).ToCamel(), camel},
		{"kebab_to_pascal", FromKebab(kebab).ToPascal(), pascal},
		{"kebab_to_snake", FromKebab(kebab).ToSnake(), snake},
		{"kebab_to_title", FromKebab(kebab).ToTitle(), title},
		{"camel_to_snake", FromCamel(camel).ToSnake(), snake},
		{"camel_to_pascal", FromCamel(camel).ToPascal(), pascal},
		{"camel_to_kebab", FromCamel(camel).ToKebab(), kebab},
		{"camel_to_title", FromCamel(camel).ToTitle(), title},
		{"pascal_to_camel", FromPascal(pascal).ToCamel(), camel},
		{"pascal_to_snake", FromPascal(pascal).ToSnake(), snake},
		{"pascal_to_kebab", FromPascal(pascal).ToKebab(), kebab},
		{"pascal_to_title", FromPascal(pascal).ToTitle(), title},
		{"title_to_camel", FromTitle(title).ToCamel(), camel},
		{"title_to_snake", FromTitle(title).ToSnake(), snake},
		{"title_to_pascal", FromTitle(title).ToPascal(), pascal},
		{"title_to_kebab", FromTitle(title).ToKebab(), kebab},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.got)
		})
	}
}

func TestConvertMatchesSourceTypes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, FromSnake("user_id").ToCamel(), Convert(Snake, Camel, "user_id"))
	assert.Equal(t, FromTitle("Hello World").ToKebab(), Convert(Title, Kebab, "Hello World"))
	assert.Equal(t, "hello_world", Convert(Snake, Snake, "HELLO_World"))
	assert.Equal(t, "Hello World", Convert(Title, Title, "hELLO wORLD"))
}

func TestEmptyInput(t *testing.T) {
	t.Parallel()

	for _, from := range Cases() {
		for _, to := range Cases() {
			assert.Empty(t, Convert(from, to, ""), fmt.Sprintf("%s to %s", from, to))
		}
	}

	assert.Empty(t, FromTitle("").ToCamel())
	assert.Empty(t, FromKebab("").ToPascal())
}

func TestWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		from  Case
		input string
		want  []string
	}{
		{"title_lowercases", Title, "Hello BIG World", []string{"hello", "big", "world"}},
		{"snake_strips_whitespace", Snake, "my _exa mple", []string{"my", "example"}},
		{"kebab", Kebab, "a-b-c", []string{"a", "b", "c"}},
		{"camel_lone_capitals", Camel, "parseHTTP", []string{"parse", "h", "t", "t", "p"}},
		{"pascal_drops_lone_capitals", Pascal, "ParseHTTP", []string{"parse"}},
		{"pascal_unicode", Pascal, "ÉcoleÀParis", []string{"école", "paris"}},
		{"camel_unicode", Camel, "éteÀ", []string{"éte", "à"}},
		{"invalid_case", Case(99), "anything", nil},
		{"empty", Snake, "", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, Words(tc.from, tc.input))
		})
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	words := []string{"über", "STRASSE"}

	assert.Equal(t, "Über Strasse", Render(Title, words))
	assert.Equal(t, "überStrasse", Render(Camel, words))
	assert.Equal(t, "ÜberStrasse", Render(Pascal, words))
	assert.Equal(t, "über_strasse", Render(Snake, words))
	assert.Equal(t, "über-strasse", Render(Kebab, words))
	assert.Equal(t, "über STRASSE", Render(Case(0), words))
	assert.Empty(t, Render(Title, nil))
}

func TestMalformedInputIsBestEffort(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a__b", FromKebab("a__b").ToSnake())
	assert.Equal(t, "x-ray", FromTitle("X-ray").ToSnake())
	assert.Equal(t, "helloWorld", FromSnake("hello__world").ToCamel())
}
