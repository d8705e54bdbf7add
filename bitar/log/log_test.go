//go:build unit

package log

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", "debug", LevelDebug, false},
		{"info", "info", LevelInfo, false},
		{"warn", "warn", LevelWarn, false},
		{"warning_alias", "warning", LevelWarn, false},
		{"error", "error", LevelError, false},
		{"uppercase", "INFO", LevelInfo, false},
		{"padded", "  debug ", LevelDebug, false},
		{"fatal_is_unknown", "fatal", LevelError, true},
		{"empty", "", LevelError, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseLevel(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidLevel)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLevelStringRoundTrips(t *testing.T) {
	t.Parallel()

	for _, level := range []Level{LevelError, LevelWarn, LevelInfo, LevelDebug} {
		parsed, err := ParseLevel(level.String())
		require.NoError(t, err)
		assert.Equal(t, level, parsed)
	}

	assert.Equal(t, "unknown", Level(42).String())
}

func TestFieldConstructors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	assert.Equal(t, Field{Key: "currency", Value: "EUR"}, String("currency", "EUR"))
	assert.Equal(t, Field{Key: "chunk", Value: 3}, Int("chunk", 3))
	assert.Equal(t, Field{Key: "error", Value: boom}, Err(boom))
	assert.Equal(t, Field{Key: "raw", Value: []int{1}}, Any("raw", []int{1}))
	assert.Equal(t, Field{Key: "header_id", Value: "req-1"}, HeaderID("req-1"))
	assert.Equal(t, Field{Key: "locale", Value: "es-ES"}, Locale("es-ES"))
	assert.Equal(t, Field{Key: "locale", Value: "system"}, Locale(""))
}

func TestNopLogger(t *testing.T) {
	t.Parallel()

	logger := NewNop()

	assert.NotPanics(t, func() {
		logger.Log(context.Background(), LevelError, "dropped", String("k", "v"))
	})
	assert.False(t, logger.Enabled(LevelError))
	assert.Equal(t, logger, logger.With(String("k", "v")))
	assert.Equal(t, logger, logger.WithGroup("group"))
	assert.NoError(t, logger.Sync(context.Background()))
}
