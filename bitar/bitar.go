package bitar

import (
	"context"
	"errors"
	"fmt"

	"github.com/LerianStudio/lib-bitar/bitar/config"
	"github.com/LerianStudio/lib-bitar/bitar/date"
	"github.com/LerianStudio/lib-bitar/bitar/internal/nilcheck"
	"github.com/LerianStudio/lib-bitar/bitar/log"
	"github.com/LerianStudio/lib-bitar/bitar/num"
)

var (
	// ErrNilBitar is returned when a method is called on a nil *Bitar.
	ErrNilBitar = errors.New("bitar is nil")
	// ErrConfigFailed is returned by New when an option could not be applied.
	ErrConfigFailed = errors.New("bitar configuration failed")
)

// Option configures a Bitar built by New.
type Option func(*Bitar)

// WithLogger sets the logger used to report configuration changes. Without it the
// logger carried by the call's context is used.
func WithLogger(logger log.Logger) Option {
	return func(b *Bitar) {
		if !nilcheck.Interface(logger) {
			b.logger = logger
		}
	}
}

// WithConfig layers patch onto the defaults.
func WithConfig(patch config.Patch) Option {
	return func(b *Bitar) {
		b.patches = append(b.patches, patch)
	}
}

// WithConfigFile layers the TOML or YAML file at path onto the defaults.
func WithConfigFile(path string) Option {
	return func(b *Bitar) {
		patch, err := config.Load(path)
		if err != nil {
			b.configErrors = append(b.configErrors, err)
			return
		}

		b.patches = append(b.patches, patch)
	}
}

// WithEnv layers BITAR_* environment variables onto the defaults, reading missing
// keys from dotenvFiles.
func WithEnv(dotenvFiles ...string) Option {
	return func(b *Bitar) {
		patch, err := config.FromEnv(dotenvFiles...)
		if err != nil {
			b.configErrors = append(b.configErrors, err)
			return
		}

		b.patches = append(b.patches, patch)
	}
}

// Bitar owns a configuration snapshot and builds formatters from it. It is safe for
// concurrent use; Configure swaps the snapshot atomically.
type Bitar struct {
	store        *config.Store
	logger       log.Logger
	patches      []config.Patch
	configErrors []error
}

// New builds a Bitar from the defaults and the given options, applied in order.
func New(opts ...Option) (*Bitar, error) {
	b := &Bitar{store: config.NewStore(config.Default())}

	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}

	if len(b.configErrors) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrConfigFailed, errors.Join(b.configErrors...))
	}

	if _, err := b.store.Apply(config.Combine(b.patches...)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigFailed, err)
	}

	b.patches = nil

	return b, nil
}

// Configure merges patches onto the current snapshot and swaps the result in. On a
// validation error the previous snapshot stays active.
func (b *Bitar) Configure(ctx context.Context, patches ...config.Patch) (config.Config, error) {
	if b == nil {
		return config.Default(), ErrNilBitar
	}

	logger := b.logger
	if logger == nil {
		logger = NewLoggerFromContext(ctx)
	}

	cfg, err := b.store.Apply(config.Combine(patches...))
	if err != nil {
		logger.Log(ctx, log.LevelWarn, "bitar configure rejected", log.Err(err))

		return cfg, err
	}

	logger.Log(ctx, log.LevelDebug, "bitar configured",
		log.Locale(cfg.Locale),
		log.String("currency", cfg.Num.Currency.Currency),
	)

	return cfg, nil
}

// Config returns the current snapshot.
func (b *Bitar) Config() config.Config {
	if b == nil {
		return config.Default()
	}

	return b.store.Load()
}

// Store exposes the underlying store, for example to hand it to config.Watch.
func (b *Bitar) Store() *config.Store {
	if b == nil {
		return nil
	}

	return b.store
}

// Num returns a number formatter bound to the current snapshot.
func (b *Bitar) Num() num.Formatter {
	return num.NewFormatter(b.Config())
}

// Date returns a date formatter bound to the current snapshot.
func (b *Bitar) Date() date.Formatter {
	return date.NewFormatter(b.Config())
}

var defaultInstance = &Bitar{store: config.NewStore(config.Default())}

// Default returns the shared instance behind the package-level functions.
func Default() *Bitar {
	return defaultInstance
}

// Configure changes the shared default instance.
func Configure(ctx context.Context, patches ...config.Patch) (config.Config, error) {
	return defaultInstance.Configure(ctx, patches...)
}

// Num returns a number formatter bound to the default instance.
func Num() num.Formatter {
	return defaultInstance.Num()
}

// Date returns a date formatter bound to the default instance.
func Date() date.Formatter {
	return defaultInstance.Date()
}
