package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/LerianStudio/lib-bitar/bitar/internal/nilcheck"
	"github.com/LerianStudio/lib-bitar/bitar/log"
)

type watchOptions struct {
	base     *Config
	logger   log.Logger
	onReload func(Config, error)
}

// WatchOption configures Watch.
type WatchOption func(*watchOptions)

// WithWatchBase sets the config the file patch is merged onto on every reload. It
// defaults to the store snapshot at the time Watch starts, so fields removed from the
// file fall back to that snapshot unless they were changed on the store since.
func WithWatchBase(cfg Config) WatchOption {
	return func(o *watchOptions) { o.base = &cfg }
}

// WithWatchLogger reports reloads and failures to logger.
func WithWatchLogger(logger log.Logger) WatchOption {
	return func(o *watchOptions) {
		if !nilcheck.Interface(logger) {
			o.logger = logger
		}
	}
}

// WithOnReload registers a callback run after every reload attempt with the applied
// config or the error that kept the previous snapshot in place.
func WithOnReload(fn func(Config, error)) WatchOption {
	return func(o *watchOptions) { o.onReload = fn }
}

// Watch applies the file at path to store once, then again whenever the file is
// written or recreated, until ctx is done. Invalid contents are logged and leave the
// current snapshot in place. The parent directory is watched so editors that replace
// the file on save are followed.
//
// Fields changed on the store after a reload, by Store.Apply or Bitar.Configure, keep
// their runtime value on later reloads; the file only sets the fields nobody
// overrode.
func Watch(ctx context.Context, path string, store *Store, opts ...WatchOption) error {
	o := watchOptions{logger: log.NewNop()}

	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	base := store.Load()
	if o.base != nil {
		base = *o.base
	}

	target := filepath.Clean(path)
	r := &reloader{path: target, base: base, store: store}

	if _, err := r.reload(); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config watch failed (%s): %w", target, err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("config watch failed (%s): %w", target, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(event.Name) != target || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}

			cfg, err := r.reload()
			if err != nil {
				o.logger.Log(ctx, log.LevelWarn, "config reload rejected",
					log.String("path", target), log.Err(err))
			} else {
				o.logger.Log(ctx, log.LevelInfo, "config reloaded",
					log.String("path", target), log.Locale(cfg.Locale))
			}

			if o.onReload != nil {
				o.onReload(cfg, err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			o.logger.Log(ctx, log.LevelWarn, "config watcher error", log.String("path", target), log.Err(err))
		}
	}
}

type reloader struct {
	path  string
	base  Config
	store *Store
	// fromFile is the config the file alone produced on the last successful reload.
	fromFile *Config
}

func (r *reloader) reload() (Config, error) {
	patch, err := Load(r.path)
	if err != nil {
		return r.store.Load(), err
	}

	next := Merge(r.base, patch)

	cfg, err := r.store.Update(func(current Config) Config {
		if r.fromFile == nil {
			return next
		}

		return keepOverrides(next, *r.fromFile, current)
	})
	if err != nil {
		return cfg, fmt.Errorf("replace config: %w", err)
	}

	r.fromFile = &next

	return cfg, nil
}

// keepOverrides returns next with every field that differs between fromFile and
// current taken from current.
func keepOverrides(next, fromFile, current Config) Config {
	if current.Locale != fromFile.Locale {
		next.Locale = current.Locale
	}

	next.Num.Currency = keepFormatOverrides(next.Num.Currency, fromFile.Num.Currency, current.Num.Currency)
	next.Num.Percent = keepFormatOverrides(next.Num.Percent, fromFile.Num.Percent, current.Num.Percent)

	return next
}

func keepFormatOverrides(next, fromFile, current FormatOptions) FormatOptions {
	if current.Currency != fromFile.Currency {
		next.Currency = current.Currency
	}

	if current.MinFractionDigits != fromFile.MinFractionDigits {
		next.MinFractionDigits = current.MinFractionDigits
	}

	if current.MaxFractionDigits != fromFile.MaxFractionDigits {
		next.MaxFractionDigits = current.MaxFractionDigits
	}

	if current.Spaced != fromFile.Spaced {
		next.Spaced = current.Spaced
	}

	return next
}
