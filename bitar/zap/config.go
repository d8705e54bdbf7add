package zap

import (
	"fmt"
	"strings"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const callerSkipFrames = 1

// Environment selects the baseline logger profile.
type Environment string

// Supported environments.
const (
	EnvironmentProduction  Environment = "production"
	EnvironmentStaging     Environment = "staging"
	EnvironmentDevelopment Environment = "development"
	EnvironmentLocal       Environment = "local"
)

// Config holds logger construction inputs. OTelLibraryName is optional; when set,
// entries are also forwarded to the OpenTelemetry logs bridge.
type Config struct {
	Environment     Environment
	Level           string
	OTelLibraryName string
}

func (c Config) validate() error {
	switch c.Environment {
	case EnvironmentProduction, EnvironmentStaging, EnvironmentDevelopment, EnvironmentLocal:
		return nil
	default:
		return fmt.Errorf("invalid environment %q", c.Environment)
	}
}

// New builds a JSON logger for cfg.
func New(cfg Config) (*Logger, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid zap config: %w", err)
	}

	level, err := resolveLevel(cfg)
	if err != nil {
		return nil, err
	}

	base := baseConfig(cfg.Environment)
	base.Level = level
	base.DisableStacktrace = true

	options := []zap.Option{zap.AddCallerSkip(callerSkipFrames)}

	if cfg.OTelLibraryName != "" {
		options = append(options, zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewTee(core, otelzap.NewCore(cfg.OTelLibraryName))
		}))
	}

	built, err := base.Build(options...)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return &Logger{logger: built, atomicLevel: level}, nil
}

func resolveLevel(cfg Config) (zap.AtomicLevel, error) {
	if strings.TrimSpace(cfg.Level) != "" {
		var parsed zapcore.Level
		if err := parsed.Set(cfg.Level); err != nil {
			return zap.AtomicLevel{}, fmt.Errorf("invalid level %q: %w", cfg.Level, err)
		}

		return zap.NewAtomicLevelAt(parsed), nil
	}

	if cfg.Environment == EnvironmentDevelopment || cfg.Environment == EnvironmentLocal {
		return zap.NewAtomicLevelAt(zapcore.DebugLevel), nil
	}

	return zap.NewAtomicLevelAt(zapcore.InfoLevel), nil
}

func baseConfig(environment Environment) zap.Config {
	cfg := zap.NewProductionConfig()
	if environment == EnvironmentDevelopment || environment == EnvironmentLocal {
		cfg = zap.NewDevelopmentConfig()
	}

	cfg.Encoding = "json"
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	return cfg
}
