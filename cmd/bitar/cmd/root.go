// Package cmd holds the bitar command line: small wrappers that expose the string,
// number and date helpers to shell scripts.
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LerianStudio/lib-bitar/bitar"
	"github.com/LerianStudio/lib-bitar/bitar/config"
	blog "github.com/LerianStudio/lib-bitar/bitar/log"
	bzap "github.com/LerianStudio/lib-bitar/bitar/zap"
)

type app struct {
	cfgFile  string
	dotenv   []string
	env      bool
	verbose  bool
	logLevel string
	locale   string

	bitar  *bitar.Bitar
	logger *bzap.Logger
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand builds the command tree. Every call returns an independent tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "bitar",
		Short: "String, number and date helpers",
		Long: `bitar exposes locale-aware formatting and text helpers.

Configuration is layered: built-in defaults, then --config (TOML or YAML),
then BITAR_* environment variables when --env is set, then --locale.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: a.teardown,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	flags.BoolVar(&a.env, "env", false, "read BITAR_* environment variables")
	flags.StringSliceVar(&a.dotenv, "dotenv", nil, "dotenv files read with --env")
	flags.StringVar(&a.locale, "locale", "", "BCP 47 locale overriding the configured one")
	flags.StringVar(&a.logLevel, "log-level", "warn", "error, warn, info or debug")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "shorthand for --log-level debug")

	root.AddCommand(
		newCaseCommand(),
		newSlugCommand(),
		newDistributeCommand(),
		newNumCommand(a),
		newDateCommand(a),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	level, err := blog.ParseLevel(a.logLevel)
	if err != nil {
		return err
	}

	if a.verbose {
		level = blog.LevelDebug
	}

	logger, err := bzap.New(bzap.Config{Environment: bzap.EnvironmentLocal, Level: level.String()})
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}

	a.logger = logger

	opts := []bitar.Option{bitar.WithLogger(logger)}

	if a.cfgFile != "" {
		opts = append(opts, bitar.WithConfigFile(a.cfgFile))
	}

	if a.env || len(a.dotenv) > 0 {
		opts = append(opts, bitar.WithEnv(a.dotenv...))
	}

	if a.locale != "" {
		locale := a.locale
		opts = append(opts, bitar.WithConfig(config.Patch{Locale: &locale}))
	}

	b, err := bitar.New(opts...)
	if err != nil {
		return err
	}

	a.bitar = b

	ctx := bitar.ContextWithLogger(commandContext(cmd), logger)
	cmd.SetContext(ctx)

	return nil
}

func (a *app) teardown(cmd *cobra.Command, _ []string) {
	if a.logger != nil {
		_ = a.logger.Sync(commandContext(cmd))
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
