package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LerianStudio/lib-bitar/bitar"
	"github.com/LerianStudio/lib-bitar/bitar/log"
	"github.com/LerianStudio/lib-bitar/bitar/str"
)

func newCaseCommand() *cobra.Command {
	var from, to string

	c := &cobra.Command{
		Use:   "case <text>...",
		Short: "Convert text between title, camel, pascal, snake and kebab case",
		Example: `  bitar case --from snake --to camel hello_world
  bitar case --from title --to kebab Hello World`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := str.ParseCase(from)
			if err != nil {
				return err
			}

			dst, err := str.ParseCase(to)
			if err != nil {
				return err
			}

			input := strings.Join(args, " ")

			bitar.NewLoggerFromContext(cmd.Context()).Log(cmd.Context(), log.LevelDebug, "converting case",
				log.String("from", src.String()),
				log.String("to", dst.String()),
			)

			_, err = fmt.Fprintln(cmd.OutOrStdout(), str.Convert(src, dst, input))

			return err
		},
	}

	c.Flags().StringVar(&from, "from", "", "source case")
	c.Flags().StringVar(&to, "to", "", "target case")
	_ = c.MarkFlagRequired("from")
	_ = c.MarkFlagRequired("to")

	return c
}

func newSlugCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "slug <text>...",
		Short:   "Turn text into a URL-safe slug",
		Example: `  bitar slug "Olá, Mundo!"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), str.URI(strings.Join(args, " ")))

			return err
		},
	}
}
