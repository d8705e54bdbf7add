package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LerianStudio/lib-bitar/bitar/date"
)

func newDateCommand(a *app) *cobra.Command {
	var dateStyle, timeStyle, zone, layout string

	c := &cobra.Command{
		Use:     "date <value>",
		Short:   "Format an RFC 3339 timestamp or plain date",
		Example: `  bitar --locale en-GB date 2024-01-01T15:04:05Z --date-style long --time-style medium`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := date.ParseStyle(dateStyle)
			if err != nil {
				return err
			}

			ts, err := date.ParseStyle(timeStyle)
			if err != nil {
				return err
			}

			opts := []date.Option{date.WithDateStyle(ds), date.WithTimeStyle(ts)}
			if zone != "" {
				opts = append(opts, date.WithTimeZone(zone))
			}

			if layout != "" {
				opts = append(opts, date.WithLayout(layout))
			}

			out, err := a.bitar.Date().IntlString(args[0], opts...)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

			return err
		},
	}

	c.Flags().StringVar(&dateStyle, "date-style", "", "full, long, medium, short or none")
	c.Flags().StringVar(&timeStyle, "time-style", "", "full, long, medium, short or none")
	c.Flags().StringVar(&zone, "zone", "", "IANA time zone, e.g. Europe/Berlin")
	c.Flags().StringVar(&layout, "layout", "", "Go reference layout with translated names, overrides the styles")

	return c
}
