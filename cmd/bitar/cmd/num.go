package cmd

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/LerianStudio/lib-bitar/bitar/num"
)

func newDistributeCommand() *cobra.Command {
	var (
		decimals int
		last     bool
	)

	c := &cobra.Command{
		Use:     "distribute <total> <groups>",
		Short:   "Split a total into groups without losing cents",
		Example: `  bitar distribute 11 6`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("total %q: %w", args[0], err)
			}

			groups, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("groups %q: %w", args[1], err)
			}

			remainder := num.RemainderFirst
			if last {
				remainder = num.RemainderLast
			}

			places := int32(decimals) //nolint:gosec // small flag value

			for _, share := range num.DistributeDecimal(total, groups, num.WithDecimals(decimals), num.WithRemainder(remainder)) {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), share.StringFixed(places)); err != nil {
					return err
				}
			}

			return nil
		},
	}

	c.Flags().IntVar(&decimals, "decimals", num.DefaultDecimals, "decimal places per share")
	c.Flags().BoolVar(&last, "last", false, "add the remainder to the last group instead of the first")

	return c
}

type numFlags struct {
	currency  string
	minDigits int
	maxDigits int
	unspaced  bool
	zeroSign  bool
}

func (f numFlags) options(cmd *cobra.Command) []num.FormatOption {
	var opts []num.FormatOption

	if f.currency != "" {
		opts = append(opts, num.WithCurrency(f.currency))
	}

	if cmd.Flags().Changed("min-digits") || cmd.Flags().Changed("max-digits") {
		opts = append(opts, num.WithFractionDigits(f.minDigits, f.maxDigits))
	}

	if f.unspaced {
		opts = append(opts, num.WithSpaced(false))
	}

	if f.zeroSign {
		opts = append(opts, num.WithZeroSign(true))
	}

	return opts
}

func newNumCommand(a *app) *cobra.Command {
	var flags numFlags

	styles := []string{"intl", "currency", "percent", "signed", "compact"}

	c := &cobra.Command{
		Use:     "num <style> <number>",
		Short:   "Format a number for the configured locale",
		Example: `  bitar --locale de-DE num currency 1234.5 --currency EUR`,
		Args: cobra.MatchAll(cobra.ExactArgs(2), func(_ *cobra.Command, args []string) error {
			if !slices.Contains(styles, args[0]) {
				return fmt.Errorf("unknown style %q, want one of %v", args[0], styles)
			}

			return nil
		}),
		ValidArgs: styles,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("number %q: %w", args[1], err)
			}

			f := a.bitar.Num()
			opts := flags.options(cmd)

			var out string

			switch args[0] {
			case "intl":
				out = f.Intl(n, opts...)
			case "currency":
				out = f.Currency(n, opts...)
			case "percent":
				out = f.Percent(n, opts...)
			case "signed":
				out = f.Signed(n, opts...)
			case "compact":
				out = f.Compact(n, opts...)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

			return err
		},
	}

	c.Flags().StringVar(&flags.currency, "currency", "", "ISO 4217 currency code")
	c.Flags().IntVar(&flags.minDigits, "min-digits", 0, "minimum fraction digits")
	c.Flags().IntVar(&flags.maxDigits, "max-digits", 0, "maximum fraction digits")
	c.Flags().BoolVar(&flags.unspaced, "unspaced", false, "drop whitespace between symbol and digits")
	c.Flags().BoolVar(&flags.zeroSign, "zero-sign", false, "sign zero when formatting signed numbers")

	return c
}
