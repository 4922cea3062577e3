package main

import (
	"os"

	"github.com/spf13/cobra"
)

type printOpts struct {
	hex  bool
	dump bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts printOpts

	var rootCmd = &cobra.Command{
		Use:   "calc",
		Short: "Evaluate expressions with the emulated 64-bit integer types",
		Long: `calc evaluates a single expression using num64.U64 or num64.I64.

Binary:  calc u64 <a> <op> <b>
         calc i64 <a> <op> <b>
Unary:   calc u64 not <a>
         calc i64 neg|not|abs <a>

op is one of: + - * / % & | ^ &^ << >> == != < <= > >=

Negative operands look like flags; put -- before them:

         calc i64 -- -7 / 2`,
		SilenceUsage: true,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().BoolVar(&opts.hex, "hex", false, "Print numeric results in hex")
	rootCmd.PersistentFlags().BoolVar(&opts.dump, "dump", false, "Dump the word pair of numeric results")

	var u64Cmd = &cobra.Command{
		Use:   "u64 <a> <op> <b>",
		Short: "Unsigned 64-bit expression",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := evalU64(args)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), v, opts)
		},
	}

	var i64Cmd = &cobra.Command{
		Use:   "i64 <a> <op> <b>",
		Short: "Signed 64-bit expression",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := evalI64(args)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), v, opts)
		},
	}

	var recipCmd = &cobra.Command{
		Use:   "recip <numer> <denom>",
		Short: "Find the multiply-and-shift reciprocal for a 32-bit divisor",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecip(cmd.OutOrStdout(), args[0], args[1])
		},
	}

	rootCmd.AddCommand(u64Cmd, i64Cmd, recipCmd)
	return rootCmd
}
