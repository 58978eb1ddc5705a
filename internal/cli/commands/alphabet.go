// Package commands holds the debase subcommands.
package commands

import (
	"github.com/ian-shakespeare/debase/internal/cli/config"
	"github.com/ian-shakespeare/debase/internal/convert"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewAlphabetCommand creates the alphabet command.
func NewAlphabetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "alphabet",
		Short: "Show the digit alphabet for a base",
		Long: `Print every digit of a base alongside its decimal value.

The alphabet is fixed across bases: 0-9 cover values 0 through 9, A-Z
cover 10 through 35, and a-z cover 36 through 61.`,
		Example: `  # The sixteen hexadecimal digits
  debase alphabet --base 16

  # The full base 62 alphabet
  debase alphabet --base 62`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromContext(cmd.Context())
			if cfg.Base < convert.MinBase || cfg.Base > convert.MaxBase {
				return convert.NewInvalidBaseError(cfg.Base)
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Digit", "Value"})
			for value := int64(0); value < int64(cfg.Base); value++ {
				char, _ := convert.DigitRune(value)
				t.AppendRow(table.Row{string(char), value})
			}
			t.Render()

			return nil
		},
	}
}
