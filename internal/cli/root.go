// Package cli provides the command-line interface for debase.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ian-shakespeare/debase/internal/cli/commands"
	"github.com/ian-shakespeare/debase/internal/cli/config"
	"github.com/ian-shakespeare/debase/internal/convert"
	"github.com/spf13/cobra"
)

var cfgFile string

// Version information (set at build time).
var Version = "0.1.0"

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "debase [flags] <input>...",
		Short: "debase - arbitrary base to decimal converter",
		Long: `debase converts numbers, arithmetic expressions, and encoded character
strings from any base between 2 and 62 into decimal.

Digits beyond 9 come from a fixed alphabet: A-Z for values 10 through
35, then a-z for values 36 through 61.`,
		Example: `  # Convert a hexadecimal number
  debase --base 16 1A

  # Rewrite an equation's numerals in decimal
  debase --mode equation --base 2 "1010 + 101"

  # Decode octal character codes into text
  debase --mode string --base 8 110 145 154 154 157`,
		Version: Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			cmd.SetContext(config.WithContext(cmd.Context(), cfg))

			if cfg.Verbose {
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					fmt.Fprintf(os.Stderr, "Using config file: %s\n", configFile)
				}
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./debase.yaml)")
	rootCmd.PersistentFlags().StringP("mode", "m", config.DefaultMode, "input mode (number|equation|string)")
	rootCmd.PersistentFlags().IntP("base", "b", config.DefaultBase, "base of the input numerals (2-62)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	// Register completion for mode flag
	_ = rootCmd.RegisterFlagCompletionFunc("mode", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"number", "equation", "string"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Add subcommands
	rootCmd.AddCommand(commands.NewAlphabetCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(Version))

	return rootCmd
}

// runConvert feeds the joined arguments through the converter and
// prints the labeled result. Conversion failures come back as plain
// errors so Execute can render them.
func runConvert(cmd *cobra.Command, args []string) error {
	cfg := config.FromContext(cmd.Context())

	result := convert.Convert(strings.Join(args, " "), convert.InputMode(cfg.Mode), cfg.Base)
	if !result.Ok {
		return errors.New(result.Message)
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), result.Text)
	return err
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
