package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	clueconfig "github.com/ParrotsDL/CLUE/core/config"
	clueerror "github.com/ParrotsDL/CLUE/core/error"
	"github.com/ParrotsDL/CLUE/utils/fmtx"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "clue",
	Short: "CLUE - configurable value formatting",
	Long: `CLUE formats integer and floating-point values through explicit,
configurable formatters.

Commands:
  int       - format an integer (base, width, padding, sign, case)
  float     - format a float (fixed, scientific or shortest notation)
  profiles  - list the formatter profiles of a configuration file
  version   - show version information`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError("command failed", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "profile configuration file (.toml, .yaml)")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}

// loadProfiles loads the configured profile file; commands that need a
// profile call this and fail cleanly when --config was not given.
func loadProfiles() (*clueconfig.Config, error) {
	if cfgFile == "" {
		return nil, clueerror.New("no configuration file given, use --config").
			WithCode(clueerror.CodeInvalidInput).
			WithOperation("cmd.loadProfiles")
	}
	return clueconfig.Load(cfgFile)
}

// styleFlags assembles the fmtx flag set from the shared boolean style
// switches of the int and float commands.
func styleFlags(zero, plus, upper bool) fmtx.Flags {
	var flags fmtx.Flags
	if zero {
		flags |= fmtx.PadZeros
	}
	if plus {
		flags |= fmtx.PlusSign
	}
	if upper {
		flags |= fmtx.UpperCase
	}
	return flags
}
