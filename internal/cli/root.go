/*
PURPOSE:
  Defines the root Cobra command for the modelindex CLI.
  Handles global flags and command initialization.

REQUIREMENTS:
  User-specified:
  - Provide a CLI interface.
  - Support global flags like --config and --root.

  Implementation-discovered:
  - Needs to expose an Execute() function for main.go.
  - Usage text must not be printed when `update` reports drift; the
    error alone is the signal the pre-commit hook relays.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/modelindex/main.go
  - Calls: Child commands (update, show)

ERROR HANDLING:
  - Returns error to main.go for exit code handling.

IMPLEMENTATION RULES:
  - Use `PersistentFlags()` for flags available to all subcommands.
  - Keep Run logic in subcommands, Root is usually empty or helps.

USAGE:
  Called by main.go.

SELF-HEALING INSTRUCTIONS:
  - If adding new global flags, add them to init().

RELATED FILES:
  - cmd/modelindex/main.go

MAINTENANCE:
  - Update when adding new global configuration options.
*/

package cli

import (
	"github.com/spf13/cobra"
)

var (
	// cfgFile stores the path to the config file (if specified via flag)
	cfgFile string

	// rootOverride points the tool at a project root other than the CWD.
	rootOverride string

	rootCmd = &cobra.Command{
		Use:           "modelindex",
		Short:         "Generate model metafiles and the model index from markdown docs",
		Long:          `Extracts model metadata from markdown benchmark docs and keeps the YAML metafiles and top-level model index in sync. Use 'update --help' for the pre-commit entry point.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./modelindex.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootOverride, "root", "r", "", "project root directory (default from config, else .)")
}
