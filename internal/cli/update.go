/*
PURPOSE:
  Defines the 'update' subcommand.
  Regenerates metafiles for the given markdown docs plus the model index.

REQUIREMENTS:
  User-specified:
  - Accept the changed file list as positional arguments (pre-commit
    passes the staged paths).
  - Fail the command when any output file changed, so the hook blocks
    the commit.

  Implementation-discovered:
  - Need to load config first.
  - Apply flag overrides to config.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.Run()
  - Uses: internal/config

ERROR HANDLING:
  - Returns error if config load fails or engine run fails.
  - engine.ErrOutOfDate propagates as an ordinary error; exit status 1
    is what the hook cares about.

IMPLEMENTATION RULES:
  - Setup flags in init().
  - Logic: Load Config -> Override -> Engine.Run.

USAGE:
  modelindex update configs/body/2d_kpt/topdown_heatmap/coco/resnet_coco.md

SELF-HEALING INSTRUCTIONS:
  - Check flag names match Config struct fields generally.

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new CLI overrides.
*/

package cli

import (
	"github.com/spf13/cobra"

	"github.com/poseworks/modelindex/internal/config"
	"github.com/poseworks/modelindex/internal/engine"
)

var indexFileOverride string

var updateCmd = &cobra.Command{
	Use:   "update [files...]",
	Short: "Regenerate metafiles for the given docs and rebuild the model index",
	Long: `Parses each markdown benchmark doc into a YAML metafile written next to it,
then rebuilds the top-level model index from every metafile under the configs
directory. Docs named like the summary file (README.md by default) are
filtered out of the argument list before processing.

The command fails when any regenerated file differs from what was on disk,
which lets a pre-commit hook block commits that skipped regeneration. The
regenerated files are left in place; staging them and committing again
resolves the failure.`,
	Example: `  # Typical pre-commit invocation with the staged doc paths
  modelindex update configs/body/2d_kpt/topdown_heatmap/coco/resnet_coco.md

  # Run against a checkout somewhere else
  modelindex update -r ~/src/pose-zoo configs/hand/2d_kpt/hrnet_onehand.md`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Config
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		// 2. Overrides
		if rootOverride != "" {
			cfg.Root = rootOverride
		}
		if indexFileOverride != "" {
			cfg.IndexFile = indexFileOverride
		}

		// 3. Execution
		return engine.Run(cfg, args)
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().StringVar(&indexFileOverride, "index-file", "", "index file name relative to the project root (default model-index.yml)")
}
