/*
PURPOSE:
  Defines the 'show' subcommand.
  Helps debug doc parsing without touching any file on disk.

REQUIREMENTS:
  User-specified:
  - Preview the metafile a doc would produce.

  Implementation-discovered:
  - Useful validation step before wiring a doc into the pre-commit hook.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.Parse()

ERROR HANDLING:
  - Prints error if the doc is malformed.

IMPLEMENTATION RULES:
  - Simple output to stdout.

USAGE:
  modelindex show configs/body/2d_kpt/topdown_heatmap/coco/resnet_coco.md

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/engine/parser.go

MAINTENANCE:
  - None.
*/

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/poseworks/modelindex/internal/config"
	"github.com/poseworks/modelindex/internal/engine"
	"github.com/poseworks/modelindex/internal/output"
)

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print the metafile a markdown doc would produce",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if rootOverride != "" {
			cfg.Root = rootOverride
		}

		metafile, err := engine.Parse(cfg, args[0])
		if err != nil {
			return err
		}

		data, err := output.MarshalYAML(metafile)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
