/*
PURPOSE:
  High-level runner that orchestrates the metadata regeneration pass.
  Loops through docs -> metafiles, then rebuilds the aggregate index.

REQUIREMENTS:
  User-specified:
  - Regenerate the metafile next to every given doc.
  - Rebuild the top-level index from all metafiles under configs/.
  - Report drift so the pre-commit hook can block the commit.

  Implementation-discovered:
  - Needs to report progress to CLI.
  - Summary docs arrive in the pre-commit file list and must be filtered
    out before processing; an empty filtered list is a clean no-op that
    skips the index rebuild too.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/engine, internal/output

ERROR HANDLING:
  - Any parse or IO failure aborts the run. Metafiles already written
    stay on disk; there is no rollback.

IMPLEMENTATION RULES:
  - Iterate docs in argument order.
  - For each doc: Parse -> WriteYAML beside it.
  - Then: walk configs/ for metafiles -> sorted Import list -> WriteYAML.
  - Drift from any write makes the whole run report ErrOutOfDate.

USAGE:
  err := engine.Run(cfg, files)

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/engine/parser.go

MAINTENANCE:
  - Update iteration logic if per-file failure isolation is introduced.
*/

package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/poseworks/modelindex/internal/config"
	"github.com/poseworks/modelindex/internal/model"
	"github.com/poseworks/modelindex/internal/output"
)

// ErrOutOfDate reports that regenerating the metadata changed at least
// one file. The caller should stage the regenerated files and retry.
var ErrOutOfDate = errors.New("model metadata is out of date; stage the regenerated files and commit again")

// Run regenerates the metafile for every given doc, rebuilds the index,
// and returns ErrOutOfDate if any written file's content changed.
func Run(cfg *config.Config, files []string) error {
	docs := make([]string, 0, len(files))
	for _, f := range files {
		if filepath.Base(f) == cfg.SummaryFile {
			continue
		}
		docs = append(docs, f)
	}
	if len(docs) == 0 {
		output.Logger.Info("No docs to process")
		return nil
	}

	changed := false
	for _, doc := range docs {
		metafile, err := Parse(cfg, doc)
		if err != nil {
			return err
		}

		out := strings.TrimSuffix(doc, filepath.Ext(doc)) + cfg.MetafileExt
		diff, err := output.WriteYAML(metafile, out)
		if err != nil {
			return fmt.Errorf("writing metafile %s: %w", out, err)
		}
		output.Logger.Info("Wrote metafile",
			"doc", doc,
			"metafile", out,
			"models", len(metafile.Models),
			"changed", diff,
		)
		changed = changed || diff
	}

	diff, err := updateIndex(cfg)
	if err != nil {
		return err
	}
	changed = changed || diff

	if changed {
		return ErrOutOfDate
	}
	output.Logger.Info("Metadata up to date")
	return nil
}

// updateIndex rebuilds the aggregate index from every metafile found
// under the configs directory, sorted for determinism.
func updateIndex(cfg *config.Config) (bool, error) {
	configsDir := filepath.Join(cfg.Root, cfg.ConfigsDir)

	imports := []string{}
	if _, err := os.Stat(configsDir); err == nil {
		err = filepath.WalkDir(configsDir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || filepath.Ext(path) != cfg.MetafileExt {
				return nil
			}
			rel, err := filepath.Rel(cfg.Root, path)
			if err != nil {
				return err
			}
			imports = append(imports, filepath.ToSlash(rel))
			return nil
		})
		if err != nil {
			return false, fmt.Errorf("scanning %s: %w", configsDir, err)
		}
	}
	sort.Strings(imports)

	indexPath := filepath.Join(cfg.Root, cfg.IndexFile)
	diff, err := output.WriteYAML(&model.Index{Import: imports}, indexPath)
	if err != nil {
		return false, fmt.Errorf("writing index %s: %w", indexPath, err)
	}
	output.Logger.Info("Wrote index", "index", indexPath, "metafiles", len(imports), "changed", diff)
	return diff, nil
}
