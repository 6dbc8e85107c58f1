/*
PURPOSE:
  Parses one markdown benchmark doc into a metafile record.
  Core engine for the doc convention: annotation blocks + results tables.

REQUIREMENTS:
  User-specified:
  - Collect architecture names and paper URLs from annotation blocks.
  - Convert each results-table row into a model record.
  - Derive the task label from the summary doc three levels up.

  Implementation-discovered:
  - The doc convention is positional (4-line annotation blocks, raw cell
    text carrying markdown links), so this is a cursor-based line scanner
    rather than a markdown AST walk.
  - Malformed docs must fail loudly; the pre-commit hook is the only
    place mistakes get caught before the metadata ships.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine/runner.go, internal/cli
  - Uses: internal/config, internal/model

ERROR HANDLING:
  - Malformed annotation blocks, missing Arch/ckpt columns, short rows,
    and unparseable numbers abort with a wrapped error carrying the file
    and line. Rows whose Arch cell has no link are silently skipped.

IMPLEMENTATION RULES:
  - Scanner states: plain scanning, 4-line annotation skip, table skip
    bounded by the first non-pipe line. Nothing else.
  - Header cells are trimmed; data row cells are kept raw and only
    trimmed where numbers are parsed.

USAGE:
  metafile, err := engine.Parse(cfg, "configs/body/.../resnet_coco.md")

SELF-HEALING INSTRUCTIONS:
  - If docs grow a new annotation type, extend the type checks where
    ALGORITHM/BACKBONE/DATASET are matched.

RELATED FILES:
  - internal/engine/metrics.go
  - internal/engine/runner.go

MAINTENANCE:
  - Update when the doc convention changes shape.
*/

package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/poseworks/modelindex/internal/config"
	"github.com/poseworks/modelindex/internal/model"
)

var anchorRe = regexp.MustCompile(`<a href="(.*)">(.*)</a>`)

// Parse converts one markdown doc into a metafile record: the collection
// it describes plus one model per results-table row.
func Parse(cfg *config.Config, docPath string) (*model.Metafile, error) {
	data, err := os.ReadFile(docPath)
	if err != nil {
		return nil, fmt.Errorf("reading doc: %w", err)
	}

	relDoc, err := filepath.Rel(cfg.Root, docPath)
	if err != nil {
		return nil, fmt.Errorf("relativizing %s against root %s: %w", docPath, cfg.Root, err)
	}

	task, err := taskName(cfg, relDoc)
	if err != nil {
		return nil, err
	}

	collectionName := strings.TrimSuffix(filepath.Base(docPath), filepath.Ext(docPath))
	collection := &model.Collection{
		Name:     collectionName,
		Metadata: model.CollectionMetadata{Architecture: []string{}},
		README:   filepath.ToSlash(relDoc),
		Paper:    []string{},
	}

	models := []*model.Model{}
	var dataset string
	datasetSet := false

	lines := strings.Split(string(data), "\n")
	i := 0
	for i < len(lines) {
		switch {
		// Annotation block: a comment opener, with the anchor on line i+3.
		case strings.HasPrefix(lines[i], "<!"):
			if i+3 >= len(lines) {
				return nil, fmt.Errorf("%s:%d: annotation block truncated", docPath, i+1)
			}
			m := anchorRe.FindStringSubmatch(lines[i+3])
			if m == nil {
				return nil, fmt.Errorf("%s:%d: annotation block has no anchor tag", docPath, i+1)
			}
			url := m[1]
			name := strings.TrimSpace(strings.SplitN(m[2], "(", 2)[0])
			if strings.Contains(lines[i], "ALGORITHM") || strings.Contains(lines[i], "BACKBONE") {
				collection.Metadata.Architecture = append(collection.Metadata.Architecture, name)
			} else if strings.Contains(lines[i], "DATASET") {
				dataset = name
				datasetSet = true
			}
			collection.Paper = append(collection.Paper, url)
			i += 4

		// Results table: a pipe row followed by a header separator.
		case strings.HasPrefix(lines[i], "|") && i+1 < len(lines) && strings.HasPrefix(lines[i+1], "| :"):
			parsed, next, err := parseTable(cfg, docPath, lines, i, collectionName, task, dataset, datasetSet)
			if err != nil {
				return nil, err
			}
			models = append(models, parsed...)
			i = next

		default:
			i++
		}
	}

	return &model.Metafile{
		Collections: []*model.Collection{collection},
		Models:      models,
	}, nil
}

// parseTable consumes one table starting at the header line and returns
// the models it yields plus the index of the first line after the table.
func parseTable(cfg *config.Config, docPath string, lines []string, start int,
	collectionName, task, dataset string, datasetSet bool) ([]*model.Model, int, error) {

	cols := splitCells(lines[start], true)

	archIdx := indexOf(cols, "Arch")
	if archIdx == -1 {
		return nil, 0, fmt.Errorf("%s:%d: table has no Arch column", docPath, start+1)
	}
	ckptIdx := indexOf(cols, "ckpt")
	if ckptIdx == -1 {
		return nil, 0, fmt.Errorf("%s:%d: table has no ckpt column", docPath, start+1)
	}
	flopsIdx := indexOf(cols, "FLOPs")
	paramsIdx := indexOf(cols, "Params")
	metricNames, metricIdxs := collateMetrics(cols)

	prefix := cfg.ConfigsDir + "/"
	var models []*model.Model

	j := start + 2
	for ; j < len(lines) && strings.HasPrefix(lines[j], "|"); j++ {
		cells := splitCells(lines[j], false)
		if archIdx >= len(cells) {
			return nil, 0, fmt.Errorf("%s:%d: row has %d cells, Arch column is %d", docPath, j+1, len(cells), archIdx)
		}

		// Rows without a link in the Arch cell are spacers, not data.
		if !strings.Contains(cells[archIdx], "](") {
			continue
		}

		configTarget, err := linkTarget(cells[archIdx])
		if err != nil {
			return nil, 0, fmt.Errorf("%s:%d: Arch cell: %w", docPath, j+1, err)
		}
		if ckptIdx >= len(cells) {
			return nil, 0, fmt.Errorf("%s:%d: row has %d cells, ckpt column is %d", docPath, j+1, len(cells), ckptIdx)
		}
		ckpt, err := linkTarget(cells[ckptIdx])
		if err != nil {
			return nil, 0, fmt.Errorf("%s:%d: ckpt cell: %w", docPath, j+1, err)
		}

		// Strip a single leading "./" or "/"; anything else, including a
		// "../" parent reference, is kept verbatim.
		configPath := strings.TrimPrefix(configTarget, "./")
		configPath = strings.TrimPrefix(configPath, "/")
		name := strings.TrimSuffix(configPath, filepath.Ext(configPath))
		name = strings.Replace(name, prefix, "", 1)
		name = strings.ReplaceAll(name, "/", "--")

		if !datasetSet {
			return nil, 0, fmt.Errorf("%s:%d: data row before any DATASET annotation", docPath, j+1)
		}

		metadata := model.ModelMetadata{TrainingData: dataset}
		if flopsIdx != -1 {
			v, err := parseCellFloat(cells, flopsIdx, docPath, j)
			if err != nil {
				return nil, 0, err
			}
			metadata.FLOPs = &v
		}
		if paramsIdx != -1 {
			v, err := parseCellFloat(cells, paramsIdx, docPath, j)
			if err != nil {
				return nil, 0, err
			}
			metadata.Parameters = &v
		}

		metrics := yaml.MapSlice{}
		for k, metricIdx := range metricIdxs {
			v, err := parseCellFloat(cells, metricIdx, docPath, j)
			if err != nil {
				return nil, 0, err
			}
			metrics = append(metrics, yaml.MapItem{Key: metricNames[k], Value: v})
		}

		models = append(models, &model.Model{
			Name:         name,
			InCollection: collectionName,
			Config:       configPath,
			Metadata:     metadata,
			Results: []model.Result{{
				Task:    task,
				Dataset: dataset,
				Metrics: metrics,
			}},
			Weights: ckpt,
		})
	}

	return models, j, nil
}

// taskName reads the task label from the summary doc of the directory
// three levels above the doc: its first line, heading marker stripped.
func taskName(cfg *config.Config, relDoc string) (string, error) {
	parts := strings.Split(filepath.ToSlash(relDoc), "/")
	keep := len(parts) - 3
	if keep < 1 {
		keep = 1
	}
	taskDir := filepath.Join(append([]string{cfg.Root}, parts[:keep]...)...)
	summaryPath := filepath.Join(taskDir, cfg.SummaryFile)

	data, err := os.ReadFile(summaryPath)
	if err != nil {
		return "", fmt.Errorf("reading task summary: %w", err)
	}
	line := string(data)
	if idx := strings.IndexByte(line, '\n'); idx != -1 {
		line = line[:idx]
	}
	if len(line) >= 2 {
		line = line[2:]
	} else {
		line = ""
	}
	return strings.TrimSpace(line), nil
}

// splitCells splits a pipe-delimited table line into cells, dropping the
// empty artifacts outside the outer pipes.
func splitCells(line string, trim bool) []string {
	parts := strings.Split(line, "|")
	if len(parts) < 2 {
		return nil
	}
	parts = parts[1 : len(parts)-1]
	if trim {
		for i, p := range parts {
			parts[i] = strings.TrimSpace(p)
		}
	}
	return parts
}

// linkTarget extracts the target of the first markdown link in a cell.
func linkTarget(cell string) (string, error) {
	left := strings.Index(cell, "](")
	if left == -1 {
		return "", fmt.Errorf("no markdown link in %q", cell)
	}
	left += 2
	right := strings.Index(cell[left:], ")")
	if right == -1 {
		return "", fmt.Errorf("unterminated markdown link in %q", cell)
	}
	return cell[left : left+right], nil
}

func parseCellFloat(cells []string, idx int, docPath string, line int) (float64, error) {
	if idx >= len(cells) {
		return 0, fmt.Errorf("%s:%d: row has %d cells, want column %d", docPath, line+1, len(cells), idx)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(cells[idx]), 64)
	if err != nil {
		return 0, fmt.Errorf("%s:%d: column %d is not a number: %w", docPath, line+1, idx, err)
	}
	return v, nil
}

func indexOf(cols []string, name string) int {
	for i, c := range cols {
		if c == name {
			return i
		}
	}
	return -1
}
