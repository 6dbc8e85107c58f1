/*
PURPOSE:
  Defines the core data structures used throughout modelindex.
  These models mirror the metafile schema the model zoo tooling consumes.

REQUIREMENTS:
  User-specified:
  - Record collection metadata (architectures, paper URLs, source doc).
  - Record one model per results-table row: config path, checkpoint,
    training data, optional FLOPs/params, benchmark metrics.

  Implementation-discovered:
  - YAML key order must equal construction order; consumers diff these
    files byte-for-byte, so keys are never alphabetized.
  - Metric keys carry insertion order, which rules out a plain Go map;
    yaml.MapSlice from goccy/go-yaml preserves it.

ARCHITECTURE INTEGRATION:
  - Used by: internal/engine, internal/output
  - Shared across boundaries.

ERROR HANDLING:
  - None (pure data structs).

IMPLEMENTATION RULES:
  - Keep structs simple and public.
  - Struct field order IS the serialized key order; do not reorder fields.

USAGE:
  m := model.Model{...}

SELF-HEALING INSTRUCTIONS:
  - If new metadata is needed, add a field in schema position and update
    the parser.

RELATED FILES:
  - internal/engine/parser.go
  - internal/output/yaml.go

MAINTENANCE:
  - Update when the metafile schema grows new fields.
*/

package model

import (
	"github.com/goccy/go-yaml"
)

// Metafile is the full document written next to each markdown doc:
// the collection it describes plus every model parsed from its tables.
type Metafile struct {
	Collections []*Collection `yaml:"Collections"`
	Models      []*Model      `yaml:"Models"`
}

// Collection is the architecture-level grouping described by one doc.
type Collection struct {
	Name     string             `yaml:"Name"`
	Metadata CollectionMetadata `yaml:"Metadata"`
	README   string             `yaml:"README"`
	Paper    []string           `yaml:"Paper"`
}

// CollectionMetadata holds the architecture names declared by the doc's
// ALGORITHM and BACKBONE annotation blocks.
type CollectionMetadata struct {
	Architecture []string `yaml:"Architecture"`
}

// Model is one benchmarked configuration: a single results-table row.
type Model struct {
	Name         string        `yaml:"Name"`
	InCollection string        `yaml:"In Collection"`
	Config       string        `yaml:"Config"`
	Metadata     ModelMetadata `yaml:"Metadata"`
	Results      []Result      `yaml:"Results"`
	Weights      string        `yaml:"Weights"`
}

// ModelMetadata describes how a model was trained. FLOPs and Parameters
// are omitted entirely when the source table has no such columns.
type ModelMetadata struct {
	TrainingData string   `yaml:"Training Data"`
	FLOPs        *float64 `yaml:"FLOPs,omitempty"`
	Parameters   *float64 `yaml:"Parameters,omitempty"`
}

// Result holds the benchmark numbers of one model on one dataset.
// Metrics preserves table column order.
type Result struct {
	Task    string        `yaml:"Task"`
	Dataset string        `yaml:"Dataset"`
	Metrics yaml.MapSlice `yaml:"Metrics"`
}

// Index is the aggregate file at the project root referencing every
// metafile under the configs directory, sorted ascending.
type Index struct {
	Import []string `yaml:"Import"`
}
