/*
PURPOSE:
  Serializes records to ordered YAML and detects drift against what was
  on disk. This is the tool's only side effect besides the exit status.

REQUIREMENTS:
  User-specified:
  - Key order must equal construction order (never alphabetized).
  - Overwrite unconditionally; report whether the bytes changed.

  Implementation-discovered:
  - goccy/go-yaml preserves struct field order and supports MapSlice for
    insertion-ordered maps, which yaml.v3 has no equivalent for.
  - A file that did not exist before counts as changed.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine, internal/cli (show)
  - Consumes: internal/model types

ERROR HANDLING:
  - Returns error on read (other than not-exist), marshal, or write failure.

IMPLEMENTATION RULES:
  - Use goccy MarshalWithOptions: 2-space indent, sequences flush left.
  - Compare byte-for-byte; no semantic YAML diffing.

USAGE:
  changed, err := output.WriteYAML(metafile, "configs/foo/bar.yml")

SELF-HEALING INSTRUCTIONS:
  - If emitted formatting shifts after a goccy upgrade, every metafile
    will report drift once; regenerate and commit the lot.

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - Update options here if the consuming tooling changes its YAML dialect.
*/

package output

import (
	"bytes"
	"errors"
	"io/fs"
	"os"

	"github.com/goccy/go-yaml"
)

// MarshalYAML renders obj as ordered YAML: struct field order and
// MapSlice insertion order come out as-is.
func MarshalYAML(obj any) ([]byte, error) {
	return yaml.MarshalWithOptions(obj,
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
}

// WriteYAML serializes obj to path, overwriting any existing file, and
// reports whether the written content differs from what was there before.
func WriteYAML(obj any, path string) (bool, error) {
	var original []byte
	exists := true
	original, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return false, err
		}
		exists = false
	}

	data, err := MarshalYAML(obj)
	if err != nil {
		return false, err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return false, err
	}

	if !exists {
		return true, nil
	}
	return !bytes.Equal(original, data), nil
}
