package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poseworks/modelindex/internal/model"
)

func sampleMetafile() *model.Metafile {
	flops := 5.46
	params := 34.2
	return &model.Metafile{
		Collections: []*model.Collection{{
			Name:     "resnet_coco",
			Metadata: model.CollectionMetadata{Architecture: []string{"SimpleBaseline2D"}},
			README:   "configs/body/2d_kpt/topdown_heatmap/coco/resnet_coco.md",
			Paper:    []string{"https://arxiv.org/abs/1804.06208"},
		}},
		Models: []*model.Model{{
			Name:         "body--2d_kpt--topdown_heatmap--coco--res50_coco_256x192",
			InCollection: "resnet_coco",
			Config:       "configs/body/2d_kpt/topdown_heatmap/coco/res50_coco_256x192.py",
			Metadata: model.ModelMetadata{
				TrainingData: "COCO",
				FLOPs:        &flops,
				Parameters:   &params,
			},
			Results: []model.Result{{
				Task:    "Body 2D Keypoint",
				Dataset: "COCO",
				Metrics: yaml.MapSlice{
					{Key: "AP", Value: 0.718},
					{Key: "AR@0.5", Value: 0.804},
				},
			}},
			Weights: "https://example.com/res50.pth",
		}},
	}
}

func TestMarshalYAMLKeepsConstructionOrder(t *testing.T) {
	data, err := MarshalYAML(sampleMetafile())
	require.NoError(t, err)
	text := string(data)

	// Keys come out in schema order, never alphabetized.
	order := []string{
		"Collections:", "Name:", "Metadata:", "Architecture:", "README:", "Paper:",
		"Models:", "In Collection:", "Config:", "Training Data:", "FLOPs:",
		"Parameters:", "Results:", "Task:", "Dataset:", "Metrics:", "Weights:",
	}
	last := -1
	for _, key := range order {
		idx := strings.Index(text, key)
		require.NotEqual(t, -1, idx, "missing key %q in:\n%s", key, text)
		assert.Greater(t, idx, last, "key %q out of order in:\n%s", key, text)
		last = idx
	}

	// Metric keys keep table column order.
	assert.Less(t, strings.Index(text, "AP:"), strings.Index(text, "AR@0.5:"))
}

func TestMarshalYAMLOmitsAbsentOptionalFields(t *testing.T) {
	mf := sampleMetafile()
	mf.Models[0].Metadata.FLOPs = nil
	mf.Models[0].Metadata.Parameters = nil

	data, err := MarshalYAML(mf)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "FLOPs")
	assert.NotContains(t, string(data), "Parameters")
	assert.Contains(t, string(data), "Training Data: COCO")
}

func TestWriteYAMLDriftDetection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resnet_coco.yml")

	// No prior file: everything is new, so it counts as changed.
	changed, err := WriteYAML(sampleMetafile(), path)
	require.NoError(t, err)
	assert.True(t, changed)

	// Identical content: no drift.
	changed, err = WriteYAML(sampleMetafile(), path)
	require.NoError(t, err)
	assert.False(t, changed)

	// Different content: drift again, and the file is overwritten.
	mf := sampleMetafile()
	mf.Models[0].Weights = "https://example.com/res50_v2.pth"
	changed, err = WriteYAML(mf, path)
	require.NoError(t, err)
	assert.True(t, changed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "res50_v2.pth")
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roundtrip.yml")
	original := sampleMetafile()

	_, err := WriteYAML(original, path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded model.Metafile
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, original, &decoded)
}
