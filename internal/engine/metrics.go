package engine

import (
	"regexp"
	"strconv"
	"strings"
)

// allMetrics is the known metric vocabulary, in priority order.
// The first term found in a column header wins, so keep the order stable.
var allMetrics = []string{
	"acc", "ap", "ar", "pck", "auc", "3dpck", "p-3dpck", "3dauc",
	"p-3dauc", "epe", "nme", "mpjpe", "p-mpjpe", "n-mpjpe", "mean", "head",
	"sho", "elb", "wri", "hip", "knee", "ank", "total",
}

// skipColumns are table columns that never hold metric values. FLOPs and
// Params must be here: "Params" would otherwise substring-match "ar".
var skipColumns = map[string]bool{
	"Arch":       true,
	"Input Size": true,
	"FLOPs":      true,
	"Params":     true,
	"ckpt":       true,
	"log":        true,
}

var (
	digitRun = regexp.MustCompile(`\d+`)
	spaceRun = regexp.MustCompile(` +`)
)

// collateMetrics resolves table header cells to metric names.
// It returns the normalized names and the column index each came from,
// in header order. Columns matching no vocabulary term contribute nothing;
// each column contributes at most one metric.
func collateMetrics(cols []string) ([]string, []int) {
	var names []string
	var idxs []int
	for idx, col := range cols {
		if skipColumns[col] {
			continue
		}
		upper := strings.ToUpper(col)
		for _, metric := range allMetrics {
			if !strings.Contains(upper, strings.ToUpper(metric)) {
				continue
			}
			name := rewriteMetricName(col)
			if metric == "ap" || metric == "ar" {
				name = applyThreshold(name)
			}
			names = append(names, name)
			idxs = append(idxs, idx)
			break
		}
	}
	return names, idxs
}

// rewriteMetricName cleans a header cell: ``<...>`` spans are dropped
// whole, emphasis markers become spaces, and space runs collapse.
func rewriteMetricName(col string) string {
	var b strings.Builder
	inTag := false
	for _, r := range col {
		switch {
		case inTag:
			if r == '>' {
				inTag = false
			}
		case r == '<':
			inTag = true
		case r == '*' || r == '_':
			b.WriteByte(' ')
		default:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(spaceRun.ReplaceAllString(b.String(), " "))
}

// applyThreshold reinterprets the first digit run of an AP/AR metric name
// as an IOU threshold: "AP 50" becomes "AP @0.5".
func applyThreshold(name string) string {
	loc := digitRun.FindStringIndex(name)
	if loc == nil {
		return name
	}
	n, err := strconv.Atoi(name[loc[0]:loc[1]])
	if err != nil {
		return name
	}
	threshold := strconv.FormatFloat(float64(n)/100, 'g', -1, 64)
	return name[:loc[0]] + "@" + threshold + name[loc[1]:]
}
