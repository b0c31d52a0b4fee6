// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/sizewatch/sizewatch/internal/classify"
	"github.com/sizewatch/sizewatch/internal/snapshot"
)

// Config controls which rows a report shows and how it aggregates them.
type Config struct {
	// ShowTotal prepends the aggregate size and size-change lines.
	ShowTotal bool
	// CollapseUnchanged moves below-threshold rows into a collapsible
	// "View Unchanged" section instead of the main table.
	CollapseUnchanged bool
	// OmitUnchanged drops below-threshold rows entirely. Totals still
	// include them.
	OmitUnchanged bool
	// MinimumChangeThreshold is the absolute byte delta below which a file
	// counts as unchanged.
	MinimumChangeThreshold int64
}

// Build renders the full diff report: a markdown table of changed files,
// optionally a collapsed section of unchanged ones, with totals on top. The
// output is ready for direct display; filenames are emphasized with backticks
// and otherwise emitted verbatim, so callers targeting HTML contexts must
// treat them as trusted.
func Build(diffs []snapshot.FileDiff, cfg Config) string {
	var totalSize, totalDelta int64
	var changed, unchanged [][]string

	for _, d := range diffs {
		totalSize += d.Size
		totalDelta += d.Delta

		originalSize := d.Size - d.Delta
		isUnchanged := abs(d.Delta) < cfg.MinimumChangeThreshold

		if isUnchanged && cfg.OmitUnchanged {
			continue
		}

		row := []string{
			fmt.Sprintf("`%s`", d.Filename),
			humanize.Bytes(uint64(d.Size)),
			classify.DeltaText(d.Delta, originalSize),
			classify.SeverityIcon(d.Delta, originalSize),
		}

		if isUnchanged && cfg.CollapseUnchanged {
			unchanged = append(unchanged, row)
		} else {
			changed = append(changed, row)
		}
	}

	out := RenderTable(changed)

	if len(unchanged) > 0 {
		out += fmt.Sprintf(
			"\n\n<details><summary>View Unchanged</summary>\n\n%s\n\n</details>\n\n",
			RenderTable(unchanged))
	}

	if cfg.ShowTotal {
		totalOriginalSize := totalSize - totalDelta
		out = fmt.Sprintf("**Total Size:** %s\n\n**Size Change:** %s %s\n\n%s",
			humanize.Bytes(uint64(totalSize)),
			classify.DeltaText(totalDelta, totalOriginalSize),
			classify.SeverityIcon(totalDelta, totalOriginalSize),
			out)
	}

	return out
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
