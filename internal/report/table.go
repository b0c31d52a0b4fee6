// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package report

import "strings"

var (
	tableHeaders = []string{"Filename", "Size", "Change", ""}
	tableAligns  = []string{":---", ":---:", ":---:", ":---:"}
)

// RenderTable turns (filename, size, change, icon) rows into a pipe-delimited
// markdown table. Trailing columns that are empty across every row are
// elided; if only the Change column survives alongside Filename and Size and
// every change reads "0 B", it is dropped as well. No rows, or no surviving
// columns, yields empty output.
func RenderTable(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	// Trim trailing columns nobody populates.
	for width > 0 && columnEmpty(rows, width-1) {
		width--
	}

	// With icons gone and no size-affecting changes, the Change column only
	// restates "0 B"; drop it too.
	if width == 3 && columnReads(rows, 2, "0 B") {
		width--
	}

	if width == 0 {
		return ""
	}

	var b strings.Builder
	writeRow(&b, tableHeaders[:width])
	writeRow(&b, tableAligns[:width])
	for _, row := range rows {
		writeRow(&b, pad(row, width))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func columnEmpty(rows [][]string, col int) bool {
	for _, row := range rows {
		if col < len(row) && row[col] != "" {
			return false
		}
	}
	return true
}

func columnReads(rows [][]string, col int, want string) bool {
	for _, row := range rows {
		if col >= len(row) || row[col] != want {
			return false
		}
	}
	return true
}

func pad(row []string, width int) []string {
	if len(row) >= width {
		return row[:width]
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded
}

func writeRow(b *strings.Builder, columns []string) {
	b.WriteString("| ")
	b.WriteString(strings.Join(columns, " | "))
	b.WriteString(" |\n")
}
