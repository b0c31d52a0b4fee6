// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package snapshot

import "sort"

// Snapshot maps a normalized bundle filename to its measured byte size. One
// is taken per build; a run compares a previous and a current snapshot.
// Snapshots are never mutated after construction.
type Snapshot map[string]int64

// FileDiff is one file's size movement between two snapshots. Size is the
// current byte size (0 when the file was removed); Delta is current minus
// previous, so Size - Delta always recovers the previous size.
type FileDiff struct {
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	Delta    int64  `json:"delta"`
}

// Diff computes per-file deltas over the union of both snapshots' filenames.
// A file missing from one side contributes size 0 on that side. Results are
// ordered by filename so report output is deterministic.
func Diff(previous, current Snapshot) []FileDiff {
	names := make([]string, 0, len(current)+len(previous))
	for name := range current {
		names = append(names, name)
	}
	for name := range previous {
		if _, ok := current[name]; !ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	diffs := make([]FileDiff, 0, len(names))
	for _, name := range names {
		size := current[name]
		diffs = append(diffs, FileDiff{
			Filename: name,
			Size:     size,
			Delta:    size - previous[name],
		})
	}
	return diffs
}
