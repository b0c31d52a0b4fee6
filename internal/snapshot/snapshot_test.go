// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff(t *testing.T) {
	previous := Snapshot{"a.js": 1000, "b.js": 500, "gone.js": 200}
	current := Snapshot{"a.js": 1100, "b.js": 500, "new.js": 42}

	diffs := Diff(previous, current)

	require.Len(t, diffs, 4)
	assert.Equal(t, FileDiff{Filename: "a.js", Size: 1100, Delta: 100}, diffs[0])
	assert.Equal(t, FileDiff{Filename: "b.js", Size: 500, Delta: 0}, diffs[1])
	assert.Equal(t, FileDiff{Filename: "gone.js", Size: 0, Delta: -200}, diffs[2])
	assert.Equal(t, FileDiff{Filename: "new.js", Size: 42, Delta: 42}, diffs[3])

	// Size - Delta recovers the previous size for every entry.
	for _, d := range diffs {
		assert.Equal(t, previous[d.Filename], d.Size-d.Delta, d.Filename)
	}
}

func TestDiff_EmptyPrevious(t *testing.T) {
	diffs := Diff(Snapshot{}, Snapshot{"a.js": 100})
	require.Len(t, diffs, 1)
	assert.Equal(t, FileDiff{Filename: "a.js", Size: 100, Delta: 100}, diffs[0])
}

func TestDiff_EmptyCurrent(t *testing.T) {
	diffs := Diff(Snapshot{"old.js": 200}, Snapshot{})
	require.Len(t, diffs, 1)
	assert.Equal(t, FileDiff{Filename: "old.js", Size: 0, Delta: -200}, diffs[0])
}

func TestDecode_LegacyFormat(t *testing.T) {
	snap, err := Decode([]byte(`{"app.js": 1234, "styles.css": 56}`))
	require.NoError(t, err)
	assert.Equal(t, Snapshot{"app.js": 1234, "styles.css": 56}, snap)
}

func TestDecode_WrappedFormat(t *testing.T) {
	doc := `{"version": 1, "generatedAt": "2026-08-01T00:00:00Z", "bundle": {"app.js": 1234}}`
	snap, err := Decode([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, Snapshot{"app.js": 1234}, snap)
}

func TestDecode_LegacyFileNamedBundle(t *testing.T) {
	// A numeric "bundle" key is a legacy file entry, not a wrapper.
	snap, err := Decode([]byte(`{"bundle": 99, "app.js": 1}`))
	require.NoError(t, err)
	assert.Equal(t, Snapshot{"bundle": 99, "app.js": 1}, snap)
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not an object", `[1, 2, 3]`},
		{"non-numeric size", `{"app.js": "big"}`},
		{"negative size", `{"app.js": -5}`},
		{"garbage", `not json at all`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestEncodeDecode(t *testing.T) {
	snap := Snapshot{"a.js": 100, "b.js": 0}

	data, err := Encode(snap)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, snap, decoded)
}
