// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EmptyPatternIsNoOp(t *testing.T) {
	fn, err := New("")
	require.NoError(t, err)
	assert.Nil(t, fn)
}

func TestNew_InvalidPattern(t *testing.T) {
	fn, err := New("([a-z")
	assert.Error(t, err)
	assert.Nil(t, fn)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		filename string
		expected string
	}{
		{
			name:     "single hash group masked",
			pattern:  `\.([a-f0-9]{8})\.js$`,
			filename: "app.a1b2c3d4.js",
			expected: "app.********.js",
		},
		{
			name:     "length preserved for longer hashes",
			pattern:  `\.([a-f0-9]+)\.chunk\.js$`,
			filename: "vendors.0123456789abcdef0123.chunk.js",
			expected: "vendors.********************.chunk.js",
		},
		{
			name:     "no match returns original",
			pattern:  `\.([a-f0-9]{8})\.js$`,
			filename: "styles.css",
			expected: "styles.css",
		},
		{
			name:     "match without capture groups collapses span",
			pattern:  `-[a-f0-9]{8}`,
			filename: "main-deadbeef.js",
			expected: "main.js",
		},
		{
			name:     "two hash groups both masked",
			pattern:  `\.([a-f0-9]{4})\.([a-f0-9]{4})\.js$`,
			filename: "app.abcd.1234.js",
			expected: "app.****.****.js",
		},
		{
			name:     "trailing bookkeeping groups excluded",
			pattern:  `\.([a-f0-9]{8})\.(chunk)\.(js)$`,
			filename: "app.a1b2c3d4.chunk.js",
			expected: "app.********.chunk.js",
		},
		{
			name:     "only first match is rewritten",
			pattern:  `\.([a-f0-9]{4})\.`,
			filename: "a.beef.b.beef.c",
			expected: "a.****.b.beef.c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := New(tt.pattern)
			require.NoError(t, err)
			require.NotNil(t, fn)
			assert.Equal(t, tt.expected, fn(tt.filename))
		})
	}
}
