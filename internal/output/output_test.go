// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v2"

	"github.com/sizewatch/sizewatch/internal/snapshot"
)

func TestEmit_JSON(t *testing.T) {
	var buf bytes.Buffer
	snap := snapshot.Snapshot{"app.js": 100}

	require.NoError(t, Emit(&buf, "json", snap, Table{}))

	var decoded map[string]int64
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, map[string]int64{"app.js": 100}, decoded)
}

func TestEmit_YAML(t *testing.T) {
	var buf bytes.Buffer
	snap := snapshot.Snapshot{"app.js": 100}

	require.NoError(t, Emit(&buf, "yaml", snap, Table{}))

	var decoded map[string]int64
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, map[string]int64{"app.js": 100}, decoded)
}

func TestEmit_TextTable(t *testing.T) {
	var buf bytes.Buffer
	tbl := Table{
		Headers: []string{"Filename", "Size"},
		Rows:    [][]string{{"app.js", "100 B"}, {"b.js", "7 B"}},
		Titles:  true,
		Padding: 2,
	}

	require.NoError(t, Emit(&buf, "text", nil, tbl))

	out := buf.String()
	assert.Contains(t, out, "app.js")
	assert.Contains(t, out, "100 B")
	assert.Contains(t, out, "Filename")
}

func TestEmit_EmptyTableWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Emit(&buf, "text", nil, Table{}))
	assert.Empty(t, buf.String())
}
