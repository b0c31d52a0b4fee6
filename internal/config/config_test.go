// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestConfig sets SIZEWATCH_CFG_FILE to point to a test config file and
// resets the global Config so the file is actually loaded.
func setupTestConfig(t *testing.T, testdataFile string) {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join("testdata", testdataFile))
	require.NoError(t, err)

	t.Setenv("SIZEWATCH_CFG_FILE", absPath)
	Config = Type{}
	t.Cleanup(func() { Config = Type{} })

	_, err = Load()
	require.NoError(t, err)
}

func TestLoad(t *testing.T) {
	setupTestConfig(t, "simple.yaml")

	assert.NotEmpty(t, Config.Source)
	assert.Equal(t, "dist/**/*.js", Config.Data["pattern"])
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("SIZEWATCH_CFG_FILE", filepath.Join("testdata", "does-not-exist.yaml"))
	Config = Type{}
	t.Cleanup(func() { Config = Type{} })

	_, err := Load()
	assert.Error(t, err)
}

func TestGetString(t *testing.T) {
	setupTestConfig(t, "simple.yaml")

	v, err := GetString("pattern")
	require.NoError(t, err)
	assert.Equal(t, "dist/**/*.js", v)

	// Nested dotted path.
	v, err = GetString("store.bucket")
	require.NoError(t, err)
	assert.Equal(t, "my-bundle-bucket", v)

	// Missing with default.
	v, err = GetString("nope", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback", v)

	// Missing without default.
	_, err = GetString("nope")
	assert.Error(t, err)

	// Wrong type.
	_, err = GetString("report.threshold")
	assert.Error(t, err)
}

func TestGetInt(t *testing.T) {
	setupTestConfig(t, "simple.yaml")

	v, err := GetInt("report.threshold")
	require.NoError(t, err)
	assert.Equal(t, 25, v)

	v, err = GetInt("nope", 10)
	require.NoError(t, err)
	assert.Equal(t, 10, v)

	_, err = GetInt("pattern")
	assert.Error(t, err)
}

func TestGetInt_Namespaced(t *testing.T) {
	setupTestConfig(t, "simple.yaml")
	Config.Namespace = "report"

	v, err := GetInt("threshold")
	require.NoError(t, err)
	assert.Equal(t, 25, v)
}

func TestGetStringSlice(t *testing.T) {
	setupTestConfig(t, "simple.yaml")

	v, err := GetStringSlice("exclude")
	require.NoError(t, err)
	assert.Equal(t, []string{"dist/polyfills*", "dist/**/*.map"}, v)

	v, err = GetStringSlice("nope", []string{"d"})
	require.NoError(t, err)
	assert.Equal(t, []string{"d"}, v)

	_, err = GetStringSlice("pattern")
	assert.Error(t, err)
}
