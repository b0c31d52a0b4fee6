// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package measure

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"os"
	"path/filepath"

	"github.com/andybalholm/brotli"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"

	"github.com/sizewatch/sizewatch/internal/log"
	"github.com/sizewatch/sizewatch/internal/normalize"
	"github.com/sizewatch/sizewatch/internal/snapshot"
)

// Compression selects how file bytes are counted.
type Compression string

const (
	CompressionNone   Compression = "none"
	CompressionGzip   Compression = "gzip"
	CompressionBrotli Compression = "brotli"
)

// Compressions lists the accepted --compression values.
var Compressions = []Compression{CompressionNone, CompressionGzip, CompressionBrotli}

// Measurer scans a build directory and produces a size snapshot. FS defaults
// to the OS filesystem; tests inject an in-memory one.
type Measurer struct {
	FS          afero.Fs
	Pattern     string
	Exclude     []string
	Compression Compression
	Normalize   normalize.Func
}

// Measure walks dir, sizes every regular file whose slash-relative path
// matches Pattern (doublestar globs, so "dist/**/*.js" works) and none of the
// Exclude patterns, and keys it by its normalized name. When two files
// normalize to the same name the larger size wins, keeping the report
// pessimistic.
func (m *Measurer) Measure(dir string) (snapshot.Snapshot, error) {
	fs := m.FS
	if fs == nil {
		fs = afero.NewOsFs()
	}

	snap := snapshot.Snapshot{}

	err := afero.Walk(fs, dir, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if ok, err := doublestar.Match(m.Pattern, rel); err != nil {
			return fmt.Errorf("bad pattern %q: %w", m.Pattern, err)
		} else if !ok {
			return nil
		}
		for _, ex := range m.Exclude {
			if ok, _ := doublestar.Match(ex, rel); ok {
				log.Debugf("excluded: file=%s pattern=%s", rel, ex)
				return nil
			}
		}

		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		size, err := m.sizeOf(data)
		if err != nil {
			return err
		}

		name := rel
		if m.Normalize != nil {
			name = m.Normalize(name)
		}

		if prev, ok := snap[name]; !ok || size > prev {
			snap[name] = size
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to measure %s: %w", dir, err)
	}

	log.Debugf("measured: dir=%s files=%d compression=%s", dir, len(snap), m.Compression)
	return snap, nil
}

// sizeOf counts data under the configured compression. Compression levels are
// pinned to best so sizes are stable across runs.
func (m *Measurer) sizeOf(data []byte) (int64, error) {
	switch m.Compression {
	case "", CompressionNone:
		return int64(len(data)), nil

	case CompressionGzip:
		var buf bytes.Buffer
		zw, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
		if err != nil {
			return 0, err
		}
		if _, err := zw.Write(data); err != nil {
			return 0, err
		}
		if err := zw.Close(); err != nil {
			return 0, err
		}
		return int64(buf.Len()), nil

	case CompressionBrotli:
		var buf bytes.Buffer
		bw := brotli.NewWriterLevel(&buf, brotli.BestCompression)
		if _, err := bw.Write(data); err != nil {
			return 0, err
		}
		if err := bw.Close(); err != nil {
			return 0, err
		}
		return int64(buf.Len()), nil
	}

	return 0, fmt.Errorf("unsupported compression %q", m.Compression)
}
