// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/sizewatch/sizewatch/internal/config"
	"github.com/sizewatch/sizewatch/internal/log"
	"github.com/sizewatch/sizewatch/internal/measure"
	"github.com/sizewatch/sizewatch/internal/meta"
	"github.com/sizewatch/sizewatch/internal/normalize"
	"github.com/sizewatch/sizewatch/internal/snapshot"
	"github.com/sizewatch/sizewatch/internal/store"
)

// GetMeta pulls the runtime metadata a command builder stashed on itself.
func GetMeta(cmd *cli.Command) meta.Meta {
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// bundleDir resolves the command's positional bundle directory, defaulting
// to the current working directory.
func bundleDir(cmd *cli.Command) string {
	if dir := cmd.Args().First(); dir != "" {
		return dir
	}
	cwd, _ := os.Getwd()
	return cwd
}

// newMeasurer assembles the size-measurement collaborator from flags and the
// config file's exclude list.
func newMeasurer(cmd *cli.Command) (*measure.Measurer, error) {
	fn, err := normalize.New(cmd.String("strip-hash"))
	if err != nil {
		return nil, err
	}

	exclude, _ := config.GetStringSlice("exclude", nil)

	return &measure.Measurer{
		Pattern:     cmd.String("pattern"),
		Exclude:     exclude,
		Compression: measure.Compression(cmd.String("compression")),
		Normalize:   fn,
	}, nil
}

// newStore picks the baseline store: a local file when --baseline is set,
// otherwise S3 when a bucket is configured. With neither, it returns nil and
// callers treat the baseline as absent.
func newStore(ctx context.Context, cmd *cli.Command) (store.Storer, error) {
	if path := cmd.String("baseline"); path != "" {
		return store.NewLocal(path)
	}

	if bucket := cmd.String("bucket"); bucket != "" {
		return store.NewS3(ctx, store.Options{
			Bucket:  bucket,
			Key:     cmd.String("key"),
			Region:  cmd.String("region"),
			Profile: cmd.String("profile"),
		})
	}

	log.Debug("no baseline store configured")
	return nil, nil
}

// snapshotRows flattens a snapshot into sorted (filename, pretty size) rows
// for the dataset output formats.
func snapshotRows(snap snapshot.Snapshot) [][]string {
	names := make([]string, 0, len(snap))
	for name := range snap {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{name, humanize.Bytes(uint64(snap[name]))})
	}
	return rows
}
