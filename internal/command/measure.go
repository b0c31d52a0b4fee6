// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/sizewatch/sizewatch/internal/meta"
	"github.com/sizewatch/sizewatch/internal/output"
)

// measureCommandAction scans the bundle and emits the snapshot without
// diffing anything.
func measureCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	measurer, err := newMeasurer(cmd)
	if err != nil {
		return err
	}

	snap, err := measurer.Measure(bundleDir(cmd))
	if err != nil {
		return err
	}

	return output.Emit(nil, cmd.String("output"), snap, output.Table{
		Headers: []string{"Filename", "Size"},
		Rows:    snapshotRows(snap),
		Color:   cmd.Bool("color"),
		Titles:  cmd.Bool("titles"),
		Padding: cmd.Int("padding"),
	})
}

// measureCommandBuilder constructs the cli.Command for "measure".
func measureCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "measure",
		Usage:     "measure current bundle sizes",
		UsageText: "sizewatch measure [BundleDir] [options]",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags:  append(NewMeasureFlags("measure"), NewOutputFlags()...),
		Action: measureCommandAction,
	}
}
