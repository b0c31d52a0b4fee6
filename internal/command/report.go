// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/sizewatch/sizewatch/internal/meta"
	"github.com/sizewatch/sizewatch/internal/report"
	"github.com/sizewatch/sizewatch/internal/snapshot"
)

// reportCommandAction measures the current bundle, diffs it against the
// stored baseline, and writes the rendered report to stdout. With --save the
// current snapshot then replaces the baseline; persistence failures are
// logged and never fail the report.
func reportCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	measurer, err := newMeasurer(cmd)
	if err != nil {
		return err
	}

	dir := bundleDir(cmd)
	current, err := measurer.Measure(dir)
	if err != nil {
		return err
	}

	st, err := newStore(ctx, cmd)
	if err != nil {
		return err
	}

	previous := snapshot.Snapshot{}
	if st != nil {
		// Fetch degrades internally; a missing or bad baseline shows up here
		// as an empty snapshot and the report marks every file new.
		previous, _ = st.Fetch(ctx)
	} else {
		log.Infof("no baseline configured; all files will report as new")
	}

	out := report.Build(snapshot.Diff(previous, current), report.Config{
		ShowTotal:              cmd.Bool("show-total"),
		CollapseUnchanged:      cmd.Bool("collapse-unchanged"),
		OmitUnchanged:          cmd.Bool("omit-unchanged"),
		MinimumChangeThreshold: int64(cmd.Int("threshold")),
	})
	fmt.Fprintln(os.Stdout, out)

	if cmd.Bool("save") && st != nil {
		if err := st.Persist(ctx, current); err != nil {
			log.WithError(err).Error("failed to persist snapshot")
		}
	}

	return nil
}

// reportCommandBuilder constructs the cli.Command for "report", wiring
// metadata, flags, and the action handler.
func reportCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "report",
		Usage:     "diff current bundle sizes against the baseline",
		UsageText: "sizewatch report [BundleDir] [options]",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: append([]cli.Flag{
			&cli.IntFlag{
				Name:  "threshold",
				Usage: "minimum byte delta for a file to count as changed",
				Value: 10,
				Validator: func(value int) error {
					return FlagValidators(value, ThresholdValidator)
				},
			},
			&cli.BoolFlag{
				Name:  "show-total",
				Usage: "prepend total size and total change lines",
				Value: true,
			},
			&cli.BoolFlag{
				Name:  "collapse-unchanged",
				Usage: "tuck unchanged files into a collapsible section",
				Value: false,
			},
			&cli.BoolFlag{
				Name:  "omit-unchanged",
				Usage: "drop unchanged files from the report entirely",
				Value: false,
			},
			&cli.BoolFlag{
				Name:  "save",
				Usage: "persist the current snapshot as the new baseline",
				Value: false,
			},
		}, append(NewMeasureFlags("report"), NewStoreFlags("report")...)...),
		Action: reportCommandAction,
	}
}
