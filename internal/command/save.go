// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/sizewatch/sizewatch/internal/meta"
)

// saveCommandAction measures the bundle and overwrites the baseline slot
// with the result. The write is fire-and-forget: failures are logged, the
// command still exits cleanly.
func saveCommandAction(ctx context.Context, cmd *cli.Command) error {
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

	st, err := newStore(ctx, cmd)
	if err != nil {
		return err
	}
	if st == nil {
		return fmt.Errorf("no baseline store configured: set --bucket or --baseline")
	}

	if err := st.Persist(ctx, snap); err != nil {
		log.WithError(err).Error("failed to persist snapshot")
	}

	return nil
}

// saveCommandBuilder constructs the cli.Command for "save".
func saveCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "save",
		Usage:     "persist current bundle sizes as the baseline",
		UsageText: "sizewatch save [BundleDir] [options]",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags:  append(NewMeasureFlags("save"), NewStoreFlags("save")...),
		Action: saveCommandAction,
	}
}
