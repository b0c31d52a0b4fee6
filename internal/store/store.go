// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"

	"github.com/sizewatch/sizewatch/internal/snapshot"
)

// Storer is the baseline persistence surface. Fetch degrades: an absent or
// malformed stored document is logged and comes back as an empty snapshot,
// never an error, so a report run always proceeds (every file shows as new).
// Persist is the companion fire-and-forget path; callers log its error and
// move on.
type Storer interface {
	Fetch(ctx context.Context) (snapshot.Snapshot, error)
	Persist(ctx context.Context, snap snapshot.Snapshot) error
}

// Options configures the remote store. It is populated once at startup from
// flags and config; nothing below this boundary reads process environment.
type Options struct {
	Bucket  string
	Key     string
	Region  string
	Profile string
}
