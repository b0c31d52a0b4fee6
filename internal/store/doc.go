// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package store persists and retrieves baseline size snapshots. The remote
// flavor keeps a single versioned document in S3; the local flavor keeps a
// file in the workspace. Both degrade a missing or malformed baseline into
// an empty snapshot so reports never fail on a bad store.
package store
