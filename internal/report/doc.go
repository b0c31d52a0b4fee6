// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package report builds the human-readable size diff report: per-file rows
// classified by magnitude and direction, rendered as a markdown table with
// configurable filtering, collapsing, and totals.
package report
