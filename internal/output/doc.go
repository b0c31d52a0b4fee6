// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output emits measurement results in the non-markdown formats:
// a styled terminal table, JSON, or YAML. The markdown report grammar lives
// in internal/report.
package output
