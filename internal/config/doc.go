// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config loads the optional sizewatch.yaml user configuration and
// exposes dotted-key getters over it. Commands also pull individual keys
// through urfave's value-source chains, so most flags never touch this
// package directly.
package config
