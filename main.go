// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sizewatch/sizewatch/internal/cacheutil"
	"github.com/sizewatch/sizewatch/internal/command"
	"github.com/sizewatch/sizewatch/internal/log"
	"github.com/sizewatch/sizewatch/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// deduplicateFlags removes earlier occurrences of repeated flags so that the
// last one wins. CI pipelines routinely append overrides to a templated
// command line; without this the CLI rejects the duplicates.
func deduplicateFlags(args []string) []string {
	if len(args) <= 2 {
		return args
	}

	type token struct {
		flag  string
		parts []string
	}

	var tokens []token
	for i := 2; i < len(args); i++ {
		a := args[i]
		if !strings.HasPrefix(a, "-") {
			// Positional argument.
			tokens = append(tokens, token{parts: []string{a}})
			continue
		}

		name := a
		parts := []string{a}
		if eq := strings.Index(a, "="); eq != -1 {
			name = a[:eq]
		} else if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			// The next arg is this flag's value.
			parts = append(parts, args[i+1])
			i++
		}
		tokens = append(tokens, token{flag: name, parts: parts})
	}

	out := args[:2]
	for i, tk := range tokens {
		if tk.flag != "" {
			dup := false
			for _, later := range tokens[i+1:] {
				if later.flag == tk.flag {
					dup = true
					break
				}
			}
			if dup {
				continue
			}
		}
		out = append(out, tk.parts...)
	}
	return out
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	// Pre-create cache directory when caching is enabled.
	if _, ok, err := cacheutil.EnsureBaseDir(); err != nil && ok {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("cache ensure err: err=%v", err)
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, leave the command line alone and let the
	// CLI handle it.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound {
		args = deduplicateFlags(args)
		log.Debugf("args after dedup: args=%v", args)
	}

	return initAndRunApp(args)
}
