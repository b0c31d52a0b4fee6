// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package normalize

import (
	"fmt"
	"regexp"
	"strings"
)

// Func rewrites a bundle filename so that two builds of the same logical file
// compare under the same key. A nil Func means normalization is disabled and
// callers use filenames as-is.
type Func func(string) string

// New compiles pattern into a hash-masking Func. The pattern's capture groups
// locate the content-hash substrings embedded in a filename; each captured
// value is overwritten with '*' characters of the same length, so
// "app.a1b2c3d4.js" becomes "app.********.js" and structure survives for
// display. An empty pattern returns a nil Func.
func New(pattern string) (Func, error) {
	if pattern == "" {
		return nil, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid strip-hash pattern %q: %w", pattern, err)
	}

	return func(filename string) string {
		idx := re.FindStringSubmatchIndex(filename)
		if idx == nil {
			return filename
		}

		// Up to two trailing capture groups are bookkeeping (extension and
		// friends) and are never masked.
		ngroups := len(idx)/2 - 1
		hashGroups := ngroups
		if hashGroups > 2 {
			hashGroups = ngroups - 2
		}

		matched := filename[idx[0]:idx[1]]
		masked := false
		for g := 1; g <= hashGroups; g++ {
			if idx[2*g] < 0 {
				continue
			}
			hash := filename[idx[2*g]:idx[2*g+1]]
			if hash == "" {
				continue
			}
			matched = strings.Replace(matched, hash, strings.Repeat("*", len(hash)), 1)
			masked = true
		}

		// No usable captures: the matched span collapses entirely.
		if !masked {
			matched = ""
		}

		return filename[:idx[0]] + matched + filename[idx[1]:]
	}, nil
}
