// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"reflect"
	"testing"
)

func TestDeduplicateFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "empty args",
			args:     []string{},
			expected: []string{},
		},
		{
			name:     "only program and command",
			args:     []string{"sizewatch", "report"},
			expected: []string{"sizewatch", "report"},
		},
		{
			name:     "no duplicates",
			args:     []string{"sizewatch", "measure", "--output", "text", "--titles"},
			expected: []string{"sizewatch", "measure", "--output", "text", "--titles"},
		},
		{
			name:     "duplicate flag with value - last wins",
			args:     []string{"sizewatch", "measure", "--output", "json", "--titles", "--output", "text"},
			expected: []string{"sizewatch", "measure", "--titles", "--output", "text"},
		},
		{
			name:     "duplicate boolean flag",
			args:     []string{"sizewatch", "report", "--save", "--omit-unchanged", "--save"},
			expected: []string{"sizewatch", "report", "--omit-unchanged", "--save"},
		},
		{
			name:     "duplicate flag with equals syntax",
			args:     []string{"sizewatch", "measure", "--output=json", "--titles", "--output=text"},
			expected: []string{"sizewatch", "measure", "--titles", "--output=text"},
		},
		{
			name:     "mixed equals and space syntax - same flag",
			args:     []string{"sizewatch", "measure", "--output=json", "--output", "text"},
			expected: []string{"sizewatch", "measure", "--output", "text"},
		},
		{
			name:     "multiple different flags with duplicates",
			args:     []string{"sizewatch", "report", "--bucket", "a", "--key", "x.json", "--bucket", "b", "--key", "y.json"},
			expected: []string{"sizewatch", "report", "--bucket", "b", "--key", "y.json"},
		},
		{
			name:     "positional args preserved",
			args:     []string{"sizewatch", "report", "./build", "--output", "json", "--output", "text"},
			expected: []string{"sizewatch", "report", "./build", "--output", "text"},
		},
		{
			name:     "short flags deduplicated",
			args:     []string{"sizewatch", "measure", "-o", "json", "-o", "text"},
			expected: []string{"sizewatch", "measure", "-o", "text"},
		},
		{
			name:     "different flags not affected",
			args:     []string{"sizewatch", "report", "--collapse-unchanged", "--omit-unchanged"},
			expected: []string{"sizewatch", "report", "--collapse-unchanged", "--omit-unchanged"},
		},
		{
			name:     "triple duplicate",
			args:     []string{"sizewatch", "report", "--threshold", "1", "--threshold", "2", "--threshold", "3"},
			expected: []string{"sizewatch", "report", "--threshold", "3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := deduplicateFlags(tt.args)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("deduplicateFlags(%v) = %v, want %v", tt.args, result, tt.expected)
			}
		})
	}
}

func TestHandleNakedCommand(t *testing.T) {
	got := handleNakedCommand([]string{"sizewatch"})
	if !reflect.DeepEqual(got, []string{"sizewatch", "--help"}) {
		t.Errorf("handleNakedCommand = %v", got)
	}

	args := []string{"sizewatch", "report"}
	if !reflect.DeepEqual(handleNakedCommand(args), args) {
		t.Errorf("handleNakedCommand modified complete args")
	}
}
