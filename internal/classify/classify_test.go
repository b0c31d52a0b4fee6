// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeltaText(t *testing.T) {
	tests := []struct {
		name         string
		delta        int64
		originalSize int64
		expected     string
	}{
		{"zero delta has no suffix", 0, 1000, "0 B"},
		{"zero delta of new empty file", 0, 0, "0 B"},
		{"new file", 100, 0, "+100 B (new file)"},
		{"removed file", -200, 200, "-200 B (removed)"},
		{"ten percent growth", 100, 1000, "+100 B (+10%)"},
		{"shrink keeps bare minus", -100, 1000, "-100 B (-10%)"},
		{"kilobyte formatting", 1200, 1000, "+1.2 kB (+120%)"},
		{"rounds half away from zero up", 5, 200, "+5 B (+3%)"},   // 2.5 -> 3
		{"rounds half away from zero down", -5, 200, "-5 B (-3%)"}, // -2.5 -> -3
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeltaText(tt.delta, tt.originalSize))
		})
	}
}

func TestSeverityIcon(t *testing.T) {
	tests := []struct {
		name         string
		delta        int64
		originalSize int64
		expected     string
	}{
		{"new file wins over any delta", 1, 0, IconNew},
		{"new file negative delta", -1, 0, IconNew},
		{"exactly 50 is critical", 50, 100, IconCriticalGrowth},
		{"49 is warning", 49, 100, IconWarningGrowth},
		{"exactly 20 is warning", 20, 100, IconWarningGrowth},
		{"exactly 10 is caution", 10, 100, IconCautionGrowth},
		{"exactly 5 is notice", 5, 100, IconNoticeGrowth},
		{"4 is silent", 4, 100, ""},
		{"zero delta is silent", 0, 100, ""},
		{"-4 is silent", -4, 100, ""},
		{"exactly -5 is check", -5, 100, IconCheckShrink},
		{"exactly -10 is applause", -10, 100, IconApplauseShrink},
		{"exactly -20 is celebration", -20, 100, IconCelebrationShrink},
		{"-49 is celebration", -49, 100, IconCelebrationShrink},
		{"exactly -50 is trophy", -50, 100, IconTrophyShrink},
		{"rounding reaches a threshold", 495, 1000, IconCriticalGrowth}, // 49.5 -> 50
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SeverityIcon(tt.delta, tt.originalSize))
		})
	}
}

func TestSignedBytes(t *testing.T) {
	assert.Equal(t, "0 B", SignedBytes(0))
	assert.Equal(t, "+100 B", SignedBytes(100))
	assert.Equal(t, "-100 B", SignedBytes(-100))
	assert.Equal(t, "+1.2 kB", SignedBytes(1200))
	assert.Equal(t, "-1.5 MB", SignedBytes(-1500000))
}
