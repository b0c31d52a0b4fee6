// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package classify

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// Severity icons, ordered from loudest growth to loudest shrink.
const (
	IconNew               = "🆕"
	IconCriticalGrowth    = "🚨"
	IconWarningGrowth     = "⚠️"
	IconCautionGrowth     = "🔍"
	IconNoticeGrowth      = "👀"
	IconTrophyShrink      = "🏆"
	IconCelebrationShrink = "🎉"
	IconApplauseShrink    = "👏"
	IconCheckShrink       = "✅"
)

// DeltaText renders a size delta as signed human-readable text, annotated
// with how the file changed relative to its previous size: "(new file)",
// "(removed)", or a rounded percentage.
func DeltaText(delta, originalSize int64) string {
	text := SignedBytes(delta)
	switch {
	case delta == 0:
		// Size only, no annotation.
	case originalSize == 0:
		text += " (new file)"
	case originalSize == -delta:
		text += " (removed)"
	default:
		pct := percentage(delta, originalSize)
		sign := ""
		if pct > 0 {
			sign = "+"
		}
		text += fmt.Sprintf(" (%s%d%%)", sign, pct)
	}
	return text
}

// SeverityIcon maps a delta to a severity marker. Growth thresholds are
// checked before shrink thresholds, largest magnitude first. A brand-new file
// is always flagged new, regardless of delta sign.
func SeverityIcon(delta, originalSize int64) string {
	if originalSize == 0 {
		return IconNew
	}

	switch pct := percentage(delta, originalSize); {
	case pct >= 50:
		return IconCriticalGrowth
	case pct >= 20:
		return IconWarningGrowth
	case pct >= 10:
		return IconCautionGrowth
	case pct >= 5:
		return IconNoticeGrowth
	case pct <= -50:
		return IconTrophyShrink
	case pct <= -20:
		return IconCelebrationShrink
	case pct <= -10:
		return IconApplauseShrink
	case pct <= -5:
		return IconCheckShrink
	}
	return ""
}

// SignedBytes formats n as an SI byte size with an explicit sign for
// positive values.
func SignedBytes(n int64) string {
	if n < 0 {
		return "-" + humanize.Bytes(uint64(-n))
	}
	if n > 0 {
		return "+" + humanize.Bytes(uint64(n))
	}
	return humanize.Bytes(0)
}

// percentage rounds half away from zero, matching how the thresholds are
// specified. The originalSize == 0 guards in the callers preclude division
// by zero.
func percentage(delta, originalSize int64) int {
	return int(math.Round(float64(delta) / float64(originalSize) * 100))
}
