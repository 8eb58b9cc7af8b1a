// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package generator

import (
	"regexp"
	"strings"
)

var titleRe = regexp.MustCompile(`(?m)^#\s+(.+)$`)

// extractTitle returns the first level-one heading, or "" if none.
func extractTitle(md string) string {
	if m := titleRe.FindStringSubmatch(md); len(m) >= 2 {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// extractDigest returns the first non-heading, non-empty line of the body.
func extractDigest(md string) string {
	for _, line := range strings.Split(md, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		return trimmed
	}
	return ""
}

// defaultDigest collapses whitespace and truncates to limit runes, used
// when the article has no extractable opening paragraph.
func defaultDigest(md string, limit int) string {
	joined := strings.Join(strings.Fields(md), " ")
	runes := []rune(joined)
	if len(runes) <= limit {
		return joined
	}
	return string(runes[:limit])
}
