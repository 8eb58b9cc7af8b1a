// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "time"

// =============================================================================
// SPINNER ANIMATIONS
// =============================================================================

// SpinnerConfig holds the configuration for a spinner animation.
type SpinnerConfig struct {
	Frames []string
	FPS    int
}

// Duration returns the duration for each frame.
func (s SpinnerConfig) Duration() time.Duration {
	return time.Second / time.Duration(s.FPS)
}

// LineSpinner - Simple ASCII line rotation used while waiting on the model.
var LineSpinner = SpinnerConfig{
	Frames: []string{"|", "/", "-", "\\"},
	FPS:    10,
}

// DotsSpinner - Classic three-dot animation
var DotsSpinner = SpinnerConfig{
	Frames: []string{".  ", ".. ", "...", " ..", "  .", "   "},
	FPS:    6,
}

// =============================================================================
// ELLIPSIS ANIMATION
// =============================================================================

// EllipsisInterval is the frame rate of the trailing-dots animation shown
// next to the "Generating" label while a request is in flight.
var EllipsisInterval = 500 * time.Millisecond

// EllipsisFrames cycles the trailing dots: "", ".", "..", "...".
var EllipsisFrames = []string{"", ".", "..", "..."}

// Ellipsis returns the ellipsis frame for tick n. Any non-negative n is
// valid; the frames wrap around.
func Ellipsis(n int) string {
	if n < 0 {
		n = 0
	}
	return EllipsisFrames[n%len(EllipsisFrames)]
}

// =============================================================================
// TYPING ANIMATION
// =============================================================================

// TypingCursorChar is appended to partially revealed text while the
// typewriter is animating.
var TypingCursorChar = "▌"
