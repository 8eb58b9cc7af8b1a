// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package typewriter implements the incremental text reveal used for the
// article display. The animation is purely a presentation artifact: the
// full text is already in hand when a session starts, and each tick
// reveals one more grapheme cluster.
//
// The package is deliberately free of any UI dependency. A Renderer owns
// at most one live Session; the event loop drives Session.Advance on a
// timer and writes the returned prefix to the display. All state lives in
// plain values mutated from the single event-loop goroutine, so there is
// no locking here — supersession is handled by the liveness flag, not by
// synchronization.
//
// Session lifecycle:
//
//	Idle ──Start──> Running ──ticks──> Complete
//	                   │
//	             Start/Stop
//	                   │
//	                   v
//	              Superseded (ticks become no-ops)
package typewriter

import (
	"time"

	"github.com/rivo/uniseg"
)

// DefaultInterval is the delay between reveal ticks. 30ms reads as
// natural typing without dragging out long articles.
const DefaultInterval = 30 * time.Millisecond

// =============================================================================
// SESSION
// =============================================================================

// Session is one run of the typing animation over a fixed string.
// The text is segmented into grapheme clusters up front so multi-byte
// and combining characters are never revealed half-drawn.
type Session struct {
	clusters []string
	cursor   int
	live     bool
}

// newSession segments text and returns a running session. An empty text
// completes immediately: the session is born inert with nothing to
// reveal.
func newSession(text string) *Session {
	var clusters []string
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}

	s := &Session{clusters: clusters, live: true}
	if len(clusters) == 0 {
		s.live = false
	}
	return s
}

// Advance reveals one more grapheme cluster. It reports whether the
// session actually advanced; on a superseded, stopped, or completed
// session it is a no-op. The cursor only ever increases.
func (s *Session) Advance() bool {
	if !s.live || s.cursor >= len(s.clusters) {
		return false
	}
	s.cursor++
	if s.cursor == len(s.clusters) {
		// Complete: the session goes inert so stray ticks scheduled
		// before completion do nothing.
		s.live = false
	}
	return true
}

// Prefix returns the currently revealed text: the join of the first
// cursor grapheme clusters.
func (s *Session) Prefix() string {
	if s.cursor == 0 {
		return ""
	}
	n := 0
	for _, c := range s.clusters[:s.cursor] {
		n += len(c)
	}
	b := make([]byte, 0, n)
	for _, c := range s.clusters[:s.cursor] {
		b = append(b, c...)
	}
	return string(b)
}

// Done reports whether the full text has been revealed.
func (s *Session) Done() bool {
	return s.cursor >= len(s.clusters)
}

// Live reports whether the session is still the active one. A session
// goes dead on completion, on Stop, or when a new session supersedes it.
func (s *Session) Live() bool {
	return s.live
}

// Len returns the total number of grapheme clusters in the target text.
func (s *Session) Len() int {
	return len(s.clusters)
}

// invalidate clears the liveness flag, turning future Advance calls into
// no-ops. The revealed prefix is left as-is.
func (s *Session) invalidate() {
	s.live = false
}

// =============================================================================
// RENDERER
// =============================================================================

// Renderer owns the typing animation. At most one Session is live at a
// time; starting a new one immediately invalidates the old one, so ticks
// scheduled against the old session observe a dead liveness flag and do
// nothing.
type Renderer struct {
	current  *Session
	interval time.Duration
}

// NewRenderer creates a renderer with the given tick interval.
// A non-positive interval falls back to DefaultInterval.
func NewRenderer(interval time.Duration) *Renderer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Renderer{interval: interval}
}

// Start begins a new session over text, superseding any running one.
// It returns immediately; the caller schedules ticks.
func (r *Renderer) Start(text string) *Session {
	if r.current != nil {
		r.current.invalidate()
	}
	r.current = newSession(text)
	return r.current
}

// Stop invalidates the current session without completing it. The
// display keeps whatever prefix was last revealed.
func (r *Renderer) Stop() {
	if r.current != nil {
		r.current.invalidate()
	}
}

// Active returns the current session, or nil if none was ever started.
// The returned session may already be dead.
func (r *Renderer) Active() *Session {
	return r.current
}

// Animating reports whether a live session still has text to reveal.
func (r *Renderer) Animating() bool {
	return r.current != nil && r.current.Live() && !r.current.Done()
}

// Interval returns the configured tick interval.
func (r *Renderer) Interval() time.Duration {
	return r.interval
}
