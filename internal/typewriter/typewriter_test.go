// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package typewriter

import (
	"strings"
	"testing"
	"time"
)

// runToCompletion drives a session with ticks and records every display
// state, starting with the state at Start.
func runToCompletion(s *Session) []string {
	states := []string{s.Prefix()}
	for s.Advance() {
		states = append(states, s.Prefix())
	}
	return states
}

func TestFullRunProducesEveryPrefix(t *testing.T) {
	const text = "hello"
	r := NewRenderer(0)
	s := r.Start(text)

	states := runToCompletion(s)

	if len(states) != len(text)+1 {
		t.Fatalf("expected %d display states, got %d", len(text)+1, len(states))
	}
	for i, state := range states {
		if state != text[:i] {
			t.Errorf("state %d = %q, want %q", i, state, text[:i])
		}
	}
	if !s.Done() {
		t.Error("session should be done after full run")
	}
	if s.Live() {
		t.Error("completed session should be inert")
	}
}

func TestGraphemeClustersRevealWhole(t *testing.T) {
	// Family emoji is a single grapheme built from four code points
	// joined by ZWJ; revealing it byte-wise or rune-wise would corrupt
	// the display.
	const text = "aé\U0001F468‍\U0001F469‍\U0001F467z"
	r := NewRenderer(0)
	s := r.Start(text)

	if s.Len() != 4 {
		t.Fatalf("expected 4 grapheme clusters, got %d", s.Len())
	}

	states := runToCompletion(s)
	if len(states) != 5 {
		t.Fatalf("expected 5 display states, got %d", len(states))
	}
	for _, state := range states {
		if !strings.HasPrefix(text, state) {
			t.Errorf("state %q is not a prefix of the target text", state)
		}
	}
	if states[len(states)-1] != text {
		t.Errorf("final state %q != target text", states[len(states)-1])
	}
}

func TestStartSupersedesRunningSession(t *testing.T) {
	r := NewRenderer(0)
	s1 := r.Start("first")
	s1.Advance()
	s1.Advance()
	before := s1.Prefix()

	s2 := r.Start("second")

	// The old session's ticks are now no-ops: no further prefix of
	// "first" is ever produced.
	if s1.Advance() {
		t.Error("superseded session must not advance")
	}
	if s1.Prefix() != before {
		t.Errorf("superseded session prefix changed: %q -> %q", before, s1.Prefix())
	}

	s2.Advance()
	if got := s2.Prefix(); got != "s" {
		t.Errorf("new session prefix = %q, want %q", got, "s")
	}
	if r.Active() != s2 {
		t.Error("renderer should track the new session")
	}
}

func TestStopFreezesDisplay(t *testing.T) {
	r := NewRenderer(0)
	s := r.Start("frozen")
	s.Advance()
	s.Advance()
	s.Advance()

	r.Stop()

	if s.Advance() {
		t.Error("stopped session must not advance")
	}
	if got := s.Prefix(); got != "fro" {
		t.Errorf("prefix after stop = %q, want %q", got, "fro")
	}
	if r.Animating() {
		t.Error("renderer should not be animating after Stop")
	}
}

func TestEmptyTextCompletesImmediately(t *testing.T) {
	r := NewRenderer(0)
	s := r.Start("")

	if !s.Done() {
		t.Error("empty session should be done at start")
	}
	if s.Live() {
		t.Error("empty session should be inert at start")
	}
	if s.Advance() {
		t.Error("empty session must not advance")
	}
	if s.Prefix() != "" {
		t.Errorf("empty session prefix = %q", s.Prefix())
	}
}

func TestCursorOnlyIncreases(t *testing.T) {
	r := NewRenderer(0)
	s := r.Start("abc")

	prev := ""
	for s.Advance() {
		cur := s.Prefix()
		if len(cur) <= len(prev) {
			t.Fatalf("prefix did not grow: %q -> %q", prev, cur)
		}
		prev = cur
	}
	// Extra ticks after completion are harmless no-ops.
	for i := 0; i < 3; i++ {
		if s.Advance() {
			t.Fatal("advance after completion")
		}
	}
	if s.Prefix() != "abc" {
		t.Errorf("final prefix = %q", s.Prefix())
	}
}

func TestIntervalDefaults(t *testing.T) {
	if got := NewRenderer(0).Interval(); got != DefaultInterval {
		t.Errorf("zero interval should default, got %v", got)
	}
	if got := NewRenderer(-time.Second).Interval(); got != DefaultInterval {
		t.Errorf("negative interval should default, got %v", got)
	}
	if got := NewRenderer(50 * time.Millisecond).Interval(); got != 50*time.Millisecond {
		t.Errorf("interval = %v", got)
	}
}
