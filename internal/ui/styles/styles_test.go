// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"
	"time"
)

func TestEllipsisWraps(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, ""},
		{1, "."},
		{2, ".."},
		{3, "..."},
		{4, ""},
		{7, "..."},
		{-1, ""},
	}
	for _, tt := range tests {
		if got := Ellipsis(tt.n); got != tt.want {
			t.Errorf("Ellipsis(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestSpinnerDuration(t *testing.T) {
	if d := LineSpinner.Duration(); d != 100*time.Millisecond {
		t.Errorf("LineSpinner duration = %v", d)
	}
}

func TestRenderStatusIncludesIndicator(t *testing.T) {
	if out := RenderStatus(true, "saved"); !strings.Contains(out, "[OK]") {
		t.Errorf("success output missing indicator: %q", out)
	}
	if out := RenderStatus(false, "failed"); !strings.Contains(out, "[X]") {
		t.Errorf("error output missing indicator: %q", out)
	}
}

func TestNewThemePreference(t *testing.T) {
	dark := NewTheme("dark")
	if !dark.IsDark {
		t.Error("dark preference should force IsDark")
	}
	light := NewTheme("light")
	if light.IsDark {
		t.Error("light preference should clear IsDark")
	}
}
