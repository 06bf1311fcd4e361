// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
)

// withoutColor disables colors for the duration of the test.
func withoutColor(t *testing.T) {
	t.Helper()
	original := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = original })
}

func TestInitColors(t *testing.T) {
	original := color.NoColor
	defer func() { color.NoColor = original }()

	color.NoColor = false
	InitColors(false)
	if color.NoColor {
		t.Error("InitColors(false) should leave colors enabled")
	}

	InitColors(true)
	if !color.NoColor {
		t.Error("InitColors(true) should disable colors")
	}
}

func TestMessages(t *testing.T) {
	withoutColor(t)

	tests := []struct {
		name  string
		print func(*bytes.Buffer)
		want  string
	}{
		{"success", func(b *bytes.Buffer) { Success(b, "token accepted by %s", "sourcegraph.com") }, "✓ token accepted by sourcegraph.com\n"},
		{"warning", func(b *bytes.Buffer) { Warning(b, "%d repos cloning", 2) }, "⚠ 2 repos cloning\n"},
		{"failure", func(b *bytes.Buffer) { Failure(b, "search failed") }, "✗ search failed\n"},
		{"header", func(b *bytes.Buffer) { Header(b, "sgsearch") }, "sgsearch\n========\n"},
		{"field", func(b *bytes.Buffer) { Field(b, "URL", "https://sourcegraph.com") }, "URL:       https://sourcegraph.com\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.print(&buf)
			if got := buf.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTextHelpers(t *testing.T) {
	withoutColor(t)

	if got := DimText("https://sourcegraph.com"); got != "https://sourcegraph.com" {
		t.Errorf("DimText() = %q", got)
	}
	if got := CountText(42); got != "42" {
		t.Errorf("CountText() = %q", got)
	}
}
