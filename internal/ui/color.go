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

// Package ui prints human-readable, colored CLI output.
//
// Every helper takes the destination writer so commands can keep stdout for
// results and send diagnostics to stderr. Colors follow fatih/color, which
// already honors NO_COLOR and non-terminal output; InitColors forces them off
// for --no-color.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	// Red marks failures.
	Red = color.New(color.FgRed)

	// Yellow marks warnings.
	Yellow = color.New(color.FgYellow)

	// Green marks checks that passed.
	Green = color.New(color.FgGreen)

	// Cyan marks counts and informational values.
	Cyan = color.New(color.FgCyan)

	// Bold is used for headers and labels.
	Bold = color.New(color.Bold)

	// Dim is used for secondary details such as URLs.
	Dim = color.New(color.Faint)
)

// InitColors disables colored output when noColor is true.
func InitColors(noColor bool) {
	if noColor {
		color.NoColor = true
	}
}

// Success prints a passed check.
func Success(w io.Writer, format string, args ...any) {
	_, _ = Green.Fprintf(w, "✓ "+format+"\n", args...)
}

// Warning prints a warning.
func Warning(w io.Writer, format string, args ...any) {
	_, _ = Yellow.Fprintf(w, "⚠ "+format+"\n", args...)
}

// Failure prints a failed check.
func Failure(w io.Writer, format string, args ...any) {
	_, _ = Red.Fprintf(w, "✗ "+format+"\n", args...)
}

// Header prints a bold title underlined with "=".
func Header(w io.Writer, text string) {
	_, _ = Bold.Fprintln(w, text)
	fmt.Fprintln(w, strings.Repeat("=", len(text)))
}

// Field prints an aligned "label: value" line.
func Field(w io.Writer, label, value string) {
	fmt.Fprintf(w, "%s %s\n", Bold.Sprintf("%-10s", label+":"), value)
}

// DimText renders text in faint style.
func DimText(text string) string {
	return Dim.Sprint(text)
}

// CountText renders a count in cyan.
func CountText(count int) string {
	return Cyan.Sprint(count)
}
