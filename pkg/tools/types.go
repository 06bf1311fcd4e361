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

package tools

import "unicode/utf8"

// ToolResult represents the result of a tool execution.
type ToolResult struct {
	Text    string
	IsError bool
}

// NewResult creates a successful tool result.
func NewResult(text string) *ToolResult {
	return &ToolResult{Text: text}
}

// NewError creates an error tool result.
func NewError(text string) *ToolResult {
	return &ToolResult{Text: text, IsError: true}
}

// Truncate shortens s to at most maxLen characters, replacing the tail with
// "..." when it is cut.
func Truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string([]rune(s)[:max(maxLen, 0)])
	}
	return string([]rune(s)[:maxLen-3]) + "..."
}
