// Copyright 2025 KrakLabs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package tools

import "strings"

// Argument descriptions published with the tool schema.
const (
	QueryDescription       = "Search query using Sourcegraph syntax (supports repo:, file:, lang: filters)"
	PatternTypeDescription = "Search pattern type: 'keyword' for standard search, 'regexp' for regular expressions"
	CountDescription       = "Maximum number of results to return"
	TimeoutDescription     = "Search timeout in seconds"
)

// SearchDescription documents the query syntax for the agent calling the tool.
var SearchDescription = strings.Join([]string{
	"Search code across repositories using Sourcegraph's powerful search syntax.",
	"",
	"## Pattern Types:",
	`• **Keyword search** (default): Matches individual terms anywhere in document/filename. Use "..." for exact phrases`,
	`• **Regular expression**: Use /.../ for regex patterns or set pattern_type to "regexp"`,
	"",
	"## Essential Filters:",
	`• **repo:pattern** - Filter by repository (e.g., repo:facebook/react, repo:^github\.com/microsoft/)`,
	`• **file:pattern** - Filter by file path (e.g., file:\.ts$, file:internal/)`,
	"• **lang:name** - Filter by language (e.g., lang:python, lang:javascript)",
	`• **content:"pattern"** - Search file content with literal string`,
	"• **type:symbol** - Search for code symbols (functions, classes, etc.)",
	"• **case:yes** - Enable case-sensitive search",
	"",
	"## Result Control:",
	"• **count:N** - Limit results (e.g., count:50, count:all for unlimited)",
	"• **timeout:duration** - Set timeout (e.g., timeout:30s)",
	"",
	"## Advanced Filters:",
	"• **-repo:pattern** - Exclude repositories",
	"• **-file:pattern** - Exclude files",
	`• **before:"date"** / **after:"date"** - Filter commits by date`,
	"• **author:name** - Filter by commit author",
	"• **fork:yes** - Include repository forks",
	"• **archived:yes** - Include archived repositories",
	"",
	"## Boolean Operators:",
	"• **AND** / **and** - Both terms must match (higher precedence)",
	"• **OR** / **or** - Either term matches",
	"• **NOT** / **not** - Exclude term",
	"",
	"## Common Examples:",
	"• `repo:facebook/react useState` - Find useState in React repo",
	"• `file:\\.py$ import requests lang:python` - Python files importing requests",
	"• `type:symbol main lang:go` - Find main functions in Go",
	"• `repo:^github\\.com/microsoft/ async lang:csharp` - Async code in Microsoft repos",
	"• `\"panic NOT ever\" lang:go` - Go files with panic but not ever",
	"• `repo:sourcegraph timeout:30s count:100` - Large search with custom limits",
}, "\n")
