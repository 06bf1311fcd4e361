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

// Package tools implements the sgsearch "search" tool on top of the
// sourcegraph package.
//
// The package is protocol-agnostic: the MCP server in internal/mcpserver and
// the one-shot CLI both call into it. It owns three things:
//
//   - argument parsing and validation (ParseSearchArgs)
//   - running a search and turning failures into readable text (Handler.Search)
//   - compressing a result set into a bounded text report (FormatReport)
//
// # Quick Start
//
//	client := sourcegraph.NewClient("https://sourcegraph.com", token)
//	handler := tools.NewHandler(client, logger)
//
//	result, err := handler.Call(ctx, "search", map[string]any{
//		"query": "repo:facebook/react useState",
//		"count": 5,
//	})
//	if err != nil {
//		// *ValidationError or *UnknownToolError: the call itself was wrong
//		return err
//	}
//	fmt.Println(result.Text)
//
// # Error Handling
//
// Handler.Call distinguishes two kinds of failure:
//
//   - The invocation is malformed (unknown tool, missing query, out-of-range
//     count). Call returns a non-nil error and never touches the network.
//   - The search itself failed (HTTP error, timeout, GraphQL errors). Call
//     returns a ToolResult with IsError set and the text
//     "Search failed: <cause>", so an agent can read the failure and adjust
//     its query.
//
// # Report Format
//
//	Top 3 of ~120 results:
//
//	1. src/hooks.js
//	   Repository: github.com/facebook/react
//	   Line 12: const [state, setState] = useState(0)
//	   ... +4 more matches
//
//	2. Repository: github.com/facebook/react
//	   The library for web and native user interfaces.
//
//	3. Commit: 0123abcd
//	   Fix useState batching
//	   Author: Ada
//
//	Status: Alert: Too many files | 2 repos timed out
//
// Previews are cut to 120 characters for the first line match and 80 for the
// next two; at most three line matches are shown per file.
package tools
