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

// Package sourcegraph talks to the Sourcegraph GraphQL search API.
//
// It has three parts that are used in sequence for every search:
//
//   - BuildQuery turns a raw search string into the final query text and the
//     GraphQL variables (pattern type and query version).
//   - Client.Execute sends the search document to <base_url>/.api/graphql and
//     returns the decoded "search" payload.
//   - SearchResultSet is the decoded payload. Every field the backend may omit
//     is defaulted during decoding, so callers never nil-check nested values.
//
// # Quick Start
//
//	client := sourcegraph.NewClient("https://sourcegraph.com", token)
//	query, vars := sourcegraph.BuildQuery("repo:facebook/react useState", "keyword", 5)
//	results, err := client.Execute(ctx, query, vars, 10*time.Second)
//	if err != nil {
//		var se *sourcegraph.SearchError
//		if errors.As(err, &se) {
//			fmt.Println(se.Cause)
//		}
//		return
//	}
//	fmt.Println(len(results.Results.Items))
//
// # Errors
//
// Every failure of Execute is a *SearchError. Its Kind tells which of the
// four failure classes occurred:
//
//   - KindHTTP: the backend answered with a non-2xx status
//   - KindTimeout: no response within the requested timeout
//   - KindGraphQL: the response carried a non-empty "errors" array
//   - KindOther: anything else (connection refused, malformed JSON, ...)
//
// Execute never retries. A GraphQL error is a query or schema rejection and
// sending the same document again cannot fix it.
//
// # Known limitations
//
// BuildQuery detects an existing count directive with a plain substring test
// for "count:". A query that mentions "count:" inside a quoted phrase is
// treated as already carrying a directive.
package sourcegraph
