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

// Package testing provides test helpers for sgsearch tests.
//
// The central piece is FakeBackend, an httptest server that stands in for a
// Sourcegraph instance. It records every GraphQL request it receives so tests
// can assert on headers, variables and the number of calls.
//
// # Quick Start
//
//	func TestMyFeature(t *testing.T) {
//	    backend := sgtest.NewFakeBackend(t, sgtest.RespondSearch(
//	        sgtest.SearchPayload(sgtest.FileMatchJSON("main.go", "github.com/acme/app", "func main() {}")),
//	    ))
//
//	    client := sourcegraph.NewClient(backend.URL(), "test-token")
//	    // run searches against backend...
//
//	    require.Equal(t, 1, backend.Calls())
//	}
//
// # Fixtures
//
// Payload builders return raw JSON fragments in the shape of the Sourcegraph
// search API:
//   - FileMatchJSON: a FileMatch with one line match per preview
//   - RepositoryJSON: a Repository result
//   - CommitJSON: a CommitSearchResult
//   - SearchPayload / SearchPayloadWith: a full {"data":{"search":...}} body
//
// # Responders
//
// Handlers for NewFakeBackend:
//   - RespondSearch: 200 with the given body
//   - RespondStatus: an arbitrary status and body
//   - RespondGraphQLErrors: 200 with an "errors" array
//   - RespondSlow: waits before answering, for timeout tests
package testing
