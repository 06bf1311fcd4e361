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

import (
	"context"
	"sync"
	"time"

	"github.com/kraklabs/sgsearch/pkg/sourcegraph"
)

// MockSearcher is a mock implementation of the sourcegraph.Searcher interface
// for unit testing. It records every call so tests can assert that invalid
// invocations never reach the backend.
//
// Usage:
//
//	searcher := NewMockSearcherWithResults(resultSet(repository("r", "")))
//	handler := NewHandler(searcher, nil)
type MockSearcher struct {
	// ExecuteFunc is called when Execute() is invoked. If nil, returns an empty result set.
	ExecuteFunc func(ctx context.Context, query string, vars sourcegraph.Variables, timeout time.Duration) (*sourcegraph.SearchResultSet, error)

	mu    sync.Mutex
	calls []MockCall
}

// MockCall records the arguments of one Execute call.
type MockCall struct {
	Query   string
	Vars    sourcegraph.Variables
	Timeout time.Duration
}

// Execute implements the sourcegraph.Searcher interface.
func (m *MockSearcher) Execute(ctx context.Context, query string, vars sourcegraph.Variables, timeout time.Duration) (*sourcegraph.SearchResultSet, error) {
	m.mu.Lock()
	m.calls = append(m.calls, MockCall{Query: query, Vars: vars, Timeout: timeout})
	m.mu.Unlock()

	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, query, vars, timeout)
	}
	return &sourcegraph.SearchResultSet{}, nil
}

// Calls returns the recorded Execute calls.
func (m *MockSearcher) Calls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]MockCall(nil), m.calls...)
}

// NewMockSearcherWithResults creates a mock searcher that returns rs.
func NewMockSearcherWithResults(rs *sourcegraph.SearchResultSet) *MockSearcher {
	return &MockSearcher{
		ExecuteFunc: func(context.Context, string, sourcegraph.Variables, time.Duration) (*sourcegraph.SearchResultSet, error) {
			return rs, nil
		},
	}
}

// NewMockSearcherWithError creates a mock searcher that returns err.
//
// Example:
//
//	searcher := NewMockSearcherWithError(&sourcegraph.SearchError{
//	    Kind:  sourcegraph.KindHTTP,
//	    Cause: "HTTP error: status 502: bad gateway",
//	})
func NewMockSearcherWithError(err error) *MockSearcher {
	return &MockSearcher{
		ExecuteFunc: func(context.Context, string, sourcegraph.Variables, time.Duration) (*sourcegraph.SearchResultSet, error) {
			return nil, err
		},
	}
}
