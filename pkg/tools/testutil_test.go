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
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/kraklabs/sgsearch/pkg/sourcegraph"
)

// Assertion Helpers
// These helpers reduce boilerplate in test code and provide clear error messages.

// assertNoError fails the test if err is not nil.
// It uses t.Helper() to ensure the error is reported at the call site.
//
// Example:
//
//	result, err := SomeFunction()
//	assertNoError(t, err)
func assertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// assertEqual fails the test if got != want.
// It provides a detailed error message showing both values.
//
// Example:
//
//	assertEqual(t, result.Name, "ExpectedName")
func assertEqual(t *testing.T, got, want any, msgAndArgs ...any) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		msg := ""
		if len(msgAndArgs) > 0 {
			if format, ok := msgAndArgs[0].(string); ok {
				msg = fmt.Sprintf(format, msgAndArgs[1:]...)
			}
		}
		if msg != "" {
			msg = ": " + msg
		}
		t.Fatalf("assertion failed%s\ngot:  %#v\nwant: %#v", msg, got, want)
	}
}

// assertContains fails the test if haystack does not contain needle.
//
// Example:
//
//	assertContains(t, result.Text, "expected substring")
func assertContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected string to contain %q, got:\n%s", needle, haystack)
	}
}

// assertNotContains fails the test if haystack contains needle.
//
// Example:
//
//	assertNotContains(t, result.Text, "unwanted substring")
func assertNotContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if strings.Contains(haystack, needle) {
		t.Fatalf("expected string to NOT contain %q, got:\n%s", needle, haystack)
	}
}

// Fixture Builders
// These builders create result sets in the shape the sourcegraph package decodes.

// fileMatch creates a FileMatch whose line matches are numbered from 1.
//
// Example:
//
//	item := fileMatch("src/app.go", "github.com/acme/app", "func main() {")
func fileMatch(path, repo string, previews ...string) *sourcegraph.FileMatch {
	fm := &sourcegraph.FileMatch{
		Typename:   sourcegraph.TypeFileMatch,
		File:       sourcegraph.FileInfo{Name: path, Path: path},
		Repository: sourcegraph.RepositoryRef{Name: repo},
	}
	for i, p := range previews {
		fm.LineMatches = append(fm.LineMatches, sourcegraph.LineMatch{Preview: p, LineNumber: i + 1})
	}
	return fm
}

// repository creates a Repository result.
func repository(name, description string) *sourcegraph.Repository {
	return &sourcegraph.Repository{Typename: sourcegraph.TypeRepository, Name: name, Description: description}
}

// commit creates a CommitSearchResult.
func commit(oid, message, author string) *sourcegraph.CommitMatch {
	c := &sourcegraph.CommitMatch{Typename: sourcegraph.TypeCommit}
	c.Commit.OID = oid
	c.Commit.Message = message
	c.Commit.Author.Name = author
	return c
}

// resultSet wraps items in a SearchResultSet with no status information.
//
// Example:
//
//	rs := resultSet(fileMatch("a.go", "r"), repository("r", ""))
func resultSet(items ...sourcegraph.ResultItem) *sourcegraph.SearchResultSet {
	return &sourcegraph.SearchResultSet{
		Results: sourcegraph.SearchResults{Items: items},
	}
}

// Test Setup Helpers

// setupTest creates a test context with timeout and registers cleanup.
// This ensures tests don't hang and resources are properly cleaned up.
//
// Example:
//
//	func TestSomething(t *testing.T) {
//	    ctx := setupTest(t)
//	    result, err := SomeOperation(ctx)
//	    // test continues...
//	}
func setupTest(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// setupTestWithMock creates a test context, a mock searcher returning rs and
// a Handler using it.
//
// Example:
//
//	func TestSearch(t *testing.T) {
//	    ctx, searcher, handler := setupTestWithMock(t, resultSet(repository("r", "")))
//	    result, err := handler.Search(ctx, DefaultSearchArgs("r"))
//	    assertNoError(t, err)
//	}
func setupTestWithMock(t *testing.T, rs *sourcegraph.SearchResultSet) (context.Context, *MockSearcher, *Handler) {
	t.Helper()
	ctx := setupTest(t)
	searcher := NewMockSearcherWithResults(rs)
	return ctx, searcher, NewHandler(searcher, nil)
}
