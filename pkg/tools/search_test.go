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

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestParseSearchArgs_Defaults(t *testing.T) {
	got, err := ParseSearchArgs(map[string]any{"query": "repo:acme/app main"})
	assertNoError(t, err)
	assertEqual(t, got, SearchArgs{
		Query:       "repo:acme/app main",
		PatternType: "keyword",
		Count:       10,
		Timeout:     10,
	})
}

func TestParseSearchArgs_Explicit(t *testing.T) {
	got, err := ParseSearchArgs(map[string]any{
		"query":        "foo.*bar",
		"pattern_type": "regexp",
		"count":        float64(250),
		"timeout":      json.Number("60"),
		"ignored":      true,
	})
	assertNoError(t, err)
	assertEqual(t, got, SearchArgs{Query: "foo.*bar", PatternType: "regexp", Count: 250, Timeout: 60})
}

func TestParseSearchArgs_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		args  map[string]any
		field string
		msg   string
	}{
		{"missing query", map[string]any{}, "query", "query is required"},
		{"nil query", map[string]any{"query": nil}, "query", "query is required"},
		{"empty query", map[string]any{"query": ""}, "query", "query is required"},
		{"blank query", map[string]any{"query": "  \t"}, "query", "query is required"},
		{"query not a string", map[string]any{"query": 42}, "query", "must be a string"},
		{"oversized query", map[string]any{"query": strings.Repeat("q", 9000)}, "query", "exceeds"},
		{"unknown pattern type", map[string]any{"query": "q", "pattern_type": "structural"}, "pattern_type", "must be one of keyword, regexp"},
		{"pattern type not a string", map[string]any{"query": "q", "pattern_type": 1}, "pattern_type", "must be a string"},
		{"count zero", map[string]any{"query": "q", "count": 0}, "count", "between 1 and 1000"},
		{"count too large", map[string]any{"query": "q", "count": float64(1001)}, "count", "between 1 and 1000"},
		{"count fractional", map[string]any{"query": "q", "count": 2.5}, "count", "must be an integer"},
		{"count string", map[string]any{"query": "q", "count": "10"}, "count", "must be an integer"},
		{"timeout too short", map[string]any{"query": "q", "timeout": 4}, "timeout", "between 5 and 60"},
		{"timeout too long", map[string]any{"query": "q", "timeout": float64(61)}, "timeout", "between 5 and 60"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSearchArgs(tt.args)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T: %v", err, err)
			}
			assertEqual(t, verr.Field, tt.field)
			assertContains(t, verr.Message, tt.msg)
		})
	}
}

func TestSearchArgs_ValidateBounds(t *testing.T) {
	args := DefaultSearchArgs("q")
	for _, n := range []int{1, 1000} {
		args.Count = n
		assertNoError(t, args.Validate())
	}
	for _, n := range []int{5, 60} {
		args.Timeout = n
		assertNoError(t, args.Validate())
	}
}

func TestValidationError_Error(t *testing.T) {
	assertEqual(t, (&ValidationError{Field: "count", Message: "bad"}).Error(), `invalid argument "count": bad`)
	assertEqual(t, (&ValidationError{Message: "bad"}).Error(), "invalid arguments: bad")
	assertEqual(t, (&UnknownToolError{Name: "grep"}).Error(), "Unknown tool: grep")
}
