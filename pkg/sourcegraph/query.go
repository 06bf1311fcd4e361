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

package sourcegraph

import (
	"strconv"
	"strings"
)

// QueryVersion is the search syntax version sent with every query.
const QueryVersion = "V3"

// countDirective is the filter Sourcegraph uses to cap the number of results.
const countDirective = "count:"

// Pattern types accepted from callers.
const (
	PatternKeyword = "keyword"
	PatternRegexp  = "regexp"
)

// patternTypes maps caller-facing pattern types to SearchPatternType enum values.
var patternTypes = map[string]string{
	PatternKeyword: "standard",
	PatternRegexp:  "regexp",
}

// Variables holds the GraphQL variables of the search document.
type Variables struct {
	Query       string `json:"query"`
	Version     string `json:"version"`
	PatternType string `json:"patternType"`
}

// BuildQuery prepares the final query text and the GraphQL variables.
//
// When count is positive and the query has no count directive yet, " count:N"
// is appended. The presence check is a plain substring match, so a quoted
// "count:" also suppresses the directive.
//
// Unknown pattern types fall back to "standard" instead of failing.
func BuildQuery(query, patternType string, count int) (string, Variables) {
	if count > 0 && !strings.Contains(query, countDirective) {
		query = query + " " + countDirective + strconv.Itoa(count)
	}

	return query, Variables{
		Query:       query,
		Version:     QueryVersion,
		PatternType: MapPatternType(patternType),
	}
}

// MapPatternType returns the backend enum value for a caller pattern type.
func MapPatternType(patternType string) string {
	if v, ok := patternTypes[patternType]; ok {
		return v
	}
	return "standard"
}
