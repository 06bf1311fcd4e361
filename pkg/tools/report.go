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
	"fmt"
	"strings"

	"github.com/kraklabs/sgsearch/pkg/sourcegraph"
)

// Output budgets, in characters.
const (
	primaryPreviewLen   = 120
	secondaryPreviewLen = 80
	commitMessageLen    = 80
	maxDescriptionLen   = 100
	shownLineMatches    = 3
	shortOIDLen         = 8
)

// Report is the formatted text of a search, one entry per output line.
type Report struct {
	Lines []string
}

// String joins the report lines with newlines.
func (r *Report) String() string {
	return strings.Join(r.Lines, "\n")
}

func (r *Report) add(format string, args ...any) {
	r.Lines = append(r.Lines, fmt.Sprintf(format, args...))
}

// FormatReport renders a result set as compact text.
//
// At most requestedCount items are shown, in backend order. Unknown result
// types are rendered as such instead of failing the report. The trailing
// status line is emitted whenever the backend reported an alert or affected
// repositories, even when there are no results.
func FormatReport(rs *sourcegraph.SearchResultSet, requestedCount int) *Report {
	if rs == nil {
		rs = &sourcegraph.SearchResultSet{}
	}
	report := &Report{}
	items := rs.Results.Items

	if len(items) == 0 {
		report.add("No results found.")
	} else {
		approx := approximateCount(rs)
		if approx.Value > len(items) {
			report.add("Top %d of ~%s results:", len(items), approx)
		} else {
			report.add("Found %d results:", len(items))
		}
		report.add("")

		shown := items
		if requestedCount < len(shown) {
			shown = shown[:max(requestedCount, 0)]
		}
		for i, item := range shown {
			formatItem(report, i+1, item)
			report.add("")
		}
	}

	if status := statusLine(&rs.Results); status != "" {
		report.Lines = append(report.Lines, status)
	}
	return report
}

// approximateCount prefers the top-level stats, then the result list's own
// estimate, then the number of returned items.
func approximateCount(rs *sourcegraph.SearchResultSet) sourcegraph.ApproxCount {
	if rs.Stats.ApproximateResultCount.Known() {
		return rs.Stats.ApproximateResultCount
	}
	if rs.Results.ApproximateResultCount.Known() {
		return rs.Results.ApproximateResultCount
	}
	return sourcegraph.ApproxCount{Value: len(rs.Results.Items)}
}

func formatItem(report *Report, n int, item sourcegraph.ResultItem) {
	switch v := item.(type) {
	case *sourcegraph.FileMatch:
		report.add("%d. %s", n, v.File.Path)
		report.add("   Repository: %s", v.Repository.Name)
		for i, lm := range v.LineMatches {
			if i >= shownLineMatches {
				break
			}
			limit := secondaryPreviewLen
			if i == 0 {
				limit = primaryPreviewLen
			}
			report.add("   Line %d: %s", lm.LineNumber, Truncate(strings.TrimSpace(lm.Preview), limit))
		}
		if extra := len(v.LineMatches) - shownLineMatches; extra > 0 {
			report.add("   ... +%d more matches", extra)
		}

	case *sourcegraph.Repository:
		report.add("%d. Repository: %s", n, v.Name)
		if v.Description != "" && len([]rune(v.Description)) < maxDescriptionLen {
			report.add("   %s", v.Description)
		}

	case *sourcegraph.CommitMatch:
		message := strings.Join(strings.Fields(v.Commit.Message), " ")
		report.add("%d. Commit: %s", n, prefix(v.Commit.OID, shortOIDLen))
		report.add("   %s", Truncate(message, commitMessageLen))
		report.add("   Author: %s", v.Commit.Author.Name)

	default:
		name := sourcegraph.Unknown
		if item != nil && item.TypeName() != "" {
			name = item.TypeName()
		}
		report.add("%d. Unknown result type: %s", n, name)
	}
}

// statusLine aggregates the alert and affected repositories into one line.
func statusLine(res *sourcegraph.SearchResults) string {
	var parts []string
	if res.Alert != nil && res.Alert.Title != "" {
		parts = append(parts, "Alert: "+res.Alert.Title)
	}
	if n := len(res.Timedout); n > 0 {
		parts = append(parts, fmt.Sprintf("%d repos timed out", n))
	}
	if n := len(res.Cloning); n > 0 {
		parts = append(parts, fmt.Sprintf("%d repos cloning", n))
	}
	if n := len(res.Missing); n > 0 {
		parts = append(parts, fmt.Sprintf("%d repos missing", n))
	}
	if len(parts) == 0 {
		return ""
	}
	return "Status: " + strings.Join(parts, " | ")
}

func prefix(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
